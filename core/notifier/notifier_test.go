package notifier_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/core/email"
	"github.com/dmitrymomot/notifykit/core/notification"
	"github.com/dmitrymomot/notifykit/core/notifier"
)

type mockSender struct {
	mu         sync.Mutex
	sent       []email.SendParams
	shouldFail bool
}

func (m *mockSender) Send(ctx context.Context, params email.SendParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldFail {
		return email.ErrFailedToSend
	}
	m.sent = append(m.sent, params)
	return nil
}

func (m *mockSender) messages() []email.SendParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.SendParams(nil), m.sent...)
}

func testConfig() notifier.Config {
	return notifier.Config{
		ProductionURI: "https://readthedocs.org",
		DevEmailDir:   "./dev_emails",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	renderer := notification.MustNewRenderer(nil)
	sender := &mockSender{}

	tests := []struct {
		name     string
		cfg      notifier.Config
		renderer *notification.Renderer
		sender   email.Sender
		errMsg   string
	}{
		{
			name:     "valid",
			cfg:      testConfig(),
			renderer: renderer,
			sender:   sender,
		},
		{
			name:   "nil renderer",
			cfg:    testConfig(),
			sender: sender,
			errMsg: "renderer is required",
		},
		{
			name:     "nil sender",
			cfg:      testConfig(),
			renderer: renderer,
			errMsg:   "sender is required",
		},
		{
			name:     "empty production URI",
			cfg:      notifier.Config{},
			renderer: renderer,
			sender:   sender,
			errMsg:   "ProductionURI is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := notifier.New(tt.cfg, tt.renderer, tt.sender, nil)
			if tt.errMsg != "" {
				assert.Nil(t, n)
				assert.ErrorIs(t, err, notifier.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, n)
			}
		})
	}
}

func TestNewDev(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.DevEmailDir = t.TempDir()

	n, err := notifier.NewDev(cfg, nil)
	require.NoError(t, err)

	require.NoError(t, n.NotifyConfigFileDeprecation(context.Background(), notifier.Recipient{
		Email:    "admin@example.com",
		Projects: []notification.Project{{Slug: "foo-docs"}},
	}))
}

func TestNotifier_NotifyConfigFileDeprecation(t *testing.T) {
	t.Parallel()

	t.Run("renders and hands off", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		n, err := notifier.New(testConfig(), notification.MustNewRenderer(nil), sender, nil)
		require.NoError(t, err)

		err = n.NotifyConfigFileDeprecation(context.Background(), notifier.Recipient{
			Email: "admin@example.com",
			Projects: []notification.Project{
				{Slug: "foo-docs"},
				{Slug: "bar-docs"},
			},
		})
		require.NoError(t, err)

		sent := sender.messages()
		require.Len(t, sent, 1)
		msg := sent[0]

		assert.Equal(t, "admin@example.com", msg.SendTo)
		assert.Equal(t, "Action required: add a configuration file to your Read the Docs projects", msg.Subject)
		assert.Equal(t, notification.NoticeConfigFileDeprecation, msg.Tag)
		assert.Contains(t, msg.BodyText, "* foo-docs")
		assert.Contains(t, msg.BodyText, "* bar-docs")
		assert.Contains(t, msg.BodyText, "https://readthedocs.org/support/")
	})

	t.Run("nil projects surfaces missing context", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		n, err := notifier.New(testConfig(), notification.MustNewRenderer(nil), sender, nil)
		require.NoError(t, err)

		err = n.NotifyConfigFileDeprecation(context.Background(), notifier.Recipient{
			Email: "admin@example.com",
		})
		assert.ErrorIs(t, err, notification.ErrMissingContext)
		assert.Empty(t, sender.messages())
	})

	t.Run("sender failure surfaces unchanged", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{shouldFail: true}
		n, err := notifier.New(testConfig(), notification.MustNewRenderer(nil), sender, nil)
		require.NoError(t, err)

		err = n.NotifyConfigFileDeprecation(context.Background(), notifier.Recipient{
			Email:    "admin@example.com",
			Projects: []notification.Project{{Slug: "foo-docs"}},
		})
		assert.ErrorIs(t, err, email.ErrFailedToSend)
	})
}

func TestNotifier_NotifyConfigFileDeprecationAll(t *testing.T) {
	t.Parallel()

	t.Run("notifies every recipient", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		n, err := notifier.New(testConfig(), notification.MustNewRenderer(nil), sender, nil)
		require.NoError(t, err)

		recipients := []notifier.Recipient{
			{Email: "one@example.com", Projects: []notification.Project{{Slug: "one-docs"}}},
			{Email: "two@example.com", Projects: []notification.Project{{Slug: "two-docs"}}},
			{Email: "three@example.com", Projects: []notification.Project{}},
		}
		require.NoError(t, n.NotifyConfigFileDeprecationAll(context.Background(), recipients))

		sent := sender.messages()
		require.Len(t, sent, 3)

		byRecipient := make(map[string]email.SendParams, len(sent))
		for _, msg := range sent {
			byRecipient[msg.SendTo] = msg
		}
		assert.Contains(t, byRecipient["one@example.com"].BodyText, "* one-docs")
		assert.Contains(t, byRecipient["two@example.com"].BodyText, "* two-docs")
		assert.NotContains(t, byRecipient["three@example.com"].BodyText, "* one-docs")
	})

	t.Run("attempts all and joins failures", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		n, err := notifier.New(testConfig(), notification.MustNewRenderer(nil), sender, nil)
		require.NoError(t, err)

		recipients := []notifier.Recipient{
			{Email: "good@example.com", Projects: []notification.Project{{Slug: "good-docs"}}},
			{Email: "bad@example.com"}, // nil projects
			{Email: "not-an-email", Projects: []notification.Project{{Slug: "other-docs"}}},
		}
		err = n.NotifyConfigFileDeprecationAll(context.Background(), recipients)
		assert.ErrorIs(t, err, notification.ErrMissingContext)
		assert.ErrorIs(t, err, email.ErrInvalidParams)

		// The valid recipient still got their notice.
		sent := sender.messages()
		require.Len(t, sent, 1)
		assert.Equal(t, "good@example.com", sent[0].SendTo)
	})

	t.Run("empty recipient list", func(t *testing.T) {
		t.Parallel()

		sender := &mockSender{}
		n, err := notifier.New(testConfig(), notification.MustNewRenderer(nil), sender, nil)
		require.NoError(t, err)

		assert.NoError(t, n.NotifyConfigFileDeprecationAll(context.Background(), nil))
		assert.Empty(t, sender.messages())
	})
}

func TestNotifier_ProductionURIFlowsIntoBody(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	cfg := testConfig()
	cfg.ProductionURI = "https://app.example.com"

	n, err := notifier.New(cfg, notification.MustNewRenderer(nil), sender, nil)
	require.NoError(t, err)

	require.NoError(t, n.NotifyConfigFileDeprecation(context.Background(), notifier.Recipient{
		Email:    "admin@example.com",
		Projects: []notification.Project{{Slug: "foo-docs"}},
	}))

	sent := sender.messages()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].BodyText, "https://app.example.com/support/")
	assert.False(t, strings.Contains(sent[0].BodyText, "https://readthedocs.org/support/"))
}

func TestNotifier_ErrorsAreSentinels(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	n, err := notifier.New(testConfig(), notification.MustNewRenderer(nil), sender, nil)
	require.NoError(t, err)

	err = n.NotifyConfigFileDeprecation(context.Background(), notifier.Recipient{
		Email: "admin@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, notification.ErrMissingContext))
}

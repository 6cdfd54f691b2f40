package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/notifykit/core/email"
	"github.com/dmitrymomot/notifykit/core/logger"
	"github.com/dmitrymomot/notifykit/core/notification"
	"github.com/dmitrymomot/notifykit/pkg/async"
)

// Recipient is one administrator to notify, together with the impacted
// projects the platform selected for them. The slice is listed in the notice
// exactly as supplied; filtering and ordering are the platform's job.
type Recipient struct {
	Email    string
	Projects []notification.Project
}

// noticeSubjects maps registered notice names to their subject lines.
var noticeSubjects = map[string]string{
	notification.NoticeConfigFileDeprecation: "Action required: add a configuration file to your Read the Docs projects",
}

// Notifier composes the renderer with a sender: it builds a per-recipient
// rendering context, renders the notice body, and hands the finished message
// off. Delivery itself is owned by the injected Sender.
type Notifier struct {
	renderer      *notification.Renderer
	sender        email.Sender
	log           *slog.Logger
	productionURI string
}

// New creates a Notifier. The renderer and sender are required; a nil logger
// falls back to slog.Default.
func New(cfg Config, renderer *notification.Renderer, sender email.Sender, log *slog.Logger) (*Notifier, error) {
	if renderer == nil {
		return nil, fmt.Errorf("%w: renderer is required", ErrInvalidConfig)
	}
	if sender == nil {
		return nil, fmt.Errorf("%w: sender is required", ErrInvalidConfig)
	}
	if cfg.ProductionURI == "" {
		return nil, fmt.Errorf("%w: ProductionURI is required", ErrInvalidConfig)
	}
	if log == nil {
		log = slog.Default()
	}

	return &Notifier{
		renderer:      renderer,
		sender:        sender,
		log:           log.With(logger.Component("notifier")),
		productionURI: cfg.ProductionURI,
	}, nil
}

// NewDev creates a Notifier wired to the built-in notices, default routes,
// and the development sender writing to cfg.DevEmailDir.
func NewDev(cfg Config, log *slog.Logger) (*Notifier, error) {
	renderer, err := notification.NewRenderer(nil)
	if err != nil {
		return nil, err
	}
	return New(cfg, renderer, email.NewDevSender(cfg.DevEmailDir), log)
}

// NotifyConfigFileDeprecation renders the configuration file v2 deprecation
// notice for the recipient and hands it to the sender. Rendering and
// resolution errors surface unchanged.
func (n *Notifier) NotifyConfigFileDeprecation(ctx context.Context, to Recipient) error {
	return n.notify(ctx, notification.NoticeConfigFileDeprecation, to)
}

// NotifyConfigFileDeprecationAll fans the deprecation notice out to every
// recipient concurrently. All recipients are attempted; the returned error
// joins the failures, if any.
func (n *Notifier) NotifyConfigFileDeprecationAll(ctx context.Context, recipients []Recipient) error {
	futures := make([]*async.ExecFuture, 0, len(recipients))
	for _, to := range recipients {
		futures = append(futures, async.Exec(ctx, to, func(ctx context.Context, to Recipient) error {
			return n.notify(ctx, notification.NoticeConfigFileDeprecation, to)
		}))
	}
	return async.ExecAll(futures...)
}

func (n *Notifier) notify(ctx context.Context, notice string, to Recipient) error {
	start := time.Now()

	body, err := n.renderer.Render(notice, notification.Context{
		Projects:      to.Projects,
		ProductionURI: n.productionURI,
	})
	if err != nil {
		metricsRenderFailed.Inc()
		n.log.ErrorContext(ctx, "notice rendering failed",
			logger.Notice(notice),
			logger.Recipient(to.Email),
			logger.Error(err),
		)
		return err
	}
	metricsRendered.Inc()

	params := email.SendParams{
		SendTo:   to.Email,
		Subject:  noticeSubjects[notice],
		BodyText: body,
		Tag:      notice,
	}
	if err := n.sender.Send(ctx, params); err != nil {
		metricsHandoffFailed.Inc()
		n.log.ErrorContext(ctx, "notice handoff failed",
			logger.Notice(notice),
			logger.Recipient(to.Email),
			logger.Error(err),
		)
		return err
	}

	metricsHandedOff.Inc()
	metricsNotifySeconds.Observe(time.Since(start).Seconds())
	n.log.InfoContext(ctx, "notice handed off",
		logger.Notice(notice),
		logger.Recipient(to.Email),
		logger.Count("projects", len(to.Projects)),
		logger.Elapsed(start),
	)
	return nil
}

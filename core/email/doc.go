// Package email defines the delivery seam for rendered notification
// messages. It provides the Sender interface, parameter validation, and a
// development implementation that writes messages to disk instead of sending
// them, so the surrounding platform can plug in its own transport while local
// work stays inspectable.
//
// # Usage
//
//	import "github.com/dmitrymomot/notifykit/core/email"
//
//	// For development: messages land in ./dev_emails as .txt + .json pairs.
//	sender := email.NewDevSender("./dev_emails")
//
//	err := sender.Send(ctx, email.SendParams{
//		SendTo:   "admin@example.com",
//		Subject:  "Action required: add a configuration file to your projects",
//		BodyText: body,
//		Tag:      "config_file_deprecation",
//	})
//
// # Sender Interface
//
// Production transports implement Sender on top of whatever the platform
// already uses for outbound mail:
//
//	type Sender interface {
//		Send(ctx context.Context, params SendParams) error
//	}
//
// Implementations should call params.Validate() first and wrap transport
// failures with ErrFailedToSend so callers can classify errors with
// errors.Is().
//
// # Testing
//
// The interface makes mocks trivial:
//
//	type mockSender struct {
//		sent []email.SendParams
//	}
//
//	func (m *mockSender) Send(ctx context.Context, params email.SendParams) error {
//		m.sent = append(m.sent, params)
//		return nil
//	}
package email

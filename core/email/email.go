package email

import (
	"context"
	"fmt"
	"regexp"
)

// Sender hands a rendered notification off for delivery. Production
// transports are owned by the host platform; this package only defines the
// seam and ships a development implementation that writes messages to disk.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams describes a single outbound plain-text message. The body is the
// full email text; no subject prefixing, headers, or MIME structure are added
// here.
type SendParams struct {
	SendTo   string // Recipient email address (required)
	Subject  string // Email subject line (required)
	BodyText string // Plain-text email body (required)
	Tag      string // Optional tag for analytics and tracking
}

// emailRegex is a simple regex for validating email addresses.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks that all required fields are present and well-formed.
// Failures report ErrInvalidParams with the offending field named.
func (p SendParams) Validate() error {
	if p.SendTo == "" || !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyText == "" {
		return fmt.Errorf("%w: BodyText is required", ErrInvalidParams)
	}
	return nil
}

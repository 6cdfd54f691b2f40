package email

import "errors"

// Error variables define sender failures that can be wrapped with detailed
// context using errors.Join() or fmt.Errorf("%w: ...").
var (
	ErrFailedToSend  = errors.New("failed to send email")
	ErrInvalidConfig = errors.New("invalid email configuration")
	ErrInvalidParams = errors.New("invalid email parameters")
)

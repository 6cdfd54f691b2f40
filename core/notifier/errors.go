package notifier

import "errors"

// ErrInvalidConfig indicates the notifier was constructed with a missing
// dependency or an incomplete configuration.
var ErrInvalidConfig = errors.New("invalid notifier configuration")

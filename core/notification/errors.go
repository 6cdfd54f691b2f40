package notification

import "errors"

// Error variables define rendering failures that can be wrapped with detailed
// context using fmt.Errorf("%w: ...") and checked with errors.Is().
var (
	// ErrMissingContext indicates a required context field was not populated.
	// The caller must not invoke rendering without both fields set.
	ErrMissingContext = errors.New("missing notification context")

	// ErrTemplateResolution indicates the base layout, a notice fragment, or
	// a named route could not be resolved. This is a host configuration
	// problem, not a data problem.
	ErrTemplateResolution = errors.New("template resolution failed")
)

package notification

import "fmt"

// Project is the slice of the platform's project registry a notice needs:
// the unique human-readable identifier. The registry owns the record; the
// renderer only reads it.
type Project struct {
	Slug string
}

// Context carries the per-recipient values a notice is rendered with. The
// dispatcher builds one per recipient, it is read during a single Render
// call, and discarded after the body is produced.
type Context struct {
	// Projects the recipient administers that still lack the required
	// configuration, in the order they should be listed. A non-nil empty
	// slice is valid and renders a bullet-less list. The renderer never
	// reorders, filters, or deduplicates the slice.
	Projects []Project

	// ProductionURI is the absolute base URL of the platform, without a
	// trailing slash. It prefixes resolved route paths to form absolute
	// links.
	ProductionURI string
}

// Validate reports ErrMissingContext when a required field is absent.
func (c Context) Validate() error {
	if c.Projects == nil {
		return fmt.Errorf("%w: Projects is required", ErrMissingContext)
	}
	if c.ProductionURI == "" {
		return fmt.Errorf("%w: ProductionURI is required", ErrMissingContext)
	}
	return nil
}

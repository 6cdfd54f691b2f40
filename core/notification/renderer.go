package notification

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates
var templatesFS embed.FS

// Notice names registered by this package.
const (
	// NoticeConfigFileDeprecation announces the configuration file v2
	// deadline and its brownout windows to project administrators.
	NoticeConfigFileDeprecation = "config_file_deprecation"
)

// layoutFile supplies the shared greeting and signature. Every notice
// fragment fills its content block.
const layoutFile = "templates/common.txt"

// layoutName is the template name the layout parses under and the entry
// point every Render call executes.
const layoutName = "common.txt"

var noticeFiles = map[string]string{
	NoticeConfigFileDeprecation: "templates/config_file_deprecation.txt",
}

// Renderer produces plain-text notification bodies from the embedded layout
// and notice fragments. It is immutable after construction and safe for
// concurrent use; rendering acquires nothing beyond transient string buffers.
type Renderer struct {
	routes  RouteResolver
	notices map[string]*template.Template
}

// NewRenderer parses the embedded templates against the given resolver.
// A nil resolver falls back to DefaultRoutes. Parse failures report
// ErrTemplateResolution.
func NewRenderer(routes RouteResolver) (*Renderer, error) {
	if routes == nil {
		routes = DefaultRoutes()
	}

	// The url function is the Go analog of the platform's named-route tag.
	// Binding it at parse time keeps templates free of literal paths.
	funcs := template.FuncMap{
		"url": routes.Reverse,
	}

	base, err := template.New(layoutName).Funcs(funcs).ParseFS(templatesFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("%w: base layout: %v", ErrTemplateResolution, err)
	}

	// Each notice defines the same content block, so every fragment is
	// parsed into its own clone of the base set.
	notices := make(map[string]*template.Template, len(noticeFiles))
	for name, file := range noticeFiles {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%w: clone layout for notice %q: %v", ErrTemplateResolution, name, err)
		}
		if _, err := set.ParseFS(templatesFS, file); err != nil {
			return nil, fmt.Errorf("%w: notice %q: %v", ErrTemplateResolution, name, err)
		}
		notices[name] = set
	}

	return &Renderer{routes: routes, notices: notices}, nil
}

// MustNewRenderer creates a renderer that panics on parse failure. Follows
// the pattern of failing fast during initialization rather than allowing a
// broken service to start.
func MustNewRenderer(routes RouteResolver) *Renderer {
	r, err := NewRenderer(routes)
	if err != nil {
		panic(err)
	}
	return r
}

// Render produces the UTF-8 plain-text body of the named notice for the
// given context. Output is deterministic: identical contexts yield
// byte-identical bodies, and the supplied projects are listed exactly once
// in order. Returns ErrMissingContext for an invalid context and
// ErrTemplateResolution when the notice name or a route referenced by the
// template cannot be resolved.
func (r *Renderer) Render(name string, nc Context) (string, error) {
	if err := nc.Validate(); err != nil {
		return "", err
	}

	set, ok := r.notices[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown notice %q", ErrTemplateResolution, name)
	}

	var sb strings.Builder
	if err := set.ExecuteTemplate(&sb, layoutName, nc); err != nil {
		// Route lookup failures inside the url function already carry the
		// sentinel; anything else is a template defect.
		if errors.Is(err, ErrTemplateResolution) {
			return "", err
		}
		return "", fmt.Errorf("%w: execute notice %q: %v", ErrTemplateResolution, name, err)
	}
	return sb.String(), nil
}

// Notices returns the names of all registered notices in no particular order.
func (r *Renderer) Notices() []string {
	names := make([]string, 0, len(r.notices))
	for name := range r.notices {
		names = append(names, name)
	}
	return names
}

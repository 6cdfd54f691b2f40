package notification

import "fmt"

// RouteResolver resolves a logical endpoint name to a URL path. It mirrors
// the host platform's named-route lookup so notice templates never hardcode
// paths.
type RouteResolver interface {
	Reverse(name string) (string, error)
}

// Routes is a static RouteResolver backed by a name-to-path map.
type Routes map[string]string

// Reverse returns the path registered under name. Unknown names report
// ErrTemplateResolution because a notice referencing an unregistered route
// cannot be rendered.
func (r Routes) Reverse(name string) (string, error) {
	path, ok := r[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown route %q", ErrTemplateResolution, name)
	}
	return path, nil
}

// DefaultRoutes returns the routes the built-in notices reference.
func DefaultRoutes() Routes {
	return Routes{
		"support": "/support/",
	}
}

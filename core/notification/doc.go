// Package notification renders plain-text notification email bodies for the
// documentation-hosting platform. It composes a shared base layout with
// per-notice content fragments and resolves logical route names to absolute
// links, producing deterministic output suitable for direct use as an email
// body.
//
// # Features
//
//   - Base layout composition: every notice fills the content block of the
//     shared layout (greeting and signature) the way the platform's web
//     templates extend core/email/common.txt
//   - Embedded templates parsed once at construction, immutable afterwards
//   - Logical route resolution via the RouteResolver interface, so notice
//     text never hardcodes URL paths
//   - Deterministic, side-effect-free rendering that is safe for concurrent
//     use across recipients
//   - Sentinel errors for missing context fields and resolution failures
//
// # Usage
//
//	import "github.com/dmitrymomot/notifykit/core/notification"
//
//	renderer, err := notification.NewRenderer(notification.DefaultRoutes())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	body, err := renderer.Render(notification.NoticeConfigFileDeprecation, notification.Context{
//		Projects: []notification.Project{
//			{Slug: "foo-docs"},
//			{Slug: "bar-docs"},
//		},
//		ProductionURI: "https://readthedocs.org",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The rendered body lists every project exactly once, in the supplied order,
// as "* <slug>" bullet lines. An empty (non-nil) Projects slice renders a
// bullet-less list without error. Filtering and ordering are the caller's
// responsibility; the renderer never reorders or deduplicates.
//
// # Route Resolution
//
// Notice templates reference endpoints by logical name through the url
// template function:
//
//	If you have any questions, contact us at {{.ProductionURI}}{{url "support"}}
//
// The resolver is bound at construction. The Routes map implementation
// covers the static case; platforms with richer routing can implement
// RouteResolver on top of their own URL reversal.
//
// # Error Handling
//
// Two failure kinds exist, both surfaced to the caller unchanged:
//
//	body, err := renderer.Render(name, nc)
//	switch {
//	case errors.Is(err, notification.ErrMissingContext):
//		// Caller bug: context was not fully populated.
//	case errors.Is(err, notification.ErrTemplateResolution):
//		// Host configuration problem: unknown notice or unresolvable route.
//	}
//
// Rendering has no transient failure modes of its own, so there is no retry
// policy at this level.
package notification

// Package treefold represents trees of UI nodes through static types and
// folds them into an output via generic processors.
//
// The building blocks live in subpackages:
//
//   - pkg/dom: the Node and NodeList capabilities, collections, overlays,
//     and the Processor fold protocol
//   - pkg/tags: the closed catalog of element constructors
//   - pkg/render: the HTML writer processor
//   - pkg/metrics, pkg/telemetry: Prometheus and OpenTelemetry
//     instrumentation for folds
//
// This package only offers the common entry point:
//
//	page := tags.Div(dom.NewTuple2(
//	    tags.H1(dom.Text("Hello")),
//	    tags.P(dom.Text("from treefold")),
//	)).Attrs(tags.Class("page"))
//
//	html, err := treefold.RenderString(page)
package treefold

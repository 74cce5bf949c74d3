// Package domtest provides helpers for testing node trees and processors.
//
// The helpers cover the common assertions in this repository's own suite:
// rendering a tree and failing the test on error, counting dispatched
// nodes, whitespace-insensitive markup comparison, and fault injection
// for both processors and sinks.
package domtest

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/treefold-dev/treefold/pkg/dom"
	"github.com/treefold-dev/treefold/pkg/render"
)

// MustRender renders nodes with a default writer and fails the test on
// error.
func MustRender(t *testing.T, nodes dom.NodeList) string {
	t.Helper()

	html, err := render.New(render.Config{}).RenderToString(nodes)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

// Count folds nodes through a counting processor and returns the total.
func Count(t *testing.T, nodes dom.NodeList) int {
	t.Helper()

	count := 0
	if err := dom.Process[*int](dom.Counter{}, &count, nodes); err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

// StripWhitespace removes all whitespace for layout-insensitive markup
// comparison.
func StripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ErrInjected is the default error returned by the fault-injection
// helpers.
var ErrInjected = errors.New("injected failure")

// FailAfter returns a processor over a *int accumulator that counts each
// dispatched node and fails once it has accepted n of them. It is used to
// verify short-circuiting: the accumulator records how many siblings were
// reached before the failure.
func FailAfter(n int, err error) dom.Processor[*int] {
	if err == nil {
		err = ErrInjected
	}
	return failAfter{n: n, err: err}
}

type failAfter struct {
	n   int
	err error
}

// Dispatch implements dom.Processor.
func (f failAfter) Dispatch(acc *int) dom.ProcessFunc {
	return func(dom.Node) error {
		if *acc >= f.n {
			return f.err
		}
		*acc++
		return nil
	}
}

// RecordingWriter is a sink that records everything successfully
// written to it and whose nth Write call (0-based) fails.
type RecordingWriter struct {
	FailAt int
	Err    error
	Calls  int

	buf strings.Builder
}

// Write implements io.Writer.
func (w *RecordingWriter) Write(p []byte) (int, error) {
	call := w.Calls
	w.Calls++
	if call == w.FailAt {
		if w.Err != nil {
			return 0, w.Err
		}
		return 0, ErrInjected
	}
	return w.buf.Write(p)
}

// String returns everything successfully written.
func (w *RecordingWriter) String() string {
	return w.buf.String()
}

package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/treefold-dev/treefold/pkg/dom"
)

// failing is a processor that always rejects.
type failing struct{ err error }

func (f failing) Dispatch(struct{}) dom.ProcessFunc {
	return func(dom.Node) error { return f.err }
}

func TestProcessReturnsFoldResult(t *testing.T) {
	count := 0
	nodes := dom.List[dom.Text]{"a", "b", "c"}
	if err := Process[*int](context.Background(), dom.Counter{}, &count, nodes); err != nil {
		t.Fatalf("fold failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("counter saw %d nodes, want 3", count)
	}
}

func TestProcessPropagatesError(t *testing.T) {
	errBoom := errors.New("boom")
	err := Process[struct{}](context.Background(), failing{err: errBoom}, struct{}{}, dom.Text("x"))
	if !errors.Is(err, errBoom) {
		t.Fatalf("fold error = %v, want boom", err)
	}
}

func TestFilterSkipsTracing(t *testing.T) {
	filtered := false
	count := 0
	err := Process[*int](context.Background(), dom.Counter{}, &count, dom.Text("x"),
		WithFilter(func(dom.NodeList) bool {
			filtered = true
			return false
		}),
	)
	if err != nil {
		t.Fatalf("fold failed: %v", err)
	}
	if !filtered {
		t.Fatalf("filter was not consulted")
	}
	if count != 1 {
		t.Fatalf("counter saw %d nodes, want 1", count)
	}
}

func TestOptionsResolve(t *testing.T) {
	config := newConfig(
		WithTracerName("custom"),
		WithSpanName("custom.fold"),
		WithAttributes(attribute.String("app", "test")),
	)
	if config.TracerName != "custom" {
		t.Fatalf("tracer name = %q", config.TracerName)
	}
	if config.SpanName != "custom.fold" {
		t.Fatalf("span name = %q", config.SpanName)
	}
	if len(config.Attributes) != 1 || config.Attributes[0].Key != "app" {
		t.Fatalf("attributes = %v", config.Attributes)
	}
	if config.tracer == nil {
		t.Fatalf("tracer not resolved")
	}
}

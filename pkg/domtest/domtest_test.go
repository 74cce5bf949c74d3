package domtest

import (
	"errors"
	"testing"

	"github.com/treefold-dev/treefold/pkg/dom"
	"github.com/treefold-dev/treefold/pkg/tags"
)

func TestMustRender(t *testing.T) {
	html := MustRender(t, tags.Div(dom.Text("hi")))
	if html != "<div>hi</div>" {
		t.Fatalf("rendered %q", html)
	}
}

func TestCount(t *testing.T) {
	nodes := dom.NewTuple3(dom.Text("a"), dom.Text("b"), tags.Span(dom.Nothing{}))
	if got := Count(t, nodes); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
	if got := Count(t, dom.Nothing{}); got != 0 {
		t.Fatalf("Count of empty list = %d, want 0", got)
	}
}

func TestStripWhitespace(t *testing.T) {
	got := StripWhitespace("  <div>\n\t a b </div> ")
	if got != "<div>ab</div>" {
		t.Fatalf("StripWhitespace = %q", got)
	}
}

func TestFailAfterShortCircuits(t *testing.T) {
	nodes := dom.List[dom.Text]{"a", "b", "c", "d"}

	reached := 0
	err := dom.Process[*int](FailAfter(2, nil), &reached, nodes)
	if !errors.Is(err, ErrInjected) {
		t.Fatalf("fold error = %v, want ErrInjected", err)
	}
	if reached != 2 {
		t.Fatalf("accepted %d nodes before failing, want 2", reached)
	}
}

func TestFailAfterCustomError(t *testing.T) {
	errBoom := errors.New("boom")
	reached := 0
	err := dom.Process[*int](FailAfter(0, errBoom), &reached, dom.Text("x"))
	if !errors.Is(err, errBoom) {
		t.Fatalf("fold error = %v, want boom", err)
	}
	if reached != 0 {
		t.Fatalf("accepted %d nodes, want 0", reached)
	}
}

func TestRecordingWriter(t *testing.T) {
	w := &RecordingWriter{FailAt: 1}

	if _, err := w.Write([]byte("one")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if _, err := w.Write([]byte("two")); !errors.Is(err, ErrInjected) {
		t.Fatalf("second write error = %v, want ErrInjected", err)
	}
	if _, err := w.Write([]byte("three")); err != nil {
		t.Fatalf("third write failed: %v", err)
	}

	if w.Calls != 3 {
		t.Fatalf("Calls = %d, want 3", w.Calls)
	}
	if w.String() != "onethree" {
		t.Fatalf("recorded %q", w.String())
	}
}

package dom

import (
	"errors"
	"testing"
)

// countNodes folds nodes with the counting processor.
func countNodes(t *testing.T, nodes NodeList) int {
	t.Helper()

	count := 0
	if err := Process[*int](Counter{}, &count, nodes); err != nil {
		t.Fatalf("counting fold failed: %v", err)
	}
	return count
}

func TestNothing(t *testing.T) {
	if got := countNodes(t, Nothing{}); got != 0 {
		t.Fatalf("Nothing counted %d nodes, want 0", got)
	}
}

func TestOption(t *testing.T) {
	if got := countNodes(t, Some(bogusOne{})); got != 1 {
		t.Fatalf("Some counted %d nodes, want 1", got)
	}
	if got := countNodes(t, None[bogusOne]()); got != 0 {
		t.Fatalf("None counted %d nodes, want 0", got)
	}
	if !Some(bogusOne{}).IsSome() {
		t.Fatalf("Some.IsSome() = false")
	}
	if None[bogusOne]().IsSome() {
		t.Fatalf("None.IsSome() = true")
	}
}

func TestNodeIsSingletonCollection(t *testing.T) {
	if got := countNodes(t, bogusOne{}); got != 1 {
		t.Fatalf("bare node counted %d, want 1", got)
	}
	if got := countNodes(t, Text("leaf")); got != 1 {
		t.Fatalf("bare text counted %d, want 1", got)
	}
}

func TestCountsChildren(t *testing.T) {
	if got := countNodes(t, NewTuple3(bogusOne{}, bogusOne{}, bogusTwo{})); got != 3 {
		t.Fatalf("tuple counted %d, want 3", got)
	}

	if got := countNodes(t, List[bogusOne]{{}, {}, {}}); got != 3 {
		t.Fatalf("list counted %d, want 3", got)
	}

	// Nested collections flatten: singletons, lists, and empty members.
	got := countNodes(t, NewTuple6(
		bogusOne{},
		bogusOne{},
		List[bogusOne]{{}, {}, {}},
		List[bogusOne]{{}},
		List[Nothing]{{}, {}, {}},
		List[bogusTwo]{{}, {}, {}},
	))
	if got != 9 {
		t.Fatalf("nested collections counted %d, want 9", got)
	}
}

func TestSelfVersusChildren(t *testing.T) {
	sample := sampleElement{
		tag: "div",
		attrs: []KeyValue{
			KV("a", "1"), KV("b", "2"), KV("c", "3"), KV("d", "4"),
		},
		children: NewTuple4(bogusOne{}, bogusOne{}, bogusTwo{}, bogusTwo{}),
	}

	// Folding the element through an enclosing collection sees only the
	// element itself.
	if got := countNodes(t, sample); got != 1 {
		t.Fatalf("Process counted %d, want 1", got)
	}

	count := 0
	if err := ProcessChildren[*int](Counter{}, &count, sample); err != nil {
		t.Fatalf("ProcessChildren failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("ProcessChildren counted %d, want 4", count)
	}
}

// failingProcessor fails every dispatch after the first n.
type failingProcessor struct {
	err error
	n   int
}

func (f failingProcessor) Dispatch(acc *int) ProcessFunc {
	return func(Node) error {
		if *acc >= f.n {
			return f.err
		}
		*acc++
		return nil
	}
}

func TestShortCircuitInCollection(t *testing.T) {
	errBoom := errors.New("boom")
	seen := 0

	err := Process[*int](
		failingProcessor{err: errBoom, n: 2},
		&seen,
		NewTuple4(bogusOne{}, bogusOne{}, bogusOne{}, bogusOne{}),
	)
	if !errors.Is(err, errBoom) {
		t.Fatalf("fold error = %v, want boom", err)
	}
	if seen != 2 {
		t.Fatalf("processor accepted %d nodes before failing, want 2", seen)
	}
}

func TestShortCircuitPropagatesThroughNesting(t *testing.T) {
	errBoom := errors.New("boom")
	seen := 0

	// The failure inside the inner list must abort the outer tuple too.
	err := Process[*int](
		failingProcessor{err: errBoom, n: 1},
		&seen,
		NewTuple3(
			bogusOne{},
			List[bogusTwo]{{}, {}, {}},
			bogusOne{},
		),
	)
	if !errors.Is(err, errBoom) {
		t.Fatalf("fold error = %v, want boom", err)
	}
	if seen != 1 {
		t.Fatalf("processor accepted %d nodes before failing, want 1", seen)
	}
}

func TestTupleDeclarationOrder(t *testing.T) {
	var order []string
	record := recorderProcessor{order: &order}

	nodes := NewTuple3(
		sampleElement{tag: "first"},
		List[sampleElement]{{tag: "second"}, {tag: "third"}},
		sampleElement{tag: "fourth"},
	)
	if err := Process[struct{}](record, struct{}{}, nodes); err != nil {
		t.Fatalf("fold failed: %v", err)
	}

	want := []string{"first", "second", "third", "fourth"}
	if len(order) != len(want) {
		t.Fatalf("dispatched %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("dispatched %v, want %v", order, want)
		}
	}
}

// recorderProcessor records element tag names in dispatch order.
type recorderProcessor struct {
	order *[]string
}

func (r recorderProcessor) Dispatch(struct{}) ProcessFunc {
	return func(n Node) error {
		*r.order = append(*r.order, n.Value().Tag)
		return nil
	}
}

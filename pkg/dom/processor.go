package dom

// Processor is a typed fold over a node tree. It declares an accumulator
// type and produces the dispatch function a fold feeds every node through.
// The error taxonomy is per processor: a dispatch function returns
// whatever concrete error type its processor defines, or always nil for
// infallible folds.
//
// A dispatch function may recurse by calling ProcessChildren on the node
// it receives with a dispatch function from the same processor.
type Processor[Acc any] interface {
	// Dispatch binds the accumulator and returns the per-node fold step.
	Dispatch(acc Acc) ProcessFunc
}

// Process folds nodes through p into acc. It is the top-level entry point
// for a consumer: compose a tree, pick a processor, fold once.
func Process[Acc any](p Processor[Acc], acc Acc, nodes NodeList) error {
	return nodes.ProcessAll(p.Dispatch(acc))
}

// ProcessChildren folds only the children of n through p into acc,
// leaving n itself undispatched.
func ProcessChildren[Acc any](p Processor[Acc], acc Acc, n Node) error {
	return n.ProcessChildren(p.Dispatch(acc))
}

// Counter counts every node dispatched to it. It never fails; callers may
// ignore the returned error.
type Counter struct{}

// Dispatch implements Processor.
func (Counter) Dispatch(acc *int) ProcessFunc {
	return func(Node) error {
		*acc++
		return nil
	}
}

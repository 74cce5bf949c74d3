package dom

// Attributed layers extra attributes in front of a wrapped node. The
// visible attribute list is the overlay concatenated before the wrapped
// node's own list; duplicate keys are kept, not deduplicated. The wrapped
// node's value is forwarded unchanged.
//
// Attributed is a terminal wrap: folding its children always yields an
// empty result, regardless of the wrapped node's actual children. When the
// children must still render, pass the extra attributes through the tag
// builder instead (tags.Tag.Attrs).
type Attributed[T Node] struct {
	node  T
	extra []KeyValue
}

// WithAttributes wraps node in an overlay that prepends extra to its
// attribute list.
func WithAttributes[T Node](node T, extra ...KeyValue) Attributed[T] {
	return Attributed[T]{node: node, extra: extra}
}

// Attribute returns the overlay attribute at index when in range, and
// otherwise delegates to the wrapped node shifted past the overlay.
func (a Attributed[T]) Attribute(index int) (KeyValue, bool) {
	if index < len(a.extra) {
		return a.extra[index], true
	}
	return a.node.Attribute(index - len(a.extra))
}

// ProcessChildren succeeds with zero processed children. The wrapped
// node's children are never folded through an overlay.
func (Attributed[T]) ProcessChildren(ProcessFunc) error {
	return nil
}

// Value forwards the wrapped node's value.
func (a Attributed[T]) Value() Value {
	return a.node.Value()
}

// ProcessAll dispatches the overlay itself as a singleton collection.
func (a Attributed[T]) ProcessAll(fn ProcessFunc) error {
	return fn(a)
}

// Unwrap returns the wrapped node.
func (a Attributed[T]) Unwrap() T {
	return a.node
}

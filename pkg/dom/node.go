package dom

import "iter"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // Tagged element: <div>, <table>, etc.
	KindText                // Plain text leaf
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Value is the discriminated value of a node: an element's tag name or a
// text leaf's payload.
type Value struct {
	Kind Kind
	Tag  string // Tag name, set for KindElement
	Text string // Payload, set for KindText
}

// ElementValue returns the Value of an element node with the given tag.
func ElementValue(tag string) Value {
	return Value{Kind: KindElement, Tag: tag}
}

// TextValue returns the Value of a text node with the given payload.
func TextValue(text string) Value {
	return Value{Kind: KindText, Text: text}
}

// KeyValue is a single ordered attribute pair.
type KeyValue struct {
	Key   string
	Value string
}

// KV builds a KeyValue.
func KV(key, value string) KeyValue {
	return KeyValue{Key: key, Value: value}
}

// ProcessFunc is a processor's dispatch function: it consumes one node,
// updating the accumulator the processor bound it to.
type ProcessFunc func(Node) error

// NodeList is an ordered, possibly heterogeneous grouping of zero or more
// nodes that can be folded as a unit.
type NodeList interface {
	// ProcessAll feeds every member to fn in declaration order. The first
	// error aborts the remaining members and is returned unchanged.
	ProcessAll(fn ProcessFunc) error
}

// Node is a single tree unit: a tagged element with attributes and
// children, or a text leaf. Every Node is also a NodeList containing
// exactly itself.
//
// Implementations must satisfy monotonic exhaustion: once Attribute
// reports a miss at index i, it must report a miss for every index >= i.
type Node interface {
	NodeList

	// Attribute returns the attribute at the given position, or ok=false
	// when the list is exhausted. Out-of-range lookups never error.
	Attribute(index int) (KeyValue, bool)

	// ProcessChildren feeds the node's children to fn in order,
	// short-circuiting on the first error.
	ProcessChildren(fn ProcessFunc) error

	// Value discriminates element vs. text.
	Value() Value
}

// Attributes returns a fresh, restartable sequence over a node's
// attributes, produced by indexing from zero until the first miss.
func Attributes(n Node) iter.Seq[KeyValue] {
	return func(yield func(KeyValue) bool) {
		for i := 0; ; i++ {
			kv, ok := n.Attribute(i)
			if !ok {
				return
			}
			if !yield(kv) {
				return
			}
		}
	}
}

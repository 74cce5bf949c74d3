package tags

import "github.com/treefold-dev/treefold/pkg/dom"

//go:generate go run github.com/treefold-dev/treefold/cmd/domgen tags -o tags_gen.go

// Tag is a concrete element node: a fixed tag name, an attribute list,
// and a child collection.
type Tag[C dom.NodeList] struct {
	name     string
	attrs    []dom.KeyValue
	children C
}

// New builds an element node with the given tag name, an empty attribute
// list, and the given children. Prefer the generated catalog constructors
// for standard tags.
func New[C dom.NodeList](name string, children C) Tag[C] {
	return Tag[C]{name: name, children: children}
}

// Attrs returns a copy of the tag with its own attribute list replaced.
// Unlike dom.WithAttributes, the tag's children remain foldable, so this
// is the way to attach attributes to an element that must still render
// its subtree.
func (t Tag[C]) Attrs(attrs ...dom.KeyValue) Tag[C] {
	t.attrs = attrs
	return t
}

// Name returns the tag name.
func (t Tag[C]) Name() string {
	return t.name
}

// Attribute returns the attribute at the given position.
func (t Tag[C]) Attribute(index int) (dom.KeyValue, bool) {
	if index < 0 || index >= len(t.attrs) {
		return dom.KeyValue{}, false
	}
	return t.attrs[index], true
}

// ProcessChildren folds the tag's child collection through fn.
func (t Tag[C]) ProcessChildren(fn dom.ProcessFunc) error {
	return t.children.ProcessAll(fn)
}

// Value returns the element value carrying the tag name.
func (t Tag[C]) Value() dom.Value {
	return dom.ElementValue(t.name)
}

// ProcessAll dispatches the tag itself as a singleton collection.
func (t Tag[C]) ProcessAll(fn dom.ProcessFunc) error {
	return fn(t)
}

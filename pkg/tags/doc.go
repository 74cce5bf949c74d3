// Package tags provides the closed, compile-time catalog of element
// constructors.
//
// Each constructor builds a dom element node with a fixed tag name:
//
//	tags.Div(dom.Text("hello"))
//	tags.Div(body).Attrs(tags.Class("card"), tags.ID("main"))
//
// A bare child collection implies an empty attribute list; chaining Attrs
// sets the tag's own attribute list while keeping the children foldable.
// The catalog is not extensible at run time; adding a tag means adding a
// catalog entry and regenerating (see cmd/domgen).
package tags

// Package dom defines the static node tree at the heart of treefold.
//
// A tree is composed of values implementing the Node capability (a tagged
// element or a text leaf) grouped into NodeList collections: Nothing,
// Option, List, the generated TupleN family, or a bare Node acting as its
// own singleton collection. Trees are built bottom-up by plain composition
// expressions, folded exactly once through a Processor, and discarded;
// there is no mutation API. Adding attributes produces a new overlay node
// via WithAttributes rather than editing in place.
//
// A Processor supplies the fold: it binds an accumulator and returns the
// dispatch function every collection feeds its members through. The first
// error from any member aborts the remaining siblings and unwinds to the
// caller of Process.
package dom

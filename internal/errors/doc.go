// Package errors provides coded, structured errors for treefold.
//
// Each error carries a unique code (e.g. "R001") that maps to a short
// message, a detailed explanation, and a documentation URL. Errors wrap an
// optional underlying cause and support errors.Is/As through Unwrap.
//
// # Error categories
//
//   - render: failures while folding a tree into markup (sink writes,
//     malformed node values)
//   - codegen: failures in the domgen source generators
//
// # Usage
//
//	err := errors.Wrap("R002", ioErr).
//	    WithSuggestion("check that the sink is still writable")
//	fmt.Println(err.Format())
package errors

// Package gen produces the generated sources in pkg/tags and pkg/dom:
// the closed tag catalog and the fixed-arity tuple family.
//
// Output is deterministic: running the generators twice yields identical
// bytes unless the catalog or the maximum arity changes.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/treefold-dev/treefold/internal/errors"
)

// header marks every generated file.
const header = "// Code generated by domgen. DO NOT EDIT.\n"

// MaxTupleArity is the largest generated tuple size.
const MaxTupleArity = 10

// domImport is the import path of the node core.
const domImport = "github.com/treefold-dev/treefold/pkg/dom"

// TagNames is the closed, compile-time tag catalog. Adding a tag means
// adding an entry here and regenerating.
var TagNames = []string{
	"a", "abbr", "acronym", "address", "applet", "area", "article", "aside",
	"audio", "b", "base", "basefont", "bdi", "bdo", "big", "blockquote",
	"body", "br", "button", "canvas", "caption", "center", "cite", "code",
	"col", "colgroup", "datalist", "dd", "del", "details", "dfn", "dialog",
	"dir", "div", "dl", "dt", "em", "embed", "fieldset", "figcaption",
	"figure", "font", "footer", "form", "frame", "framset", "h1", "h2",
	"h3", "h4", "h5", "h6", "head", "header", "hr", "i", "iframe", "img",
	"input", "ins", "kbd", "keygen", "label", "legend", "li", "link",
	"main", "map", "mark", "menu", "menuitem", "meta", "meter", "nav",
	"noframes", "noscript", "object", "ol", "optgroup", "option", "output",
	"p", "param", "pre", "progress", "q", "rp", "rt", "ruby", "s", "samp",
	"script", "section", "select", "small", "source", "span", "strike",
	"strong", "style", "sub", "summary", "sup", "table", "tbody", "td",
	"textarea", "tfoot", "th", "thead", "time", "title", "tr", "track",
	"tt", "u", "ul", "var", "video", "wbr",
}

// Tags generates the tag catalog source for the given package name.
func Tags(pkg string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(header)
	fmt.Fprintf(&buf, "\npackage %s\n", pkg)
	fmt.Fprintf(&buf, "\nimport %q\n", domImport)

	for _, tag := range TagNames {
		name := ExportName(tag)
		fmt.Fprintf(&buf, "\n// %s builds a %q element.\n", name, tag)
		fmt.Fprintf(&buf, "func %s[C dom.NodeList](children C) Tag[C] {\n", name)
		fmt.Fprintf(&buf, "\treturn New(%q, children)\n}\n", tag)
	}

	return gofmt(buf.Bytes())
}

// Tuples generates the TupleN family source for the given package name,
// for arities 2 through max.
func Tuples(pkg string, max int) ([]byte, error) {
	if max < 2 || max > MaxTupleArity {
		return nil, errors.New("G002").WithDetail("requested arity %d", max)
	}

	var buf bytes.Buffer

	buf.WriteString(header)
	fmt.Fprintf(&buf, "\npackage %s\n", pkg)

	for n := 2; n <= max; n++ {
		params := typeParams(n)

		fmt.Fprintf(&buf, "\n// Tuple%d is a heterogeneous collection of %d members, folded in\n// declaration order.\n", n, n)
		fmt.Fprintf(&buf, "type Tuple%d[%s NodeList] struct {\n", n, params)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&buf, "\tV%d T%d\n", i, i)
		}
		buf.WriteString("}\n")

		fmt.Fprintf(&buf, "\n// NewTuple%d builds a Tuple%d from its members.\n", n, n)
		fmt.Fprintf(&buf, "func NewTuple%d[%s NodeList](%s) Tuple%d[%s] {\n", n, params, valueParams(n), n, params)
		fmt.Fprintf(&buf, "\treturn Tuple%d[%s]{%s}\n}\n", n, params, valueNames(n))

		buf.WriteString("\n// ProcessAll folds each member in order, short-circuiting on the first\n// error.\n")
		fmt.Fprintf(&buf, "func (t Tuple%d[%s]) ProcessAll(fn ProcessFunc) error {\n", n, params)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&buf, "\tif err := t.V%d.ProcessAll(fn); err != nil {\n\t\treturn err\n\t}\n", i)
		}
		buf.WriteString("\treturn nil\n}\n")
	}

	return gofmt(buf.Bytes())
}

// ExportName maps a tag name to its exported constructor name.
func ExportName(tag string) string {
	return string(tag[0]-'a'+'A') + tag[1:]
}

// typeParams returns "T0, T1, ..." for n parameters.
func typeParams(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("T%d", i)
	}
	return strings.Join(parts, ", ")
}

// valueParams returns "v0 T0, v1 T1, ..." for n parameters.
func valueParams(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("v%d T%d", i, i)
	}
	return strings.Join(parts, ", ")
}

// valueNames returns "v0, v1, ..." for n parameters.
func valueNames(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("v%d", i)
	}
	return strings.Join(parts, ", ")
}

// gofmt formats generated source, flagging template bugs.
func gofmt(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, errors.Wrap("G001", err)
	}
	return out, nil
}

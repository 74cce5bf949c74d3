package render

import (
	"strings"
	"unicode"

	"github.com/treefold-dev/treefold/pkg/dom"
)

// stripWhitespace removes all whitespace for layout-insensitive
// comparison of markup.
func stripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// bogusOne is a childless, attributeless test element.
type bogusOne struct{}

func (bogusOne) Attribute(int) (dom.KeyValue, bool)    { return dom.KeyValue{}, false }
func (bogusOne) ProcessChildren(dom.ProcessFunc) error { return nil }
func (bogusOne) Value() dom.Value                      { return dom.ElementValue("bogus_tag_one") }
func (b bogusOne) ProcessAll(fn dom.ProcessFunc) error { return fn(b) }

// bogusTwo is a second childless test element.
type bogusTwo struct{}

func (bogusTwo) Attribute(int) (dom.KeyValue, bool)    { return dom.KeyValue{}, false }
func (bogusTwo) ProcessChildren(dom.ProcessFunc) error { return nil }
func (bogusTwo) Value() dom.Value                      { return dom.ElementValue("bogus_tag_two") }
func (b bogusTwo) ProcessAll(fn dom.ProcessFunc) error { return fn(b) }

// weirdNode reports a kind the writer does not know.
type weirdNode struct{}

func (weirdNode) Attribute(int) (dom.KeyValue, bool)    { return dom.KeyValue{}, false }
func (weirdNode) ProcessChildren(dom.ProcessFunc) error { return nil }
func (weirdNode) Value() dom.Value                      { return dom.Value{Kind: dom.Kind(7)} }
func (n weirdNode) ProcessAll(fn dom.ProcessFunc) error { return fn(n) }

// namelessElement reports an element value with an empty tag.
type namelessElement struct{}

func (namelessElement) Attribute(int) (dom.KeyValue, bool)    { return dom.KeyValue{}, false }
func (namelessElement) ProcessChildren(dom.ProcessFunc) error { return nil }
func (namelessElement) Value() dom.Value                      { return dom.ElementValue("") }
func (n namelessElement) ProcessAll(fn dom.ProcessFunc) error { return fn(n) }

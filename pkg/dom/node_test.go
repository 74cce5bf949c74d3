package dom

import "testing"

// bogusOne is a childless, attributeless test element.
type bogusOne struct{}

func (bogusOne) Attribute(int) (KeyValue, bool)  { return KeyValue{}, false }
func (bogusOne) ProcessChildren(ProcessFunc) error { return nil }
func (bogusOne) Value() Value                     { return ElementValue("bogus_tag_one") }
func (b bogusOne) ProcessAll(fn ProcessFunc) error { return fn(b) }

// bogusTwo is a second childless test element, distinct in type.
type bogusTwo struct{}

func (bogusTwo) Attribute(int) (KeyValue, bool)  { return KeyValue{}, false }
func (bogusTwo) ProcessChildren(ProcessFunc) error { return nil }
func (bogusTwo) Value() Value                     { return ElementValue("bogus_tag_two") }
func (b bogusTwo) ProcessAll(fn ProcessFunc) error { return fn(b) }

// sampleElement is a configurable test element with its own attributes
// and children.
type sampleElement struct {
	tag      string
	attrs    []KeyValue
	children NodeList
}

func (e sampleElement) Attribute(i int) (KeyValue, bool) {
	if i < 0 || i >= len(e.attrs) {
		return KeyValue{}, false
	}
	return e.attrs[i], true
}

func (e sampleElement) ProcessChildren(fn ProcessFunc) error {
	if e.children == nil {
		return nil
	}
	return e.children.ProcessAll(fn)
}

func (e sampleElement) Value() Value { return ElementValue(e.tag) }

func (e sampleElement) ProcessAll(fn ProcessFunc) error { return fn(e) }

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{Kind(42), "Unknown"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Fatalf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestTextValue(t *testing.T) {
	v := Text("hello").Value()
	if v.Kind != KindText {
		t.Fatalf("Text value kind = %v, want Text", v.Kind)
	}
	if v.Text != "hello" {
		t.Fatalf("Text payload = %q, want %q", v.Text, "hello")
	}
	if _, ok := Text("hello").Attribute(0); ok {
		t.Fatalf("Text reported an attribute at index 0")
	}
}

func TestMonotonicExhaustion(t *testing.T) {
	nodes := []Node{
		Text("leaf"),
		bogusOne{},
		sampleElement{tag: "p", attrs: []KeyValue{KV("a", "1"), KV("b", "2")}},
		WithAttributes(bogusOne{}, KV("x", "y")),
		WithAttributes(sampleElement{tag: "p", attrs: []KeyValue{KV("a", "1")}}, KV("x", "y")),
	}

	for _, n := range nodes {
		exhausted := false
		for i := 0; i < 16; i++ {
			_, ok := n.Attribute(i)
			if exhausted && ok {
				t.Fatalf("%T: attribute at index %d after a miss", n, i)
			}
			if !ok {
				exhausted = true
			}
		}
		if !exhausted {
			t.Fatalf("%T: attribute list did not exhaust within 16 entries", n)
		}
	}
}

func TestAttributesIteratorRestartable(t *testing.T) {
	n := sampleElement{tag: "p", attrs: []KeyValue{KV("a", "1"), KV("b", "2")}}

	for round := 0; round < 2; round++ {
		var got []KeyValue
		for kv := range Attributes(n) {
			got = append(got, kv)
		}
		if len(got) != 2 || got[0] != KV("a", "1") || got[1] != KV("b", "2") {
			t.Fatalf("round %d: attributes = %v", round, got)
		}
	}
}

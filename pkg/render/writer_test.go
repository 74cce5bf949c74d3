package render

import (
	stderrors "errors"
	"testing"

	"github.com/treefold-dev/treefold/internal/errors"
	"github.com/treefold-dev/treefold/pkg/dom"
	"github.com/treefold-dev/treefold/pkg/tags"
)

// htmlSample builds the canonical sample tree: a div with one attribute
// holding three bogus elements and a table with mixed content.
func htmlSample() dom.NodeList {
	return tags.Div(dom.NewTuple4(
		bogusOne{},
		bogusOne{},
		bogusTwo{},
		tags.Table(dom.NewTuple4(
			dom.Text("something"),
			tags.Th(dom.Nothing{}),
			tags.Tr(dom.Nothing{}),
			tags.Tr(dom.Nothing{}),
		)),
	)).Attrs(dom.KV("attr", "value"))
}

func TestBuildsString(t *testing.T) {
	got, err := New(Config{}).RenderToString(htmlSample())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := `
	<div attr="value">
		<bogus_tag_one></bogus_tag_one>
		<bogus_tag_one></bogus_tag_one>
		<bogus_tag_two></bogus_tag_two>
		<table>
			something
			<th></th>
			<tr></tr>
			<tr></tr>
		</table>
	</div>
	`
	if stripWhitespace(got) != stripWhitespace(want) {
		t.Fatalf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyOutputMatchesCompact(t *testing.T) {
	compact, err := New(Config{}).RenderToString(htmlSample())
	if err != nil {
		t.Fatalf("compact render failed: %v", err)
	}
	pretty, err := New(Config{Pretty: true, Indent: "    "}).RenderToString(htmlSample())
	if err != nil {
		t.Fatalf("pretty render failed: %v", err)
	}

	if pretty == compact {
		t.Fatalf("pretty mode produced compact output")
	}
	if stripWhitespace(pretty) != stripWhitespace(compact) {
		t.Fatalf("pretty output diverges beyond whitespace:\n%s\nvs\n%s", pretty, compact)
	}
}

func TestEscapesTextByDefault(t *testing.T) {
	got, err := New(Config{}).RenderToString(tags.P(dom.Text(`a<b&c>"d'`)))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := `<p>a&lt;b&amp;c&gt;&quot;d&#39;</p>`
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestEscapesAttributeValues(t *testing.T) {
	node := tags.Div(dom.Nothing{}).Attrs(dom.KV("title", `say "hi" & run`))
	got, err := New(Config{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := `<div title="say &quot;hi&quot; &amp; run"></div>`
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestDisableEscaping(t *testing.T) {
	w := New(Config{DisableEscaping: true})
	got, err := w.RenderToString(tags.P(dom.Text("a<b&c")))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got != "<p>a<b&c</p>" {
		t.Fatalf("rendered %q, want verbatim payload", got)
	}
}

func TestOverlayRendersAttributesNotChildren(t *testing.T) {
	inner := tags.Ul(dom.List[dom.Text]{"a", "b"})
	wrapped := dom.WithAttributes(inner, dom.KV("class", "x"))

	got, err := New(Config{}).RenderToString(wrapped)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got != `<ul class="x"></ul>` {
		t.Fatalf("rendered %q, want attribute without children", got)
	}
}

func TestAttributeOrderPreserved(t *testing.T) {
	node := tags.Div(dom.Nothing{}).Attrs(
		dom.KV("b", "2"), dom.KV("a", "1"), dom.KV("b", "3"),
	)
	got, err := New(Config{}).RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// Declaration order, duplicates kept.
	if got != `<div b="2" a="1" b="3"></div>` {
		t.Fatalf("rendered %q", got)
	}
}

// failingWriter fails on the nth Write call.
type failingWriter struct {
	failAt int
	calls  int
	err    error
	wrote  []byte
}

func (w *failingWriter) Write(p []byte) (int, error) {
	call := w.calls
	w.calls++
	if call == w.failAt {
		return 0, w.err
	}
	w.wrote = append(w.wrote, p...)
	return len(p), nil
}

func TestSinkFailureAbortsFold(t *testing.T) {
	errBroken := stderrors.New("broken pipe")
	sink := &failingWriter{failAt: 3, err: errBroken}

	err := New(Config{}).RenderToWriter(sink, htmlSample())
	if err == nil {
		t.Fatalf("expected error from failing sink")
	}
	if !stderrors.Is(err, errBroken) {
		t.Fatalf("fold error = %v, want wrapped sink error", err)
	}
	if !errors.Is(err, "R002") {
		t.Fatalf("fold error = %v, want code R002", err)
	}
	// Nothing may be written after the failing call.
	if sink.calls != sink.failAt+1 {
		t.Fatalf("writer called %d times, want %d", sink.calls, sink.failAt+1)
	}
}

func TestUnknownKindFails(t *testing.T) {
	err := New(Config{}).RenderToWriter(&failingWriter{failAt: -1}, weirdNode{})
	if err == nil {
		t.Fatalf("expected error for unknown node kind")
	}
	if !errors.Is(err, "R001") {
		t.Fatalf("error = %v, want code R001", err)
	}
}

func TestEmptyTagNameFails(t *testing.T) {
	err := New(Config{}).RenderToWriter(&failingWriter{failAt: -1}, namelessElement{})
	if err == nil {
		t.Fatalf("expected error for empty tag name")
	}
	if !errors.Is(err, "R003") {
		t.Fatalf("error = %v, want code R003", err)
	}
}

func TestDeepNesting(t *testing.T) {
	got, err := New(Config{}).RenderToString(
		tags.Div(tags.Div(tags.Div(tags.Span(dom.Text("deep"))))),
	)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got != "<div><div><div><span>deep</span></div></div></div>" {
		t.Fatalf("rendered %q", got)
	}
}

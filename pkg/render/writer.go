package render

import (
	"bytes"
	"io"

	"github.com/treefold-dev/treefold/internal/errors"
	"github.com/treefold-dev/treefold/pkg/dom"
)

// Config configures the HTML writer.
type Config struct {
	// Pretty enables pretty-printed output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces if not specified.
	Indent string

	// DisableEscaping emits text and attribute values verbatim. The
	// caller then owns escaping of &, <, >, and quotes.
	DisableEscaping bool
}

// HTMLWriter folds a dom tree into markup on an io.Writer sink.
// It implements dom.Processor[io.Writer].
type HTMLWriter struct {
	cfg Config
}

// New creates an HTMLWriter with the given configuration.
func New(cfg Config) *HTMLWriter {
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	return &HTMLWriter{cfg: cfg}
}

// RenderToString renders a node collection to a complete HTML string.
func (h *HTMLWriter) RenderToString(nodes dom.NodeList) (string, error) {
	var buf bytes.Buffer
	if err := h.RenderToWriter(&buf, nodes); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node collection to the given writer.
func (h *HTMLWriter) RenderToWriter(w io.Writer, nodes dom.NodeList) error {
	return dom.Process[io.Writer](h, w, nodes)
}

// Dispatch implements dom.Processor.
func (h *HTMLWriter) Dispatch(w io.Writer) dom.ProcessFunc {
	return h.dispatchAt(w, 0)
}

// dispatchAt returns a dispatch function writing at the given depth.
func (h *HTMLWriter) dispatchAt(w io.Writer, depth int) dom.ProcessFunc {
	return func(n dom.Node) error {
		return h.writeNode(w, n, depth)
	}
}

// writeNode dispatches on the node kind.
func (h *HTMLWriter) writeNode(w io.Writer, n dom.Node, depth int) error {
	v := n.Value()
	switch v.Kind {
	case dom.KindElement:
		return h.writeElement(w, n, v.Tag, depth)
	case dom.KindText:
		return h.writeText(w, v.Text)
	default:
		return errors.New("R001").WithDetail("node reported kind %d (%s)", v.Kind, v.Kind)
	}
}

// writeElement writes the opening tag, attributes in order, the folded
// children, and the closing tag.
func (h *HTMLWriter) writeElement(w io.Writer, n dom.Node, tag string, depth int) error {
	if tag == "" {
		return errors.New("R003")
	}

	if h.cfg.Pretty && depth > 0 {
		if err := h.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if err := writeString(w, "<"+tag); err != nil {
		return err
	}
	for attr := range dom.Attributes(n) {
		if err := h.writeAttr(w, attr); err != nil {
			return err
		}
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}
	if h.cfg.Pretty {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}

	if err := n.ProcessChildren(h.dispatchAt(w, depth+1)); err != nil {
		return err
	}

	if h.cfg.Pretty && depth > 0 {
		if err := h.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if err := writeString(w, "</"+tag+">"); err != nil {
		return err
	}
	if h.cfg.Pretty {
		return writeString(w, "\n")
	}
	return nil
}

// writeText writes a text payload, escaped unless escaping is disabled.
func (h *HTMLWriter) writeText(w io.Writer, text string) error {
	if !h.cfg.DisableEscaping {
		text = escapeHTML(text)
	}
	return writeString(w, text)
}

// writeAttr writes a single ` key="value"` pair.
func (h *HTMLWriter) writeAttr(w io.Writer, attr dom.KeyValue) error {
	value := attr.Value
	if !h.cfg.DisableEscaping {
		value = escapeAttr(value)
	}
	return writeString(w, " "+attr.Key+`="`+value+`"`)
}

// writeIndent writes indentation for pretty printing.
func (h *HTMLWriter) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if err := writeString(w, h.cfg.Indent); err != nil {
			return err
		}
	}
	return nil
}

// writeString writes s to the sink, wrapping failures with the sink
// error code.
func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap("R002", err)
	}
	return nil
}

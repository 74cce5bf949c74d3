package render

import (
	"io"
	"net/http"

	"github.com/treefold-dev/treefold/pkg/dom"
)

// PageData describes a complete HTML document.
type PageData struct {
	// Lang is the html element's lang attribute. Defaults to "en".
	Lang string

	// Title is the document title. Empty omits the title element.
	Title string

	// Head is extra head content (meta, link, style trees). May be nil.
	Head dom.NodeList

	// Body is the document body content. May be nil.
	Body dom.NodeList
}

// StreamingRenderer wraps HTMLWriter with chunked document output.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*HTMLWriter
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer writing to w. If the
// writer implements http.Flusher, content is flushed after the head and
// body sections.
func NewStreamingRenderer(w io.Writer, cfg Config) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		HTMLWriter: New(cfg),
		flusher:    flusher,
		w:          w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
// The head section is flushed immediately for faster first paint.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if err := writeString(s.w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := writeString(s.w, `<html lang="`+escapeAttr(lang)+"\">\n"); err != nil {
		return err
	}

	if err := writeString(s.w, "<head>\n<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if err := writeString(s.w, "<title>"+escapeHTML(page.Title)+"</title>\n"); err != nil {
			return err
		}
	}
	if page.Head != nil {
		if err := s.RenderToWriter(s.w, page.Head); err != nil {
			return err
		}
	}
	if err := writeString(s.w, "</head>\n"); err != nil {
		return err
	}

	// Flush head immediately for faster first paint.
	s.flush()

	if err := writeString(s.w, "<body>\n"); err != nil {
		return err
	}
	if page.Body != nil {
		if err := s.RenderToWriter(s.w, page.Body); err != nil {
			return err
		}
	}
	s.flush()

	if err := writeString(s.w, "</body>\n</html>\n"); err != nil {
		return err
	}
	s.flush()

	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with flush counting. It is useful
// for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}

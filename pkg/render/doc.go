// Package render serializes a dom tree to HTML markup.
//
// HTMLWriter is a dom.Processor over an io.Writer sink. A fold writes
// each element as an opening tag with its attributes in order, the folded
// children, and a closing tag; text leaves are written escaped (see
// Config.DisableEscaping). A sink write failure aborts the whole
// traversal and is returned as the fold's error, so partial output should
// be discarded.
//
//	w := render.New(render.Config{})
//	html, err := w.RenderToString(tags.Div(dom.Text("hi")))
//
// StreamingRenderer wraps HTMLWriter with a whole-page writer that
// flushes incrementally when the sink supports it.
package render

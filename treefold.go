package treefold

import (
	"io"

	"github.com/treefold-dev/treefold/pkg/dom"
	"github.com/treefold-dev/treefold/pkg/render"
)

// Version is the treefold release version.
const Version = "0.1.0"

// Render folds nodes into w with a default HTML writer.
func Render(w io.Writer, nodes dom.NodeList) error {
	return render.New(render.Config{}).RenderToWriter(w, nodes)
}

// RenderString folds nodes into a string with a default HTML writer.
func RenderString(nodes dom.NodeList) (string, error) {
	return render.New(render.Config{}).RenderToString(nodes)
}

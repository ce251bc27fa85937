// Package render defines the renderer seam between the view node mapper and
// concrete output formats, plus the registry renderers are discovered
// through.
package render

import (
	"context"

	"github.com/goliatone/go-layoutviz/pkg/viewnode"
)

// Renderer turns a mapped constraint-group node into output bytes.
type Renderer interface {
	// Name reports the identifier the renderer registers under.
	Name() string
	// ContentType reports the MIME type of Render's output.
	ContentType() string
	// Render produces the final output for one constraint-group node.
	Render(ctx context.Context, group viewnode.Object, opts RenderOptions) ([]byte, error)
}

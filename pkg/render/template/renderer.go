// Package template defines the renderer-agnostic template engine seam. The
// interface mirrors the github.com/goliatone/go-template engine contract so
// that engine, the bundled pongo2 adapter, or a test stub can sit behind it
// interchangeably.
package template

import (
	"io"
)

// TemplateRenderer is the engine contract HTML renderers depend on.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

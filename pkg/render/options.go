package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request presentation data renderers may use
// without the mapping pipeline knowing about it.
type RenderOptions struct {
	// Title labels the rendered document. Renderers fall back to their own
	// default when empty.
	Title string
	// Theme is the resolved go-theme configuration for the request, nil when
	// no theme was selected. HTML renderers translate its tokens into CSS
	// custom properties.
	Theme *theme.RendererConfig
	// Extra is merged into the template context verbatim. Keys here shadow
	// nothing: renderers apply their own context first.
	Extra map[string]any
}

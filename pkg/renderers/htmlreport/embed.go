package htmlreport

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// to extend or override the built-in report markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

package layout

import "fmt"

// Color is an RGB display color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the lowercase #rrggbb form used throughout rendered output.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// DefaultAnnotationColor is applied to instances that carry no annotation.
var DefaultAnnotationColor = Color{R: 0x6b, G: 0x72, B: 0x80}

// Annotation carries per-rendering-pass display metadata for an instance.
// Annotations are supplied externally (typically by a palette) and are never
// stored on the instance itself.
type Annotation struct {
	// Suffix disambiguates instances sharing a display name, empty when the
	// instance needs none.
	Suffix string `json:"suffix,omitempty"`
	Color  Color  `json:"color"`
}

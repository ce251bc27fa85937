// Package palette assigns per-rendering-pass annotations to the instances
// appearing in a constraint group: a display color cycled from a configured
// list, and an ordinal suffix when several instances share a class name.
// Palettes can be built in code, loaded from a YAML document, or sourced
// from go-theme manifest tokens.
package palette

import (
	"fmt"

	"github.com/goliatone/go-layoutviz/pkg/layout"
)

// defaultColors is the built-in cycle, tuned for legibility on light
// backgrounds.
var defaultColors = []layout.Color{
	{R: 0x4f, G: 0x46, B: 0xe5}, // indigo
	{R: 0x08, G: 0x91, B: 0xb2}, // cyan
	{R: 0xdb, G: 0x27, B: 0x77}, // pink
	{R: 0x65, G: 0xa3, B: 0x0d}, // lime
	{R: 0xd9, G: 0x77, B: 0x06}, // amber
	{R: 0x7c, G: 0x3a, B: 0xed}, // violet
	{R: 0x0d, G: 0x94, B: 0x88}, // teal
	{R: 0xdc, G: 0x26, B: 0x26}, // red
}

// Palette produces annotations for a rendering pass.
type Palette struct {
	colors []layout.Color
}

// New builds a palette over the given color cycle. With no colors the
// built-in defaults apply.
func New(colors ...layout.Color) *Palette {
	if len(colors) == 0 {
		colors = defaultColors
	}
	cycle := make([]layout.Color, len(colors))
	copy(cycle, colors)
	return &Palette{colors: cycle}
}

// Colors returns a copy of the palette's color cycle.
func (p *Palette) Colors() []layout.Color {
	out := make([]layout.Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Annotate returns annotations keyed by instance address for every instance
// referenced by the group's constraints. Colors cycle in first-appearance
// order; instances sharing a class name receive ".1", ".2", ... suffixes in
// that same order, while uniquely classed instances receive none. The group
// itself is not modified.
func (p *Palette) Annotate(group layout.ConstraintGroup) map[string]layout.Annotation {
	var ordered []layout.Instance
	seen := make(map[string]struct{})
	record := func(instance layout.Instance) {
		if _, ok := seen[instance.Address]; ok {
			return
		}
		seen[instance.Address] = struct{}{}
		ordered = append(ordered, instance)
	}
	for _, constraint := range group.Constraints {
		record(constraint.First.Instance)
		if constraint.Second != nil {
			record(constraint.Second.Instance)
		}
	}

	classTotals := make(map[string]int, len(ordered))
	for _, instance := range ordered {
		classTotals[instance.ClassName]++
	}

	annotations := make(map[string]layout.Annotation, len(ordered))
	classOrdinals := make(map[string]int, len(classTotals))
	for i, instance := range ordered {
		classOrdinals[instance.ClassName]++
		suffix := ""
		if classTotals[instance.ClassName] > 1 {
			suffix = fmt.Sprintf(".%d", classOrdinals[instance.ClassName])
		}
		annotations[instance.Address] = layout.Annotation{
			Suffix: suffix,
			Color:  p.colors[i%len(p.colors)],
		}
	}
	return annotations
}

// ParseHexColor converts a #rrggbb or rrggbb string into a color.
func ParseHexColor(value string) (layout.Color, error) {
	hex := value
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return layout.Color{}, fmt.Errorf("palette: invalid hex color %q", value)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return layout.Color{}, fmt.Errorf("palette: invalid hex color %q", value)
		}
		channels[i] = hi<<4 | lo
	}
	return layout.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

package palette

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-layoutviz/pkg/layout"
)

// paletteDocument is the YAML shape accepted by Load:
//
//	colors:
//	  - "#4f46e5"
//	  - "#0891b2"
type paletteDocument struct {
	Colors []string `yaml:"colors"`
}

var errNoColors = errors.New("palette: document defines no colors")

// Load reads a YAML palette document from r.
func Load(r io.Reader) (*Palette, error) {
	if r == nil {
		return nil, errors.New("palette: reader is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("palette: read document: %w", err)
	}
	var document paletteDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("palette: parse document: %w", err)
	}
	if len(document.Colors) == 0 {
		return nil, errNoColors
	}
	colors := make([]layout.Color, 0, len(document.Colors))
	for _, raw := range document.Colors {
		color, err := ParseHexColor(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return New(colors...), nil
}

// annotationTokenPrefix names the manifest tokens that feed the palette:
// annotation.0, annotation.1, ... in cycle order.
const annotationTokenPrefix = "annotation."

// FromTheme builds a palette from a go-theme selection. Manifest tokens
// named annotation.N define the color cycle; variant tokens override base
// tokens of the same name. Falls back to the default cycle when the theme
// defines no annotation tokens.
func FromTheme(selector theme.ThemeSelector, name, variant string) (*Palette, error) {
	if selector == nil {
		return nil, errors.New("palette: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("palette: select theme: %w", err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, errors.New("palette: theme selection has no manifest")
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if selection.Variant != "" {
		if v, ok := selection.Manifest.Variants[selection.Variant]; ok {
			for key, value := range v.Tokens {
				tokens[key] = value
			}
		}
	}

	type slot struct {
		index int
		value string
	}
	var slots []slot
	for key, value := range tokens {
		if !strings.HasPrefix(key, annotationTokenPrefix) {
			continue
		}
		index, err := strconv.Atoi(key[len(annotationTokenPrefix):])
		if err != nil {
			continue
		}
		slots = append(slots, slot{index: index, value: value})
	}
	if len(slots) == 0 {
		return New(), nil
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].index < slots[j].index })

	colors := make([]layout.Color, 0, len(slots))
	for _, s := range slots {
		color, err := ParseHexColor(strings.TrimSpace(s.value))
		if err != nil {
			return nil, fmt.Errorf("palette: theme token %s%d: %w", annotationTokenPrefix, s.index, err)
		}
		colors = append(colors, color)
	}
	return New(colors...), nil
}

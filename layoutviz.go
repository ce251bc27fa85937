// Package layoutviz turns captured auto-layout constraint groups into
// rendered reports. It wires the full pipeline with defaults — palette
// annotation, view-node mapping, and a registry of output renderers — while
// leaving every stage open to dependency injection.
package layoutviz

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-layoutviz/pkg/layout"
	"github.com/goliatone/go-layoutviz/pkg/palette"
	"github.com/goliatone/go-layoutviz/pkg/render"
	"github.com/goliatone/go-layoutviz/pkg/renderers/htmlreport"
	"github.com/goliatone/go-layoutviz/pkg/renderers/jsonreport"
	"github.com/goliatone/go-layoutviz/pkg/viewmodel"
)

const defaultRendererName = "html"

// Annotator produces per-pass display annotations for a constraint group,
// keyed by instance address.
type Annotator interface {
	Annotate(group layout.ConstraintGroup) map[string]layout.Annotation
}

// Option customizes the generator configuration.
type Option func(*Generator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithAnnotator injects the annotator applied to groups that arrive without
// annotations. Pass nil to disable annotation entirely.
func WithAnnotator(annotator Annotator) Option {
	return func(g *Generator) {
		g.annotator = annotator
		g.annotatorSpecified = true
	}
}

// WithThemeSelector passes a go-theme selector through so requests can name
// a theme and variant; its tokens surface as CSS variables in HTML output.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		g.themeSelector = selector
	}
}

// Generator coordinates the pipeline from constraint group to rendered
// output. Missing dependencies are initialized with the built-in
// implementations so callers can start with a single constructor call.
type Generator struct {
	registry           *render.Registry
	defaultRenderer    string
	annotator          Annotator
	annotatorSpecified bool
	themeSelector      theme.ThemeSelector
	initErr            error
}

// New constructs a Generator applying any provided options.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if !g.annotatorSpecified {
		g.annotator = palette.New()
	}
	if g.registry != nil {
		return
	}
	g.registry = render.NewRegistry()

	html, err := htmlreport.New()
	if err != nil {
		g.initErr = fmt.Errorf("layoutviz: initialize html renderer: %w", err)
		return
	}
	if err := g.registry.Register(html); err != nil {
		g.initErr = err
		return
	}
	if err := g.registry.Register(jsonreport.New()); err != nil {
		g.initErr = err
	}
}

// Request describes one rendering pass over a constraint group.
type Request struct {
	// Group is the constraint group to visualize.
	Group layout.ConstraintGroup
	// Renderer names the output renderer; empty selects the default.
	Renderer string
	// OmitPermalink forces the group's permalink to null.
	OmitPermalink bool
	// Title labels the rendered document.
	Title string
	// ThemeName and ThemeVariant select a theme when a selector is
	// configured. Both empty means no theme resolution.
	ThemeName    string
	ThemeVariant string
}

// Generate runs the pipeline: annotate the group when it carries no
// annotations, map it to a view node, and render with the requested
// renderer.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if g == nil {
		return nil, errors.New("layoutviz: generator is nil")
	}
	if g.initErr != nil {
		return nil, g.initErr
	}
	if ctx == nil {
		return nil, errors.New("layoutviz: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	group := req.Group
	if group.Annotations == nil && g.annotator != nil {
		group.Annotations = g.annotator.Annotate(group)
	}

	node := viewmodel.GroupNode(group, viewmodel.Options{OmitPermalink: req.OmitPermalink})

	name := req.Renderer
	if name == "" {
		name = g.defaultRenderer
	}
	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, err
	}

	opts := render.RenderOptions{Title: req.Title}
	if req.ThemeName != "" && g.themeSelector != nil {
		themeConfig, err := g.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = themeConfig
	}

	return renderer.Render(ctx, node, opts)
}

// Renderers lists the registered renderer names.
func (g *Generator) Renderers() []string {
	if g == nil || g.registry == nil {
		return nil
	}
	return g.registry.List()
}

// resolveTheme selects the named theme and flattens its tokens (with variant
// overrides) into a renderer config whose CSS variables mirror the tokens.
func (g *Generator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	selection, err := g.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("layoutviz: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("layoutviz: theme %q has no manifest", name)
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

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}, nil
}

// Package htmlreport renders a mapped constraint group into a standalone
// HTML page using the embedded pongo2 templates. Constraint descriptions and
// footnote bodies arrive as pre-rendered HTML and are emitted verbatim by
// default; callers embedding untrusted dumps can opt into sanitization.
package htmlreport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-layoutviz/pkg/render"
	"github.com/goliatone/go-layoutviz/pkg/render/template"
	"github.com/goliatone/go-layoutviz/pkg/render/template/gotemplate"
	"github.com/goliatone/go-layoutviz/pkg/viewnode"
)

const (
	defaultTitle        = "Constraint report"
	defaultPageTemplate = "templates/group"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine, e.g. for custom template
// bundles or test stubs.
func WithTemplateRenderer(templates template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.templates = templates
	}
}

// WithSanitizer enables HTML sanitization of constraint descriptions and
// footnote bodies with the given policy before they reach the page.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.sanitizer = policy
	}
}

// WithPageTemplate overrides the page template name resolved against the
// configured template engine.
func WithPageTemplate(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.pageTemplate = trimmed
		}
	}
}

// Renderer implements render.Renderer for HTML report pages.
type Renderer struct {
	templates    template.TemplateRenderer
	sanitizer    *bluemonday.Policy
	pageTemplate string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. Without options it renders the embedded
// report template through the bundled pongo2 engine.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		pageTemplate: defaultPageTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(embeddedTemplates))
		if err != nil {
			return nil, fmt.Errorf("htmlreport: build template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the MIME type of the rendered page.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the report page for one constraint-group node.
func (r *Renderer) Render(ctx context.Context, group viewnode.Object, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("htmlreport: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("htmlreport: template engine is nil")
	}

	plain, ok := viewnode.Plain(group).(map[string]any)
	if !ok {
		return nil, errors.New("htmlreport: group node must be an object")
	}
	if r.sanitizer != nil {
		sanitizeGroup(plain, r.sanitizer)
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	viewContext := map[string]any{
		"title":       title,
		"group":       plain,
		"theme_style": themeStyle(opts),
	}
	for key, value := range opts.Extra {
		if _, exists := viewContext[key]; exists {
			continue
		}
		viewContext[key] = value
	}

	page, err := r.templates.RenderTemplate(r.pageTemplate, viewContext)
	if err != nil {
		return nil, fmt.Errorf("htmlreport: render %q: %w", r.pageTemplate, err)
	}
	return []byte(page), nil
}

// DescriptionPolicy returns a sanitization policy that keeps the inline
// formatting upstream description generators emit (links, emphasis, code,
// colored spans) and strips everything else.
func DescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("a", "b", "strong", "i", "em", "code", "span", "sup", "sub", "br")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowAttrs("class", "style").OnElements("span", "code")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// sanitizeGroup rewrites the pre-rendered HTML fields in place. The plain
// tree is a fresh copy produced by viewnode.Plain, never caller-owned data.
func sanitizeGroup(group map[string]any, policy *bluemonday.Policy) {
	if constraints, ok := group["constraints"].([]any); ok {
		for _, item := range constraints {
			constraint, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if description, ok := constraint["description"].(string); ok {
				constraint["description"] = policy.Sanitize(description)
			}
		}
	}
	if footnotes, ok := group["footnotes"].([]any); ok {
		for _, item := range footnotes {
			footnote, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if text, ok := footnote["text"].(string); ok {
				footnote["text"] = policy.Sanitize(text)
			}
		}
	}
}

// themeStyle flattens the request's theme CSS variables into declaration
// text for the page's :root block.
func themeStyle(opts render.RenderOptions) string {
	if opts.Theme == nil || len(opts.Theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(opts.Theme.CSSVars))
	for key := range opts.Theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(opts.Theme.CSSVars[key])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}

// Package jsonreport serializes a mapped constraint group as JSON. The
// output is the raw view-node wire contract, which makes it useful both for
// API consumers and for inspecting exactly what the HTML templates receive.
package jsonreport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-layoutviz/pkg/render"
	"github.com/goliatone/go-layoutviz/pkg/viewnode"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent switches output to indented JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer implements render.Renderer for JSON output.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. Output is compact unless WithIndent is given.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType reports the MIME type of the rendered document.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render serializes the group node.
func (r *Renderer) Render(ctx context.Context, group viewnode.Object, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("jsonreport: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if r.indent != "" {
		data, err = json.MarshalIndent(group, "", r.indent)
	} else {
		data, err = json.Marshal(group)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonreport: marshal group: %w", err)
	}
	return data, nil
}

// Package rawconfig emits the form configuration itself in its canonical
// interchange form.
package rawconfig

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Option customises the renderer.
type Option func(*Renderer)

// WithFormat switches the output encoding. JSON is the default; YAML is the
// only alternative the codec can write.
func WithFormat(format model.Format) Option {
	return func(r *Renderer) {
		if format != "" {
			r.format = format
		}
	}
}

// Renderer implements render.Renderer for the "json" target, or for the
// configured format when WithFormat is used.
type Renderer struct {
	format model.Format
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{format: model.FormatJSON}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return string(r.format)
}

func (r *Renderer) ContentType() string {
	switch r.format {
	case model.FormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

func (r *Renderer) Render(ctx context.Context, cfg model.FormConfig, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg = render.ApplySubset(cfg, opts.Subset)
	out, err := model.Encode(cfg, r.format)
	if err != nil {
		return nil, fmt.Errorf("rawconfig renderer: encode: %w", err)
	}
	return out, nil
}

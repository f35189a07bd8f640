// Package formbuilder is the convenience entry point of the module. It wires
// the loader, the orchestrator and the theme store for callers that do not
// need to assemble the pieces themselves.
package formbuilder

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/audit"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/themes"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or restrict output to a subset of fields.
type RenderOptions = render.RenderOptions

// FieldSubset aliases render.FieldSubset for callers configuring partial
// rendering by section or field key.
type FieldSubset = render.FieldSubset

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the form document behind source and renders it with the
// named renderer. An empty renderer name selects the orchestrator default.
func Generate(ctx context.Context, source schema.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromConfig renders an in-memory configuration, bypassing the loader
// stage while still applying transformers, decorators and the audit.
func GenerateFromConfig(ctx context.Context, cfg model.FormConfig, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Config:   &cfg,
		Renderer: rendererName,
	})
}

// AuditSource loads and audits a form document without rendering it.
func AuditSource(ctx context.Context, source schema.Source, options ...orchestrator.Option) (audit.Report, error) {
	gen := orchestrator.New(options...)
	_, report, err := gen.Prepare(ctx, orchestrator.Request{Source: source})
	return report, err
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeStore renders with the store's active theme and layout, preview
// included.
func WithThemeStore(store *themes.Store) orchestrator.Option {
	return func(o *orchestrator.Orchestrator) {
		orchestrator.WithThemeSelector(store)(o)
		orchestrator.WithThemeDefaults(themes.ManifestName, themes.CurrentVariant)(o)
	}
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

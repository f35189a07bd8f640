package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-formbuilder/internal/loader"
	"github.com/goliatone/go-formbuilder/pkg/audit"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/flutter"
	openapirenderer "github.com/goliatone/go-formbuilder/pkg/renderers/openapi"
	"github.com/goliatone/go-formbuilder/pkg/renderers/rawconfig"
	"github.com/goliatone/go-formbuilder/pkg/renderers/react"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vue"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry. Without it every bundled
// non-interactive backend is registered.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWidgets shares a widget registry with the bundled renderers.
func WithWidgets(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.widgets = registry
		}
	}
}

// WithTransformer registers a Transformer that runs after loading and before
// decorators.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that run against the configuration
// before auditing and rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithRepair runs audit.Repair on every configuration before rendering.
func WithRepair(enabled bool, opts ...audit.RepairOption) Option {
	return func(o *Orchestrator) {
		o.repair = enabled
		o.repairOpts = opts
	}
}

// WithStrict refuses to render configurations whose audit reports issues.
func WithStrict(enabled bool) Option {
	return func(o *Orchestrator) {
		o.strict = enabled
	}
}

// WithThemeSelector resolves RenderOptions.Theme through selector when a
// request does not carry one.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeDefaults sets the theme name and variant used when a request
// leaves them empty.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks supplies partials used when a selection lacks them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from form document to rendered
// output. It applies defaults (html renderer, embedded templates) while
// remaining open to dependency injection.
type Orchestrator struct {
	loader          schema.Loader
	registry        *render.Registry
	widgets         *widgets.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
	transformer     Transformer
	decorators      []model.Decorator
	repair          bool
	repairOpts      []audit.RepairOption
	strict          bool
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	themeFallbacks  map[string]string
	logger          *slog.Logger
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form.
type Request struct {
	// Source identifies where the form document lives. Optional when Document
	// or Config is supplied.
	Source schema.Source

	// Document bypasses the loader.
	Document *schema.Document

	// Config bypasses loading and decoding entirely.
	Config *model.FormConfig

	// Renderer names the renderer to use. Empty means the default renderer.
	Renderer string

	// RenderOptions is passed to the renderer. A nil Theme is filled from the
	// theme selector when one is configured.
	RenderOptions render.RenderOptions

	ThemeName    string
	ThemeVariant string
}

// AuditError is returned in strict mode when the audit reports issues.
type AuditError struct {
	Report audit.Report
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("orchestrator: configuration has %d audit issue(s)", len(e.Report.Issues))
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// WidgetRegistry exposes the widget registry shared with the bundled
// renderers.
func (o *Orchestrator) WidgetRegistry() *widgets.Registry {
	return o.widgets
}

// RegisterWidget adds a control matcher to the shared widget registry.
func (o *Orchestrator) RegisterWidget(name string, priority int, matcher widgets.Matcher) {
	o.widgets.Register(name, priority, matcher)
}

// Prepare runs every stage up to rendering and returns the configuration a
// renderer would receive together with its audit report.
func (o *Orchestrator) Prepare(ctx context.Context, req Request) (model.FormConfig, audit.Report, error) {
	if ctx == nil {
		return model.FormConfig{}, audit.Report{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormConfig{}, audit.Report{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.FormConfig{}, audit.Report{}, err
	}

	cfg, err := o.resolveConfig(ctx, req)
	if err != nil {
		return model.FormConfig{}, audit.Report{}, err
	}
	if err := o.applyTransformer(ctx, &cfg); err != nil {
		return model.FormConfig{}, audit.Report{}, err
	}
	if err := o.applyDecorators(&cfg); err != nil {
		return model.FormConfig{}, audit.Report{}, err
	}
	if o.repair {
		cfg = audit.Repair(cfg, o.repairOpts...)
	}

	report := audit.Audit(cfg)
	if report.HasIssues() {
		o.logger.Warn("form audit reported issues",
			slog.String("form", cfg.ID),
			slog.Int("issues", len(report.Issues)),
			slog.Int("warnings", len(report.Warnings)))
		if o.strict {
			return cfg, report, &AuditError{Report: report}
		}
	}
	return cfg, report, nil
}

// Generate executes the load → transform → decorate → audit → render
// sequence and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	cfg, _, err := o.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.render(ctx, cfg, req, req.Renderer)
}

// GenerateAll renders the prepared configuration with every named renderer,
// or with every registered renderer when names is empty.
func (o *Orchestrator) GenerateAll(ctx context.Context, req Request, names ...string) (map[string][]byte, error) {
	cfg, _, err := o.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = o.registry.List()
	}
	out := make(map[string][]byte, len(names))
	for _, name := range names {
		output, err := o.render(ctx, cfg, req, name)
		if err != nil {
			return nil, err
		}
		out[name] = output
	}
	return out, nil
}

func (o *Orchestrator) render(ctx context.Context, cfg model.FormConfig, req Request, name string) ([]byte, error) {
	renderer, err := o.rendererFor(name)
	if err != nil {
		return nil, err
	}
	opts := req.RenderOptions
	if opts.Theme == nil {
		themeCfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		opts.Theme = themeCfg
	}

	output, err := renderer.Render(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render %s: %w", renderer.Name(), err)
	}
	o.logger.Debug("form rendered",
		slog.String("form", cfg.ID),
		slog.String("renderer", renderer.Name()),
		slog.Int("bytes", len(output)))
	return output, nil
}

func (o *Orchestrator) resolveConfig(ctx context.Context, req Request) (model.FormConfig, error) {
	if req.Config != nil {
		return req.Config.Clone(), nil
	}
	doc := req.Document
	if doc == nil {
		if req.Source == nil {
			return model.FormConfig{}, errors.New("orchestrator: source, document or config is required")
		}
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return model.FormConfig{}, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = &loaded
	}
	cfg, err := doc.Config()
	if err != nil {
		return model.FormConfig{}, fmt.Errorf("orchestrator: decode document: %w", err)
	}
	return cfg, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(cfg *model.FormConfig) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(cfg); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, cfg *model.FormConfig) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, cfg); err != nil {
		return fmt.Errorf("orchestrator: transform form: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(schema.NewLoaderOptions())
	}
	if o.widgets == nil {
		o.widgets = widgets.NewRegistry()
	}
	if o.registry == nil {
		o.registry, o.initialiseErr = DefaultRegistry(o.widgets)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

// DefaultRegistry registers every bundled non-interactive renderer, sharing
// the widget registry where a renderer consumes one.
func DefaultRegistry(reg *widgets.Registry) (*render.Registry, error) {
	if reg == nil {
		reg = widgets.Default()
	}
	registry := render.NewRegistry()

	html, err := vanilla.New(vanilla.WithWidgets(reg))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: html renderer: %w", err)
	}
	vueRenderer, err := vue.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: vue renderer: %w", err)
	}

	for _, renderer := range []render.Renderer{
		html,
		vueRenderer,
		react.New(react.WithWidgets(reg)),
		flutter.New(),
		rawconfig.New(),
		rawconfig.New(rawconfig.WithFormat(model.FormatYAML)),
		openapirenderer.New(openapirenderer.WithWidgets(reg)),
	} {
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("orchestrator: register %s: %w", renderer.Name(), err)
		}
	}
	return registry, nil
}

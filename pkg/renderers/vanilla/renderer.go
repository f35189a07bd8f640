// Package vanilla renders a form configuration as a self-contained HTML page
// with inline styles and a small submit script. Text-like fields, dropdowns
// and multi-line fields get dedicated controls; every other field type falls
// back to a text input.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

const (
	pageTemplate = "templates/page.tmpl"
	defaultTitle = "Dynamic Form"
	formID       = "dynamicForm"
)

// Option customises the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        *bluemonday.Policy
	widgets          *widgets.Registry
	classes          ChromeClasses
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. It must
// provide templates/page.tmpl and templates/field.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer replaces the policy applied to descriptions and helper text.
// The default is bluemonday's UGC policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// WithWidgets swaps the widget registry used to pick controls.
func WithWidgets(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithChromeClasses overrides the structural CSS classes.
func WithChromeClasses(classes ChromeClasses) Option {
	return func(cfg *config) {
		cfg.classes = classes
	}
}

// WithoutInlineStyles drops the embedded stylesheet. Theme CSS variables are
// still emitted.
func WithoutInlineStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = false
	}
}

// Renderer implements render.Renderer for the "html" target.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitizer *bluemonday.Policy
	widgets   *widgets.Registry
	classes   ChromeClasses
	styles    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		sanitizer:    bluemonday.UGCPolicy(),
		widgets:      widgets.Default(),
		inlineStyles: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	r := &Renderer{
		templates: renderer,
		sanitizer: cfg.sanitizer,
		widgets:   cfg.widgets,
		classes:   cfg.classes.withDefaults(),
	}
	if cfg.inlineStyles {
		r.styles = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the page for cfg. Values pre-fill controls and the theme's CSS
// variables are inlined ahead of the stylesheet.
func (r *Renderer) Render(ctx context.Context, cfg model.FormConfig, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	cfg = render.ApplySubset(cfg, opts.Subset)

	builder := fieldBuilder{widgets: r.widgets, sanitizer: r.sanitizer, values: opts.Values}
	title := cfg.Title
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}

	var cssVars map[string]string
	if opts.Theme != nil {
		cssVars = opts.Theme.CSSVars
	}

	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":          title,
		"description":    builder.sanitize(cfg.Description),
		"form_id":        formID,
		"classes":        r.classes,
		"entries":        builder.entries(cfg),
		"css_vars":       cssVarsStyle(cssVars),
		"stylesheet":     r.styles,
		"stylesheet_url": themeStylesheetURL(opts.Theme),
		"body_class":     themeBodyClass(opts.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

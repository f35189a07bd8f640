// Package vue renders a Vue single-file component skeleton for a form: the
// title, the description and a submit handler stub around a reactive state
// placeholder. Fields are not rendered individually.
package vue

import (
	"context"
	"embed"
	"fmt"
	"html"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

const (
	templateName = "templates/form.vue.tmpl"
	defaultTitle = "Dynamic Form"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Option customises the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// templates/form.vue.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
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

// Renderer implements render.Renderer for the "vue" target.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithTemplateFunc(map[string]any{
				"vuetext": pongo2.FilterFunction(filterVueText),
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("vue renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vue"
}

func (r *Renderer) ContentType() string {
	return "text/x-vue; charset=utf-8"
}

// Render emits the component for cfg. The subset is ignored because the
// skeleton renders no fields.
func (r *Renderer) Render(ctx context.Context, cfg model.FormConfig, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vue renderer: template renderer is nil")
	}

	title := cfg.Title
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}
	result, err := r.templates.RenderTemplate(templateName, map[string]any{
		"title":       title,
		"description": strings.TrimSpace(cfg.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("vue renderer: render template: %w", err)
	}
	return []byte(result), nil
}

var mustacheReplacer = strings.NewReplacer("{", "&#123;", "}", "&#125;")

// filterVueText escapes text for a Vue template body, where a literal "{{"
// would start an interpolation.
func filterVueText(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(mustacheReplacer.Replace(html.EscapeString(in.String()))), nil
}

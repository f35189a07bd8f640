// Package openapi exports a form configuration as an OpenAPI 3 document. The
// submission payload is described by a single object schema under
// components.schemas whose properties mirror the form fields, their required
// set and the length, range and pattern constraints of their rules.
package openapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

const (
	specVersion    = "3.0.3"
	defaultVersion = "1.0.0"
	defaultSchema  = "Form"
	colorPattern   = `^#[0-9a-fA-F]{6}$`
)

// Option customises the renderer.
type Option func(*Renderer)

// WithVersion sets info.version on the emitted document.
func WithVersion(version string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(version); trimmed != "" {
			r.version = trimmed
		}
	}
}

// WithWidgets swaps the registry used to read slider and rating bounds.
func WithWidgets(registry *widgets.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.widgets = registry
		}
	}
}

// Renderer implements render.Renderer for the "openapi" target.
type Renderer struct {
	version string
	widgets *widgets.Registry
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{version: defaultVersion, widgets: widgets.Default()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "openapi"
}

func (r *Renderer) ContentType() string {
	return "application/vnd.oai.openapi+json"
}

func (r *Renderer) Render(ctx context.Context, cfg model.FormConfig, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := r.Document(render.ApplySubset(cfg, opts.Subset))
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi renderer: encode document: %w", err)
	}
	return append(out, '\n'), nil
}

// Document builds the OpenAPI document for cfg.
func (r *Renderer) Document(cfg model.FormConfig) *openapi3.T {
	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = "Dynamic Form"
	}
	return &openapi3.T{
		OpenAPI: specVersion,
		Info: &openapi3.Info{
			Title:       title,
			Description: cfg.Description,
			Version:     r.version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				SchemaName(cfg): openapi3.NewSchemaRef("", r.Schema(cfg)),
			},
		},
	}
}

// Schema returns the object schema describing a submission of cfg.
func (r *Renderer) Schema(cfg model.FormConfig) *openapi3.Schema {
	object := openapi3.NewObjectSchema()
	object.Title = cfg.Title
	object.Description = cfg.Description

	var required []string
	seen := make(map[string]struct{})
	for _, field := range model.Flatten(cfg) {
		if _, dup := seen[field.Key]; dup || field.Key == "" {
			continue
		}
		seen[field.Key] = struct{}{}
		property, isRequired := r.property(field)
		object.WithProperty(field.Key, property)
		if isRequired {
			required = append(required, field.Key)
		}
	}
	if len(required) > 0 {
		object.WithRequired(required)
	}
	return object
}

func (r *Renderer) property(field model.Field) (*openapi3.Schema, bool) {
	control := r.widgets.Control(field)
	var schema *openapi3.Schema
	switch field.Type {
	case model.FieldTypeNumber:
		schema = openapi3.NewFloat64Schema()
	case model.FieldTypeCheckbox:
		schema = openapi3.NewBoolSchema()
	case model.FieldTypeEmail:
		schema = openapi3.NewStringSchema().WithFormat("email")
	case model.FieldTypeDate:
		schema = openapi3.NewStringSchema().WithFormat("date")
	case model.FieldTypeColor:
		schema = openapi3.NewStringSchema().WithPattern(colorPattern)
	case model.FieldTypeDropdown, model.FieldTypeRadio:
		schema = openapi3.NewStringSchema()
		if options := field.Options(); len(options) > 0 {
			schema.WithEnum(enumValues(options)...)
		}
	case model.FieldTypeMultiSelect:
		items := openapi3.NewStringSchema()
		if options := field.Options(); len(options) > 0 {
			items.WithEnum(enumValues(options)...)
		}
		schema = openapi3.NewArraySchema().WithItems(items).WithUniqueItems(true)
	case model.FieldTypeSlider:
		schema = openapi3.NewFloat64Schema().WithMin(control.Min).WithMax(control.Max)
	case model.FieldTypeRating:
		if control.AllowHalf {
			schema = openapi3.NewFloat64Schema()
		} else {
			schema = openapi3.NewIntegerSchema()
		}
		schema.WithMin(0).WithMax(float64(control.MaxRating))
	default:
		schema = openapi3.NewStringSchema()
	}
	schema.Title = field.DisplayLabel()
	schema.Description = field.HelperText
	return schema, applyRules(schema, field)
}

// applyRules copies the first valid rule of each kind onto schema and reports
// whether the field is required. Custom and malformed rules are skipped.
func applyRules(schema *openapi3.Schema, field model.Field) bool {
	rules := validation.EffectiveRules(field)
	invalid := make(map[int]struct{})
	for _, problem := range validation.CheckRules(rules) {
		invalid[problem.Index] = struct{}{}
	}

	required := false
	seen := make(map[model.RuleType]struct{})
	for i, rule := range rules {
		if _, bad := invalid[i]; bad {
			continue
		}
		if _, dup := seen[rule.Type]; dup {
			continue
		}
		switch rule.Type {
		case model.RuleRequired:
			required = true
		case model.RuleMinLength, model.RuleMaxLength:
			n, ok := ruleNumber(rule.Value)
			if !ok || n < 0 || !isStringSchema(schema) {
				continue
			}
			if rule.Type == model.RuleMinLength {
				schema.WithMinLength(int64(n))
			} else {
				schema.WithMaxLength(int64(n))
			}
		case model.RuleMin, model.RuleMax:
			n, ok := ruleNumber(rule.Value)
			if !ok || !isNumericSchema(schema) {
				continue
			}
			if rule.Type == model.RuleMin {
				schema.WithMin(n)
			} else {
				schema.WithMax(n)
			}
		case model.RulePattern:
			pattern, ok := rule.Value.(string)
			if !ok || pattern == "" || !isStringSchema(schema) {
				continue
			}
			schema.WithPattern(pattern)
		default:
			continue
		}
		seen[rule.Type] = struct{}{}
	}
	return required
}

func isStringSchema(schema *openapi3.Schema) bool {
	return schema.Type != nil && schema.Type.Is(openapi3.TypeString)
}

func isNumericSchema(schema *openapi3.Schema) bool {
	return schema.Type != nil && (schema.Type.Is(openapi3.TypeNumber) || schema.Type.Is(openapi3.TypeInteger))
}

func enumValues(options []string) []any {
	out := make([]any, 0, len(options))
	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		if _, dup := seen[option]; dup {
			continue
		}
		seen[option] = struct{}{}
		out = append(out, option)
	}
	return out
}

func ruleNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// SchemaName derives the component name from the form id, falling back to
// the title and then to "Form".
func SchemaName(cfg model.FormConfig) string {
	for _, candidate := range []string{cfg.ID, cfg.Title} {
		if name := pascalCase(candidate); name != "" {
			return name
		}
	}
	return defaultSchema
}

func pascalCase(s string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return !(r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
	}) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	name := b.String()
	if name != "" && !unicode.IsLetter(rune(name[0])) {
		name = defaultSchema + name
	}
	return name
}

// Package react renders a form configuration as a single React component
// bound to react-hook-form. Every field becomes one control chosen by the
// shared widget mapping, and the configuration itself is exported as
// formConfig next to the component.
package react

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

const (
	labelClass = "block text-sm font-medium text-gray-300 mb-2"
	inputClass = "w-full px-3 py-2 bg-gray-800 border border-gray-600 text-white placeholder-gray-400 rounded-md focus:outline-none focus:ring-2 focus:ring-blue-500"
	errorClass = "mt-1 text-sm text-red-600"
	checkClass = "w-4 h-4 text-blue-600 border-gray-600 bg-gray-800 rounded focus:ring-blue-500"

	defaultTitle      = "Dynamic Form"
	defaultSelectText = "Select an option"
	fallbackError     = "This field is required"
)

// Option customises the renderer.
type Option func(*Renderer)

// WithWidgets swaps the widget registry used to pick controls.
func WithWidgets(registry *widgets.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.widgets = registry
		}
	}
}

// WithComponentName overrides the exported component name.
func WithComponentName(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.component = trimmed
		}
	}
}

// Renderer implements render.Renderer for the "react" target.
type Renderer struct {
	widgets   *widgets.Registry
	component string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer with the shared widget registry.
func New(options ...Option) *Renderer {
	r := &Renderer{widgets: widgets.Default(), component: "DynamicForm"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "react"
}

func (r *Renderer) ContentType() string {
	return "text/jsx; charset=utf-8"
}

// Render emits the component module for cfg.
func (r *Renderer) Render(ctx context.Context, cfg model.FormConfig, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg = render.ApplySubset(cfg, opts.Subset)

	exported, err := model.MarshalIndent(cfg)
	if err != nil {
		return nil, fmt.Errorf("react renderer: encode config: %w", err)
	}

	w := &writer{}
	w.line(0, "import React from 'react';")
	w.line(0, "import { useForm } from 'react-hook-form';")
	w.blank()
	w.line(0, "export default function "+r.component+"() {")
	w.line(1, "const { register, handleSubmit, formState: { errors } } = useForm();")
	w.blank()
	w.line(1, "const onSubmit = (data) => {")
	w.line(2, "console.log('Form data:', data);")
	w.line(1, "};")
	w.blank()
	w.line(1, "return (")
	w.line(2, `<div className="max-w-2xl mx-auto p-6 bg-gray-900 text-white min-h-screen">`)
	w.line(3, `<h1 className="text-2xl font-bold mb-4 text-white">`+jsxText(fallback(cfg.Title, defaultTitle))+`</h1>`)
	if strings.TrimSpace(cfg.Description) != "" {
		w.line(3, `<p className="text-gray-300 mb-6">`+jsxText(cfg.Description)+`</p>`)
	}
	w.blank()
	w.line(3, `<form onSubmit={handleSubmit(onSubmit)} className="space-y-6">`)
	for _, entry := range cfg.Sections {
		switch entry.Kind() {
		case model.EntrySection:
			r.writeSection(w, 4, *entry.Section, opts.Values)
		case model.EntryField:
			r.writeField(w, 4, *entry.Field, opts.Values)
		}
	}
	w.blank()
	w.line(4, "<button")
	w.line(5, `type="submit"`)
	w.line(5, `className="w-full bg-blue-600 text-white py-2 px-4 rounded-md hover:bg-blue-700 transition-colors"`)
	w.line(4, ">")
	w.line(5, "Submit")
	w.line(4, "</button>")
	w.line(3, "</form>")
	w.line(2, "</div>")
	w.line(1, ");")
	w.line(0, "}")
	w.blank()
	w.line(0, "// Form configuration")
	w.line(0, "export const formConfig = "+string(exported)+";")
	return []byte(w.String()), nil
}

func (r *Renderer) writeSection(w *writer, depth int, section model.Section, values map[string]any) {
	w.line(depth, `<fieldset data-section=`+jsString(section.ID)+` className="space-y-6">`)
	if title := strings.TrimSpace(section.Title); title != "" {
		w.line(depth+1, `<legend className="text-lg font-semibold text-white">`+jsxText(title)+`</legend>`)
	}
	if desc := strings.TrimSpace(section.Description); desc != "" {
		w.line(depth+1, `<p className="text-gray-400 text-sm">`+jsxText(desc)+`</p>`)
	}
	for _, field := range section.Fields {
		r.writeField(w, depth+1, field, values)
	}
	w.line(depth, "</fieldset>")
}

func (r *Renderer) writeField(w *writer, depth int, field model.Field, values map[string]any) {
	control := r.widgets.Control(field)
	reg := "{...register(" + jsString(field.Key) + ", " + registerOptions(field) + ")}"
	label := jsxText(field.DisplayLabel())
	placeholder := `placeholder="` + jsxAttr(field.Placeholder) + `"`
	defaultValue := defaultValueAttr(values, field.Key)

	w.line(depth, `<div data-field="`+jsxAttr(field.Key)+`">`)
	d := depth + 1
	switch control.Kind {
	case widgets.KindCheckbox:
		w.line(d, `<label className="flex items-center space-x-2">`)
		w.line(d+1, `<input type="checkbox" `+reg+` className="`+checkClass+`" />`)
		w.line(d+1, `<span className="text-sm text-gray-300">`+label+`</span>`)
		w.line(d, `</label>`)
	default:
		w.line(d, `<label className="`+labelClass+`">`+label+`</label>`)
		r.writeControl(w, d, field, control, reg, placeholder, defaultValue)
	}
	if help := strings.TrimSpace(field.HelperText); help != "" {
		w.line(d, `<p className="mt-1 text-xs text-gray-400">`+jsxText(help)+`</p>`)
	}
	key := jsString(field.Key)
	w.line(d, "{errors["+key+"] && <p className=\""+errorClass+"\">{errors["+key+"].message || "+jsString(fallbackError)+"}</p>}")
	w.line(depth, "</div>")
}

func (r *Renderer) writeControl(w *writer, d int, field model.Field, control widgets.Control, reg, placeholder, defaultValue string) {
	switch control.Kind {
	case widgets.KindTextArea:
		w.line(d, `<textarea `+reg+` `+placeholder+defaultValue+` rows={4} className="`+inputClass+`" />`)
	case widgets.KindSelect:
		w.line(d, `<select `+reg+defaultValue+` className="`+inputClass+`">`)
		w.line(d+1, `<option value="">`+jsxText(fallback(field.Placeholder, defaultSelectText))+`</option>`)
		for _, option := range control.Options {
			w.line(d+1, `<option value="`+jsxAttr(option)+`">`+jsxText(option)+`</option>`)
		}
		w.line(d, `</select>`)
	case widgets.KindRadioGroup, widgets.KindMultiChoice:
		inputType := "radio"
		if control.Kind == widgets.KindMultiChoice {
			inputType = "checkbox"
		}
		w.line(d, `<div role="group" className="space-y-2">`)
		for _, option := range control.Options {
			w.line(d+1, `<label className="flex items-center space-x-2">`)
			w.line(d+2, `<input type="`+inputType+`" value="`+jsxAttr(option)+`" `+reg+` className="`+checkClass+`" />`)
			w.line(d+2, `<span className="text-sm text-gray-300">`+jsxText(option)+`</span>`)
			w.line(d+1, `</label>`)
		}
		w.line(d, `</div>`)
	case widgets.KindDate:
		w.line(d, `<input type="date" `+reg+defaultValue+` className="`+inputClass+`" />`)
	case widgets.KindRange:
		w.line(d, fmt.Sprintf(`<input type="range" min={%s} max={%s} step={%s} %s%s className="w-full" />`,
			formatFloat(control.Min), formatFloat(control.Max), formatFloat(control.Step), reg, defaultValue))
		if control.ShowLabels {
			w.line(d, fmt.Sprintf(`<div className="flex justify-between text-xs text-gray-400"><span>%s</span><span>%s</span></div>`,
				formatFloat(control.Min), formatFloat(control.Max)))
		}
	case widgets.KindRating:
		w.line(d, `<div role="radiogroup" className="flex space-x-1">`)
		for _, value := range ratingSteps(control) {
			w.line(d+1, `<label><input type="radio" value="`+value+`" `+reg+` className="sr-only" />★</label>`)
		}
		w.line(d, `</div>`)
	case widgets.KindColor:
		w.line(d, `<input type="color" `+reg+defaultValue+` className="h-10 w-16 rounded" />`)
	case widgets.KindFile:
		w.line(d, `<input type="file" `+reg+` className="`+inputClass+`" />`)
	default:
		inputType := control.InputType
		if inputType == "" {
			inputType = "text"
		}
		w.line(d, `<input type="`+inputType+`" `+reg+` `+placeholder+defaultValue+` className="`+inputClass+`" />`)
	}
}

// registerOptions maps the field's effective rules onto react-hook-form
// register options. Only the first rule of each kind is kept, custom rules
// are skipped, and so are rules whose value cannot be interpreted.
func registerOptions(field model.Field) string {
	rules := validation.EffectiveRules(field)
	invalid := make(map[int]struct{})
	for _, problem := range validation.CheckRules(rules) {
		invalid[problem.Index] = struct{}{}
	}

	seen := make(map[model.RuleType]struct{})
	var parts []string
	for i, rule := range rules {
		if _, bad := invalid[i]; bad {
			continue
		}
		if _, dup := seen[rule.Type]; dup {
			continue
		}
		var part string
		switch rule.Type {
		case model.RuleRequired:
			part = "required: " + jsString(rule.Message)
		case model.RuleMinLength, model.RuleMaxLength, model.RuleMin, model.RuleMax:
			bound, ok := numberLiteral(rule.Value)
			if !ok {
				continue
			}
			part = string(rule.Type) + ": { value: " + bound + ", message: " + jsString(rule.Message) + " }"
		case model.RulePattern:
			pattern, ok := rule.Value.(string)
			if !ok || pattern == "" {
				continue
			}
			part = "pattern: { value: new RegExp(" + jsString(pattern) + "), message: " + jsString(rule.Message) + " }"
		default:
			continue
		}
		seen[rule.Type] = struct{}{}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "{ required: false }"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func defaultValueAttr(values map[string]any, key string) string {
	value, ok := values[key]
	if !ok || value == nil {
		return ""
	}
	return ` defaultValue="` + jsxAttr(fmt.Sprint(value)) + `"`
}

func ratingSteps(control widgets.Control) []string {
	var steps []string
	for i := 1; i <= control.MaxRating; i++ {
		if control.AllowHalf {
			steps = append(steps, formatFloat(float64(i)-0.5))
		}
		steps = append(steps, strconv.Itoa(i))
	}
	return steps
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

type writer struct {
	strings.Builder
}

func (w *writer) line(depth int, text string) {
	w.WriteString(strings.Repeat("  ", depth))
	w.WriteString(text)
	w.WriteByte('\n')
}

func (w *writer) blank() {
	w.WriteByte('\n')
}

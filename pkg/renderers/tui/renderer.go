// Package tui previews a form configuration in the terminal. Each field is
// asked with the prompt matching its control kind and re-asked until the
// field's validation rules accept the answer. The collected values are the
// render output.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

const dateLayout = "2006-01-02"

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver            PromptDriver
	out               io.Writer
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	widgets           *widgets.Registry
	logger            *slog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        Theme{SectionPrefix: "== ", ErrorPrefix: "! "},
		widgets:      widgets.Default(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render walks cfg in display order, prompting for every field. opts.Values
// prefill the prompts' defaults.
func (r *Renderer) Render(ctx context.Context, cfg model.FormConfig, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	cfg = render.ApplySubset(cfg, opts.Subset)
	state := NewState(opts.Values)

	if title := strings.TrimSpace(cfg.Title); title != "" {
		if err := r.driver.Info(ctx, r.theme.SectionPrefix+title); err != nil {
			return nil, err
		}
	}
	for _, entry := range cfg.Sections {
		switch entry.Kind() {
		case model.EntrySection:
			if err := r.announce(ctx, *entry.Section); err != nil {
				return nil, err
			}
			for _, field := range entry.Section.Fields {
				if err := r.promptField(ctx, field, state); err != nil {
					return nil, err
				}
			}
		case model.EntryField:
			if err := r.promptField(ctx, *entry.Field, state); err != nil {
				return nil, err
			}
		}
	}

	values := make(map[string]any, len(state.Order()))
	for _, key := range state.Order() {
		values[key], _ = state.Value(key)
	}
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values, state.Order())
}

func (r *Renderer) announce(ctx context.Context, section model.Section) error {
	title := strings.TrimSpace(section.Title)
	if title == "" {
		return nil
	}
	msg := r.theme.SectionPrefix + title
	if desc := strings.TrimSpace(section.Description); desc != "" {
		msg += "\n" + desc
	}
	return r.driver.Info(ctx, msg)
}

// promptField asks until an answer both parses for the control kind and
// passes the field's rules.
func (r *Renderer) promptField(ctx context.Context, field model.Field, state *State) error {
	control := r.widgets.Control(field)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, err := r.ask(ctx, field, control, state)
		var invalid invalidAnswer
		switch {
		case errors.As(err, &invalid):
			if err := r.reject(ctx, field, state, string(invalid)); err != nil {
				return err
			}
			continue
		case err != nil:
			return err
		}
		if msg := validation.Check(field, value); msg != "" {
			if err := r.reject(ctx, field, state, msg); err != nil {
				return err
			}
			continue
		}
		state.Set(field.Key, value)
		return nil
	}
}

func (r *Renderer) reject(ctx context.Context, field model.Field, state *State, msg string) error {
	state.Reject(field.Key, msg)
	r.logger.Debug("answer rejected", slog.String("field", field.Key), slog.String("reason", msg))
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

// invalidAnswer is a parse failure the user can correct by answering again.
type invalidAnswer string

func (e invalidAnswer) Error() string { return string(e) }

func (r *Renderer) ask(ctx context.Context, field model.Field, control widgets.Control, state *State) (any, error) {
	label := field.DisplayLabel()
	help := field.HelperText
	rules := validation.EffectiveRules(field)
	current, _ := state.Value(field.Key)

	switch control.Kind {
	case widgets.KindCheckbox:
		return r.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: current == true, Help: help})

	case widgets.KindSelect, widgets.KindRadioGroup:
		if len(control.Options) == 0 {
			return r.askText(ctx, field, current)
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      control.Options,
			DefaultIndex: indexOf(control.Options, stringValue(current)),
			Help:         help,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(control.Options) {
			return nil, invalidAnswer("Please select an option")
		}
		return control.Options[idx], nil

	case widgets.KindMultiChoice:
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  control.Options,
			Defaults: indicesOf(control.Options, stringSlice(current)),
			Help:     help,
		})
		if err != nil {
			return nil, err
		}
		return valuesFromIndices(control.Options, indices), nil

	case widgets.KindRating:
		steps := ratingSteps(control)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      steps,
			DefaultIndex: indexOf(steps, stringValue(current)),
			Help:         help,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(steps) {
			return nil, invalidAnswer("Please select a rating")
		}
		value, _ := strconv.ParseFloat(steps[idx], 64)
		return value, nil

	case widgets.KindTextArea:
		return r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: stringValue(current), Help: help, Rules: rules})

	case widgets.KindRange:
		raw, err := r.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s [%s-%s]", label, formatNumber(control.Min), formatNumber(control.Max)),
			Default: stringValue(current),
			Help:    help,
		})
		if err != nil {
			return nil, err
		}
		value, ok := parseNumber(raw)
		if !ok {
			return nil, invalidAnswer("Please enter a number")
		}
		if value < control.Min || value > control.Max {
			return nil, invalidAnswer(fmt.Sprintf("Value must be between %s and %s", formatNumber(control.Min), formatNumber(control.Max)))
		}
		return value, nil

	case widgets.KindDate:
		raw, err := r.driver.Input(ctx, InputConfig{Message: label, Default: stringValue(current), Help: help, Placeholder: dateLayout})
		if err != nil {
			return nil, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return "", nil
		}
		if _, err := time.Parse(dateLayout, raw); err != nil {
			return nil, invalidAnswer("Please enter a date as YYYY-MM-DD")
		}
		return raw, nil

	case widgets.KindColor:
		raw, err := r.driver.Input(ctx, InputConfig{Message: label, Default: stringValue(current), Help: help, Placeholder: "#rrggbb"})
		if err != nil {
			return nil, err
		}
		raw = strings.TrimSpace(raw)
		if raw != "" && !colorRe.MatchString(raw) {
			return nil, invalidAnswer("Please enter a color as #rrggbb")
		}
		return raw, nil

	case widgets.KindFile:
		return r.driver.File(ctx, FileConfig{Message: label, Default: stringValue(current), Help: help})

	case widgets.KindInput:
		if control.InputType == "password" {
			return r.driver.Password(ctx, InputConfig{Message: label, Help: help, Placeholder: field.Placeholder, Rules: rules})
		}
		if control.InputType == "number" {
			raw, err := r.driver.Input(ctx, InputConfig{Message: label, Default: stringValue(current), Help: help, Placeholder: field.Placeholder, Rules: rules})
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(raw) == "" {
				return nil, nil
			}
			value, ok := parseNumber(raw)
			if !ok {
				return nil, invalidAnswer("Please enter a number")
			}
			return value, nil
		}
		return r.askText(ctx, field, current)

	default:
		return r.askText(ctx, field, current)
	}
}

func (r *Renderer) askText(ctx context.Context, field model.Field, current any) (any, error) {
	return r.driver.Input(ctx, InputConfig{
		Message:     field.DisplayLabel(),
		Default:     stringValue(current),
		Help:        field.HelperText,
		Placeholder: field.Placeholder,
		Rules:       validation.EffectiveRules(field),
	})
}

func (r *Renderer) serialize(values map[string]any, order []string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values, order)), nil
	default:
		out, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return out, nil
	}
}

func ratingSteps(control widgets.Control) []string {
	var steps []string
	for i := 1; i <= control.MaxRating; i++ {
		if control.AllowHalf {
			steps = append(steps, formatNumber(float64(i)-0.5))
		}
		steps = append(steps, strconv.Itoa(i))
	}
	return steps
}

func parseNumber(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return value, err == nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatNumber(v)
	default:
		return fmt.Sprint(v)
	}
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringValue(item))
		}
		return out
	default:
		return nil
	}
}

func valuesFromIndices(options []string, indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			out = append(out, options[idx])
		}
	}
	return out
}

func encodeForm(values map[string]any) string {
	form := url.Values{}
	for key, value := range values {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				form.Add(key, item)
			}
		case nil:
			form.Set(key, "")
		default:
			form.Set(key, stringValue(v))
		}
	}
	return form.Encode()
}

func prettyPrint(values map[string]any, order []string) string {
	var b strings.Builder
	for _, key := range order {
		value, ok := values[key]
		if !ok {
			continue
		}
		if items, isList := value.([]string); isList {
			fmt.Fprintf(&b, "%s=%s\n", key, strings.Join(items, ", "))
			continue
		}
		fmt.Fprintf(&b, "%s=%s\n", key, stringValue(value))
	}
	return b.String()
}

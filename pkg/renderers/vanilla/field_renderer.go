package vanilla

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/widgets"
)

const defaultSelectPrompt = "Select an option"

// The static page renders three control shapes. Every other widget kind
// degrades to a text input.
const (
	controlInput    = "input"
	controlSelect   = "select"
	controlTextArea = "textarea"
)

type optionView struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

type fieldView struct {
	Key         string       `json:"key"`
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Control     string       `json:"control"`
	InputType   string       `json:"input_type"`
	Placeholder string       `json:"placeholder"`
	Prompt      string       `json:"prompt"`
	Required    bool         `json:"required"`
	Value       string       `json:"value"`
	Options     []optionView `json:"options,omitempty"`
	HelperText  string       `json:"helper_text,omitempty"`
}

type sectionView struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type entryView struct {
	Section *sectionView `json:"section"`
	Fields  []fieldView  `json:"fields"`
}

type fieldBuilder struct {
	widgets   *widgets.Registry
	sanitizer *bluemonday.Policy
	values    map[string]any
}

func (b fieldBuilder) entries(cfg model.FormConfig) []entryView {
	out := make([]entryView, 0, len(cfg.Sections))
	for _, entry := range cfg.Sections {
		switch entry.Kind() {
		case model.EntrySection:
			section := entry.Section
			view := entryView{Section: &sectionView{
				ID:          section.ID,
				Title:       section.Title,
				Description: b.sanitize(section.Description),
			}}
			for _, field := range section.Fields {
				view.Fields = append(view.Fields, b.field(field))
			}
			out = append(out, view)
		case model.EntryField:
			out = append(out, entryView{Fields: []fieldView{b.field(*entry.Field)}})
		}
	}
	return out
}

func (b fieldBuilder) field(field model.Field) fieldView {
	control := b.widgets.Control(field)
	view := fieldView{
		Key:         field.Key,
		ID:          controlID(field.Key),
		Label:       field.DisplayLabel(),
		Placeholder: field.Placeholder,
		Required:    field.Required,
		HelperText:  b.sanitize(field.HelperText),
	}
	value, hasValue := b.values[field.Key]

	switch control.Kind {
	case widgets.KindSelect:
		view.Control = controlSelect
		view.Prompt = field.Placeholder
		if strings.TrimSpace(view.Prompt) == "" {
			view.Prompt = defaultSelectPrompt
		}
		selected := ""
		if hasValue && value != nil {
			selected = fmt.Sprint(value)
		}
		for _, option := range control.Options {
			view.Options = append(view.Options, optionView{Value: option, Selected: option == selected})
		}
		return view
	case widgets.KindTextArea:
		view.Control = controlTextArea
	case widgets.KindInput:
		view.Control = controlInput
		view.InputType = control.InputType
	default:
		view.Control = controlInput
		view.InputType = "text"
	}
	if hasValue && value != nil {
		view.Value = fmt.Sprint(value)
	}
	return view
}

func (b fieldBuilder) sanitize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if b.sanitizer == nil {
		return html.EscapeString(text)
	}
	return strings.TrimSpace(b.sanitizer.Sanitize(text))
}

package audit

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// RepairOption customises Repair.
type RepairOption func(*repairConfig)

type repairConfig struct {
	keys model.KeyFunc
}

// WithKeyGenerator overrides the generator used to synthesise missing keys.
func WithKeyGenerator(fn model.KeyFunc) RepairOption {
	return func(cfg *repairConfig) {
		if fn != nil {
			cfg.keys = fn
		}
	}
}

// Repair returns a deep copy of cfg with best-effort fixes applied. Choice
// fields get an options list without blanks or repeats; blank keys are
// synthesised and colliding keys renamed with a numeric suffix; blank labels
// are derived from the key. The input is never modified.
func Repair(cfg model.FormConfig, opts ...RepairOption) model.FormConfig {
	settings := repairConfig{keys: model.UUIDKeys()}
	for _, opt := range opts {
		opt(&settings)
	}

	out := cfg.Clone()
	fields := fieldRefs(&out)

	for _, field := range fields {
		if field.Type.HasOptions() {
			repairOptions(field)
		}
	}

	taken := model.Keys(out)
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		key := field.Key
		switch {
		case strings.TrimSpace(key) == "":
			key = model.UniqueKey(settings.keys("field"), taken)
		default:
			if _, dup := seen[key]; dup {
				key = model.UniqueKey(key, taken)
			}
		}
		if key != field.Key {
			field.Key = key
			taken[key]++
		}
		seen[key] = struct{}{}
	}

	for _, field := range fields {
		if strings.TrimSpace(field.Label) == "" {
			field.Label = LabelFromKey(field.Key)
		}
	}
	return out
}

// LabelFromKey turns "first_name" into "First Name".
func LabelFromKey(key string) string {
	runes := []rune(strings.ReplaceAll(key, "_", " "))
	boundary := true
	for i, r := range runes {
		word := unicode.IsLetter(r) || unicode.IsDigit(r)
		if word && boundary {
			runes[i] = unicode.ToUpper(r)
		}
		boundary = !word
	}
	return string(runes)
}

func repairOptions(field *model.Field) {
	options := Options(*field)
	clean := make([]string, 0, len(options))
	seen := make(map[string]struct{}, len(options))
	for _, option := range options {
		if strings.TrimSpace(option) == "" {
			continue
		}
		if _, ok := seen[option]; ok {
			continue
		}
		seen[option] = struct{}{}
		clean = append(clean, option)
	}

	choice, ok := field.Extra.(*model.ChoiceExtra)
	if !ok || choice == nil {
		choice, _ = model.ConvertExtra(field.Type, field.Extra).(*model.ChoiceExtra)
		if choice == nil {
			choice = &model.ChoiceExtra{}
		}
		field.Extra = choice
	}
	choice.Options = clean
	if choice.Other != nil {
		delete(choice.Other, "options")
		if len(choice.Other) == 0 {
			choice.Other = nil
		}
	}
}

// fieldRefs returns pointers to every field of cfg in flatten order. cfg must
// be a private copy.
func fieldRefs(cfg *model.FormConfig) []*model.Field {
	var out []*model.Field
	for _, entry := range cfg.Sections {
		switch entry.Kind() {
		case model.EntrySection:
			for j := range entry.Section.Fields {
				out = append(out, &entry.Section.Fields[j])
			}
		case model.EntryField:
			out = append(out, entry.Field)
		}
	}
	return out
}

package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Built-in control kinds. Every backend that renders per-field controls maps
// these to its own syntax.
const (
	KindInput       = "input"
	KindTextArea    = "textarea"
	KindSelect      = "select"
	KindRadioGroup  = "radio-group"
	KindCheckbox    = "checkbox"
	KindMultiChoice = "multi-choice"
	KindDate        = "date"
	KindRange       = "range"
	KindRating      = "rating"
	KindColor       = "color"
	KindFile        = "file"
)

// Matcher decides whether a control kind should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects control kinds for fields based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry used by the bundled renderers.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds a matcher with the provided kind name and priority. Callers
// should avoid duplicate names; the latest registration wins ties.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the control kind for a field. An explicit "widget" entry in
// the field extras is honoured before matcher evaluation. Fields nothing
// matches fall back to a single-line input.
func (r *Registry) Resolve(field model.Field) string {
	if explicit := explicitKind(field); explicit != "" {
		return explicit
	}
	if r == nil {
		return KindInput
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name
		}
	}
	return KindInput
}

func explicitKind(field model.Field) string {
	if field.Extra == nil {
		return ""
	}
	if widget, ok := field.Extra.Values()["widget"].(string); ok {
		return strings.TrimSpace(widget)
	}
	return ""
}

func (r *Registry) registerBuiltins() {
	byType := []struct {
		kind  string
		types []model.FieldType
	}{
		{KindTextArea, []model.FieldType{model.FieldTypeMultiline}},
		{KindSelect, []model.FieldType{model.FieldTypeDropdown}},
		{KindRadioGroup, []model.FieldType{model.FieldTypeRadio}},
		{KindCheckbox, []model.FieldType{model.FieldTypeCheckbox}},
		{KindMultiChoice, []model.FieldType{model.FieldTypeMultiSelect}},
		{KindDate, []model.FieldType{model.FieldTypeDate}},
		{KindRange, []model.FieldType{model.FieldTypeSlider}},
		{KindRating, []model.FieldType{model.FieldTypeRating}},
		{KindColor, []model.FieldType{model.FieldTypeColor}},
		{KindFile, []model.FieldType{model.FieldTypeFile}},
		{KindInput, []model.FieldType{
			model.FieldTypeText, model.FieldTypeEmail, model.FieldTypePassword,
			model.FieldTypePhone, model.FieldTypeNumber,
		}},
	}
	for _, entry := range byType {
		types := entry.types
		r.Register(entry.kind, 50, func(field model.Field) bool {
			for _, t := range types {
				if field.Type == t {
					return true
				}
			}
			return false
		})
	}
}

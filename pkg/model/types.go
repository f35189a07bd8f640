package model

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType enumerates the input kinds a field can declare.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeEmail       FieldType = "email"
	FieldTypePassword    FieldType = "password"
	FieldTypeNumber      FieldType = "number"
	FieldTypePhone       FieldType = "phone"
	FieldTypeMultiline   FieldType = "multiline"
	FieldTypeDropdown    FieldType = "dropdown"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeMultiSelect FieldType = "multi_select"
	FieldTypeDate        FieldType = "date"
	FieldTypeSlider      FieldType = "slider"
	FieldTypeRating      FieldType = "rating"
	FieldTypeColor       FieldType = "color"
	FieldTypeFile        FieldType = "file"
)

// FieldTypes lists every known field type in glossary order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText, FieldTypeEmail, FieldTypePassword, FieldTypeNumber,
		FieldTypePhone, FieldTypeMultiline, FieldTypeDropdown, FieldTypeRadio,
		FieldTypeCheckbox, FieldTypeMultiSelect, FieldTypeDate, FieldTypeSlider,
		FieldTypeRating, FieldTypeColor, FieldTypeFile,
	}
}

// IsKnown reports whether t belongs to the closed field type enumeration.
func (t FieldType) IsKnown() bool {
	for _, known := range FieldTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// HasOptions reports whether fields of this type carry an options list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeDropdown, FieldTypeRadio, FieldTypeMultiSelect:
		return true
	default:
		return false
	}
}

// RuleType enumerates the validation rule kinds.
type RuleType string

const (
	RuleRequired  RuleType = "required"
	RuleMinLength RuleType = "minLength"
	RuleMaxLength RuleType = "maxLength"
	RulePattern   RuleType = "pattern"
	RuleMin       RuleType = "min"
	RuleMax       RuleType = "max"
	RuleCustom    RuleType = "custom"
)

// ValidationRule is an ordered constraint with a user-facing failure message.
// Value is interpreted per Type: a length for minLength/maxLength, a bound for
// min/max and a regular expression for pattern. Numeric values decoded from
// the interchange format are float64.
type ValidationRule struct {
	Type    RuleType `json:"type"`
	Value   any      `json:"value,omitempty"`
	Message string   `json:"message"`
}

// Field is the atomic input descriptor. Key is the data binding identity and
// is expected to be unique across the whole form.
type Field struct {
	Key         string
	Type        FieldType
	Label       string
	Required    bool
	Placeholder string
	HelperText  string
	Extra       Extra
	Validation  []ValidationRule
	VisibleIf   map[string]any
}

// DisplayLabel returns the label, falling back to the key.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

// Options returns the option list for choice fields, nil otherwise.
func (f Field) Options() []string {
	if choice, ok := f.Extra.(*ChoiceExtra); ok && choice != nil {
		return choice.Options
	}
	return nil
}

// Section groups fields under a title.
type Section struct {
	ID                string  `json:"id"`
	Title             string  `json:"title,omitempty"`
	Description       string  `json:"description,omitempty"`
	Collapsible       bool    `json:"collapsible"`
	InitiallyExpanded bool    `json:"initiallyExpanded"`
	Fields            []Field `json:"fields"`
}

// EntryKind discriminates the two Entry variants.
type EntryKind int

const (
	EntryInvalid EntryKind = iota
	EntrySection
	EntryField
)

func (k EntryKind) String() string {
	switch k {
	case EntrySection:
		return "section"
	case EntryField:
		return "field"
	default:
		return "invalid"
	}
}

// Entry is one top-level element of a form: exactly one of Section or Field
// is set. Entries share their payload by pointer; mutation goes through the
// builder, which swaps in new pointers instead of editing in place.
type Entry struct {
	Section *Section
	Field   *Field
}

// SectionEntry wraps a section as a top-level entry.
func SectionEntry(section Section) Entry {
	return Entry{Section: &section}
}

// FieldEntry wraps a bare field as a top-level entry.
func FieldEntry(field Field) Entry {
	return Entry{Field: &field}
}

// Kind reports which variant the entry holds.
func (e Entry) Kind() EntryKind {
	switch {
	case e.Section != nil && e.Field == nil:
		return EntrySection
	case e.Field != nil && e.Section == nil:
		return EntryField
	default:
		return EntryInvalid
	}
}

// FormTheme is the optional per-form presentation override.
type FormTheme struct {
	PrimaryColor    string      `json:"primaryColor,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	ErrorColor      string      `json:"errorColor,omitempty"`
	LabelStyle      *LabelStyle `json:"labelStyle,omitempty"`
	InputStyle      *InputStyle `json:"inputStyle,omitempty"`
	LabelAboveField *bool       `json:"labelAboveField,omitempty"`
	LabelSpacing    *float64    `json:"labelSpacing,omitempty"`
}

// LabelStyle customises field labels.
type LabelStyle struct {
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	Color      string `json:"color,omitempty"`
}

// InputStyle customises input controls.
type InputStyle struct {
	FontSize     string `json:"fontSize,omitempty"`
	Padding      string `json:"padding,omitempty"`
	BorderRadius string `json:"borderRadius,omitempty"`
	BorderColor  string `json:"borderColor,omitempty"`
}

// FormConfig is the root of the configuration tree.
type FormConfig struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Sections    []Entry    `json:"sections"`
	Theme       *FormTheme `json:"theme,omitempty"`
}

// NewForm returns an empty form stamped with the provided time.
func NewForm(now time.Time) FormConfig {
	return FormConfig{
		ID:    "form-" + strconv.FormatInt(now.UnixMilli(), 10),
		Title: "New Form",
	}
}

// NewField returns a field of the given type with the extras variant that
// matches it.
func NewField(key string, fieldType FieldType, label string) Field {
	return Field{
		Key:   key,
		Type:  fieldType,
		Label: label,
		Extra: ExtraFor(fieldType, nil),
	}
}

// Validate performs the structural checks every consumer relies on: each
// entry must hold exactly one variant.
func (c FormConfig) Validate() error {
	for i, entry := range c.Sections {
		if entry.Kind() == EntryInvalid {
			return fmt.Errorf("model: sections[%d]: entry must hold exactly one of section or field", i)
		}
	}
	return nil
}

package model

import (
	"math"
	"sort"
	"strconv"
)

// Extra is the type-specific configuration attached to a field. The set of
// variants is closed; use ExtraFor to build one from an interchange map.
type Extra interface {
	// Values flattens the variant back into its interchange map.
	Values() map[string]any
	// Clone returns a deep copy of the variant.
	Clone() Extra

	entries() []extraEntry
}

type extraEntry struct {
	key   string
	value any
}

// ChoiceExtra configures dropdown, radio and multi_select fields. A nil
// Options slice means the list is absent; an empty one means it is present
// but has no items.
type ChoiceExtra struct {
	Options []string
	Other   map[string]any
}

// NumberExtra configures number fields.
type NumberExtra struct {
	Min   *float64
	Max   *float64
	Step  *float64
	Other map[string]any
}

// TextExtra configures text and multiline fields.
type TextExtra struct {
	MinLength *int
	MaxLength *int
	Pattern   *string
	Other     map[string]any
}

// SliderExtra configures slider fields.
type SliderExtra struct {
	Min        *float64
	Max        *float64
	Step       *float64
	ShowLabels *bool
	Other      map[string]any
}

// RatingExtra configures rating fields.
type RatingExtra struct {
	MaxRating       *int
	AllowHalfRating *bool
	Other           map[string]any
}

// OpaqueExtra carries extras for types without typed configuration, including
// tags outside the known enumeration.
type OpaqueExtra struct {
	Other map[string]any
}

type extraFamily int

const (
	familyOpaque extraFamily = iota
	familyChoice
	familyNumber
	familyText
	familySlider
	familyRating
)

func familyOf(t FieldType) extraFamily {
	switch t {
	case FieldTypeDropdown, FieldTypeRadio, FieldTypeMultiSelect:
		return familyChoice
	case FieldTypeNumber:
		return familyNumber
	case FieldTypeText, FieldTypeMultiline:
		return familyText
	case FieldTypeSlider:
		return familySlider
	case FieldTypeRating:
		return familyRating
	default:
		return familyOpaque
	}
}

// ExtraFor converts an interchange map into the variant matching t. Values
// whose shape does not fit the typed slot are preserved in Other untouched.
func ExtraFor(t FieldType, values map[string]any) Extra {
	switch familyOf(t) {
	case familyChoice:
		out := &ChoiceExtra{}
		for key, value := range values {
			if key == "options" {
				if options, ok := toStrings(value); ok {
					out.Options = options
					continue
				}
			}
			out.Other = putOther(out.Other, key, value)
		}
		return out
	case familyNumber:
		out := &NumberExtra{}
		for key, value := range values {
			if !assignFloat(key, value, map[string]**float64{"min": &out.Min, "max": &out.Max, "step": &out.Step}) {
				out.Other = putOther(out.Other, key, value)
			}
		}
		return out
	case familyText:
		out := &TextExtra{}
		for key, value := range values {
			switch key {
			case "minLength", "maxLength":
				if n, ok := toInt(value); ok {
					if key == "minLength" {
						out.MinLength = &n
					} else {
						out.MaxLength = &n
					}
					continue
				}
			case "pattern":
				if s, ok := value.(string); ok {
					out.Pattern = &s
					continue
				}
			}
			out.Other = putOther(out.Other, key, value)
		}
		return out
	case familySlider:
		out := &SliderExtra{}
		for key, value := range values {
			if assignFloat(key, value, map[string]**float64{"min": &out.Min, "max": &out.Max, "step": &out.Step}) {
				continue
			}
			if key == "showLabels" {
				if b, ok := value.(bool); ok {
					out.ShowLabels = &b
					continue
				}
			}
			out.Other = putOther(out.Other, key, value)
		}
		return out
	case familyRating:
		out := &RatingExtra{}
		for key, value := range values {
			switch key {
			case "maxRating":
				if n, ok := toInt(value); ok {
					out.MaxRating = &n
					continue
				}
			case "allowHalfRating":
				if b, ok := value.(bool); ok {
					out.AllowHalfRating = &b
					continue
				}
			}
			out.Other = putOther(out.Other, key, value)
		}
		return out
	default:
		out := &OpaqueExtra{}
		for key, value := range values {
			out.Other = putOther(out.Other, key, value)
		}
		return out
	}
}

// ConvertExtra re-targets an existing variant at a new field type by going
// through the interchange map.
func ConvertExtra(t FieldType, extra Extra) Extra {
	if extra == nil {
		return ExtraFor(t, nil)
	}
	return ExtraFor(t, extra.Values())
}

func (e *ChoiceExtra) entries() []extraEntry {
	var out []extraEntry
	if e.Options != nil {
		out = append(out, extraEntry{"options", append([]string{}, e.Options...)})
	}
	return appendOther(out, e.Other)
}

func (e *NumberExtra) entries() []extraEntry {
	out := appendFloat(nil, "min", e.Min)
	out = appendFloat(out, "max", e.Max)
	out = appendFloat(out, "step", e.Step)
	return appendOther(out, e.Other)
}

func (e *TextExtra) entries() []extraEntry {
	var out []extraEntry
	if e.MinLength != nil {
		out = append(out, extraEntry{"minLength", *e.MinLength})
	}
	if e.MaxLength != nil {
		out = append(out, extraEntry{"maxLength", *e.MaxLength})
	}
	if e.Pattern != nil {
		out = append(out, extraEntry{"pattern", *e.Pattern})
	}
	return appendOther(out, e.Other)
}

func (e *SliderExtra) entries() []extraEntry {
	out := appendFloat(nil, "min", e.Min)
	out = appendFloat(out, "max", e.Max)
	out = appendFloat(out, "step", e.Step)
	if e.ShowLabels != nil {
		out = append(out, extraEntry{"showLabels", *e.ShowLabels})
	}
	return appendOther(out, e.Other)
}

func (e *RatingExtra) entries() []extraEntry {
	var out []extraEntry
	if e.MaxRating != nil {
		out = append(out, extraEntry{"maxRating", *e.MaxRating})
	}
	if e.AllowHalfRating != nil {
		out = append(out, extraEntry{"allowHalfRating", *e.AllowHalfRating})
	}
	return appendOther(out, e.Other)
}

func (e *OpaqueExtra) entries() []extraEntry {
	return appendOther(nil, e.Other)
}

func (e *ChoiceExtra) Values() map[string]any { return entriesMap(e.entries()) }
func (e *NumberExtra) Values() map[string]any { return entriesMap(e.entries()) }
func (e *TextExtra) Values() map[string]any   { return entriesMap(e.entries()) }
func (e *SliderExtra) Values() map[string]any { return entriesMap(e.entries()) }
func (e *RatingExtra) Values() map[string]any { return entriesMap(e.entries()) }
func (e *OpaqueExtra) Values() map[string]any { return entriesMap(e.entries()) }

func (e *ChoiceExtra) Clone() Extra {
	out := &ChoiceExtra{Other: cloneMap(e.Other)}
	if e.Options != nil {
		out.Options = append([]string{}, e.Options...)
	}
	return out
}

func (e *NumberExtra) Clone() Extra {
	return &NumberExtra{Min: clonePtr(e.Min), Max: clonePtr(e.Max), Step: clonePtr(e.Step), Other: cloneMap(e.Other)}
}

func (e *TextExtra) Clone() Extra {
	return &TextExtra{MinLength: clonePtr(e.MinLength), MaxLength: clonePtr(e.MaxLength), Pattern: clonePtr(e.Pattern), Other: cloneMap(e.Other)}
}

func (e *SliderExtra) Clone() Extra {
	return &SliderExtra{Min: clonePtr(e.Min), Max: clonePtr(e.Max), Step: clonePtr(e.Step), ShowLabels: clonePtr(e.ShowLabels), Other: cloneMap(e.Other)}
}

func (e *RatingExtra) Clone() Extra {
	return &RatingExtra{MaxRating: clonePtr(e.MaxRating), AllowHalfRating: clonePtr(e.AllowHalfRating), Other: cloneMap(e.Other)}
}

func (e *OpaqueExtra) Clone() Extra {
	return &OpaqueExtra{Other: cloneMap(e.Other)}
}

func entriesMap(entries []extraEntry) map[string]any {
	out := make(map[string]any, len(entries))
	for _, entry := range entries {
		out[entry.key] = entry.value
	}
	return out
}

func appendFloat(out []extraEntry, key string, value *float64) []extraEntry {
	if value == nil {
		return out
	}
	return append(out, extraEntry{key, *value})
}

func appendOther(out []extraEntry, other map[string]any) []extraEntry {
	if len(other) == 0 {
		return out
	}
	keys := make([]string, 0, len(other))
	for key := range other {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, extraEntry{key, cloneValue(other[key])})
	}
	return out
}

func assignFloat(key string, value any, slots map[string]**float64) bool {
	slot, ok := slots[key]
	if !ok {
		return false
	}
	f, ok := toFloat(value)
	if !ok {
		return false
	}
	*slot = &f
	return true
}

func putOther(other map[string]any, key string, value any) map[string]any {
	if other == nil {
		other = make(map[string]any)
	}
	other[key] = cloneValue(value)
	return other
}

// toStrings reads an options list. Scalar entries are kept in their text
// form so numeric lists from YAML or TOML render as choices; null becomes a
// blank entry and nested values are dropped.
func toStrings(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := scalarString(item); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toInt(value any) (int, bool) {
	f, ok := toFloat(value)
	if !ok || math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func clonePtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

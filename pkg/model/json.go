package model

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON writes the field in declaration order. The extras map is
// written through Extra.Values ordering: typed keys first, then any
// preserved keys sorted alphabetically.
func (f Field) MarshalJSON() ([]byte, error) {
	w := &objectWriter{}
	w.put("key", f.Key)
	w.put("type", f.Type)
	if f.Label != "" {
		w.put("label", f.Label)
	}
	w.put("required", f.Required)
	if f.Placeholder != "" {
		w.put("placeholder", f.Placeholder)
	}
	if f.HelperText != "" {
		w.put("helperText", f.HelperText)
	}
	w.putRaw("extra", marshalExtra(f.Extra, &w.err))
	if f.Validation != nil {
		w.put("validation", f.Validation)
	}
	if f.VisibleIf != nil {
		w.put("visibleIf", f.VisibleIf)
	}
	return w.bytes()
}

// UnmarshalJSON decodes a field and converts its extras into the variant
// matching the declared type.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		Key         string          `json:"key"`
		Type        FieldType       `json:"type"`
		Label       string          `json:"label"`
		Required    bool            `json:"required"`
		Placeholder string          `json:"placeholder"`
		HelperText  string          `json:"helperText"`
		Extra       map[string]any  `json:"extra"`
		Validation  json.RawMessage `json:"validation"`
		VisibleIf   map[string]any  `json:"visibleIf"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	field := Field{
		Key:         raw.Key,
		Type:        raw.Type,
		Label:       raw.Label,
		Required:    raw.Required,
		Placeholder: raw.Placeholder,
		HelperText:  raw.HelperText,
		Extra:       ExtraFor(raw.Type, raw.Extra),
		VisibleIf:   raw.VisibleIf,
	}
	if trimmed := bytes.TrimSpace(raw.Validation); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		rules := []ValidationRule{}
		if err := json.Unmarshal(trimmed, &rules); err != nil {
			return fmt.Errorf("field %q validation: %w", raw.Key, err)
		}
		if rules == nil {
			rules = []ValidationRule{}
		}
		field.Validation = rules
	}
	*f = field
	return nil
}

// MarshalJSON always writes a fields array, even for an empty section, since
// the interchange format uses its presence to recognise sections.
func (s Section) MarshalJSON() ([]byte, error) {
	type plain Section
	out := plain(s)
	if out.Fields == nil {
		out.Fields = []Field{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a section; an empty fields array becomes nil.
func (s *Section) UnmarshalJSON(data []byte) error {
	type plain Section
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if len(out.Fields) == 0 {
		out.Fields = nil
	}
	*s = Section(out)
	return nil
}

// MarshalJSON writes whichever variant the entry holds.
func (e Entry) MarshalJSON() ([]byte, error) {
	switch e.Kind() {
	case EntrySection:
		return json.Marshal(*e.Section)
	case EntryField:
		return json.Marshal(*e.Field)
	default:
		return nil, fmt.Errorf("model: cannot marshal entry: %s", e.Kind())
	}
}

// UnmarshalJSON tells sections and fields apart by the presence of a fields
// property. This is the only place the untagged wire shape is probed.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if _, ok := probe["fields"]; ok {
		var section Section
		if err := json.Unmarshal(data, &section); err != nil {
			return err
		}
		*e = Entry{Section: &section}
		return nil
	}
	var field Field
	if err := json.Unmarshal(data, &field); err != nil {
		return err
	}
	*e = Entry{Field: &field}
	return nil
}

// MarshalJSON always writes a sections array.
func (c FormConfig) MarshalJSON() ([]byte, error) {
	type plain FormConfig
	out := plain(c)
	if out.Sections == nil {
		out.Sections = []Entry{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a form; an empty sections array becomes nil.
func (c *FormConfig) UnmarshalJSON(data []byte) error {
	type plain FormConfig
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if len(out.Sections) == 0 {
		out.Sections = nil
	}
	*c = FormConfig(out)
	return nil
}

func marshalExtra(extra Extra, errp *error) []byte {
	if extra == nil {
		return []byte("{}")
	}
	w := &objectWriter{}
	for _, entry := range extra.entries() {
		w.put(entry.key, entry.value)
	}
	data, err := w.bytes()
	if err != nil && *errp == nil {
		*errp = err
	}
	return data
}

type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (w *objectWriter) put(key string, value any) {
	if w.err != nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("marshal %q: %w", key, err)
		return
	}
	w.putRaw(key, data)
}

func (w *objectWriter) putRaw(key string, data []byte) {
	if w.err != nil {
		return
	}
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	name, _ := json.Marshal(key)
	w.buf.Write(name)
	w.buf.WriteByte(':')
	w.buf.Write(data)
	w.n++
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.n == 0 {
		return []byte("{}"), nil
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

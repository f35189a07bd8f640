package model

// Clone returns a deep copy of the configuration. The copy shares nothing with
// the receiver, so callers may edit it freely.
func (c FormConfig) Clone() FormConfig {
	out := c
	if c.Sections != nil {
		out.Sections = make([]Entry, len(c.Sections))
		for i, entry := range c.Sections {
			out.Sections[i] = entry.Clone()
		}
	}
	if c.Theme != nil {
		theme := *c.Theme
		theme.LabelStyle = clonePtr(c.Theme.LabelStyle)
		theme.InputStyle = clonePtr(c.Theme.InputStyle)
		theme.LabelAboveField = clonePtr(c.Theme.LabelAboveField)
		theme.LabelSpacing = clonePtr(c.Theme.LabelSpacing)
		out.Theme = &theme
	}
	return out
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	var out Entry
	if e.Section != nil {
		section := e.Section.Clone()
		out.Section = &section
	}
	if e.Field != nil {
		field := e.Field.Clone()
		out.Field = &field
	}
	return out
}

// Clone returns a deep copy of the section and its fields.
func (s Section) Clone() Section {
	out := s
	if s.Fields != nil {
		out.Fields = make([]Field, len(s.Fields))
		for i, field := range s.Fields {
			out.Fields[i] = field.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if f.Extra != nil {
		out.Extra = f.Extra.Clone()
	}
	if f.Validation != nil {
		out.Validation = make([]ValidationRule, len(f.Validation))
		for i, rule := range f.Validation {
			rule.Value = cloneValue(rule.Value)
			out.Validation[i] = rule
		}
	}
	out.VisibleIf = cloneMap(f.VisibleIf)
	return out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		if v == nil {
			return v
		}
		return append([]string{}, v...)
	default:
		return v
	}
}

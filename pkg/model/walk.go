package model

// Location identifies where a field sits in the tree. SectionID is empty for
// bare top-level fields.
type Location struct {
	Entry     int
	SectionID string
	Index     int
}

// InSection reports whether the field belongs to a section.
func (l Location) InSection() bool {
	return l.Index >= 0
}

// Walk visits every field depth first: entries in order, and within a section
// its fields in order. Returning false from fn stops the walk.
func Walk(cfg FormConfig, fn func(Field, Location) bool) {
	for i, entry := range cfg.Sections {
		switch entry.Kind() {
		case EntrySection:
			for j, field := range entry.Section.Fields {
				if !fn(field, Location{Entry: i, SectionID: entry.Section.ID, Index: j}) {
					return
				}
			}
		case EntryField:
			if !fn(*entry.Field, Location{Entry: i, Index: -1}) {
				return
			}
		}
	}
}

// Flatten returns every field in Walk order. Every consumer uses this ordering,
// so the auditor, the validator and the generators agree on field positions.
func Flatten(cfg FormConfig) []Field {
	var out []Field
	Walk(cfg, func(field Field, _ Location) bool {
		out = append(out, field)
		return true
	})
	return out
}

// Sections returns the section entries in order.
func Sections(cfg FormConfig) []Section {
	var out []Section
	for _, entry := range cfg.Sections {
		if entry.Kind() == EntrySection {
			out = append(out, *entry.Section)
		}
	}
	return out
}

// FindField returns the first field with the given key.
func FindField(cfg FormConfig, key string) (Field, Location, bool) {
	var (
		found Field
		loc   Location
		ok    bool
	)
	Walk(cfg, func(field Field, at Location) bool {
		if field.Key == key {
			found, loc, ok = field, at, true
			return false
		}
		return true
	})
	return found, loc, ok
}

// FindSection returns the section with the given id and its entry index.
func FindSection(cfg FormConfig, id string) (Section, int, bool) {
	for i, entry := range cfg.Sections {
		if entry.Kind() == EntrySection && entry.Section.ID == id {
			return *entry.Section, i, true
		}
	}
	return Section{}, -1, false
}

// Keys returns the set of field keys currently in use.
func Keys(cfg FormConfig) map[string]int {
	out := make(map[string]int)
	Walk(cfg, func(field Field, _ Location) bool {
		out[field.Key]++
		return true
	})
	return out
}

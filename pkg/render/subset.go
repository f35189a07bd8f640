package render

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// FieldSubset restricts rendering to a slice of the form. A field is kept when
// it matches any non-empty filter; an empty subset keeps everything.
type FieldSubset struct {
	// Sections lists section ids. Bare top-level fields never match.
	Sections []string
	// Types lists field types.
	Types []string
	// Keys lists field keys.
	Keys []string
}

// Empty reports whether the subset has no filters.
func (s FieldSubset) Empty() bool {
	return newSubsetMatcher(s).empty()
}

// ApplySubset returns a copy of cfg holding only the fields selected by
// subset. Sections left without fields are dropped so renderers do not emit
// empty groups. cfg itself is not modified.
func ApplySubset(cfg model.FormConfig, subset FieldSubset) model.FormConfig {
	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return cfg
	}

	var entries []model.Entry
	for _, entry := range cfg.Sections {
		switch entry.Kind() {
		case model.EntrySection:
			var fields []model.Field
			for _, field := range entry.Section.Fields {
				if matcher.matches(field, entry.Section.ID) {
					fields = append(fields, field)
				}
			}
			if len(fields) == 0 {
				continue
			}
			section := *entry.Section
			section.Fields = fields
			entries = append(entries, model.SectionEntry(section))
		case model.EntryField:
			if matcher.matches(*entry.Field, "") {
				entries = append(entries, entry)
			}
		}
	}

	out := cfg
	out.Sections = entries
	return out
}

type subsetMatcher struct {
	sections map[string]struct{}
	types    map[string]struct{}
	keys     map[string]struct{}
}

func newSubsetMatcher(subset FieldSubset) subsetMatcher {
	return subsetMatcher{
		sections: normaliseTokens(subset.Sections),
		types:    normaliseTokens(subset.Types),
		keys:     normaliseTokens(subset.Keys),
	}
}

func (m subsetMatcher) empty() bool {
	return len(m.sections) == 0 && len(m.types) == 0 && len(m.keys) == 0
}

func (m subsetMatcher) matches(field model.Field, sectionID string) bool {
	if sectionID != "" && contains(m.sections, sectionID) {
		return true
	}
	if contains(m.types, string(field.Type)) {
		return true
	}
	return contains(m.keys, field.Key)
}

func contains(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return false
	}
	token := normaliseToken(value)
	if token == "" {
		return false
	}
	_, ok := set[token]
	return ok
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]struct{}, len(values))
	for _, value := range values {
		token := normaliseToken(value)
		if token == "" {
			continue
		}
		result[token] = struct{}{}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

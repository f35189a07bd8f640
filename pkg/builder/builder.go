// Package builder owns a form configuration while it is being edited. Every
// operation replaces the configuration with a new value; values handed out
// earlier are never modified. Operations that reference an unknown key or id
// leave the configuration unchanged.
package builder

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Builder is the only legitimate writer of the configuration it holds. It is
// safe for concurrent use.
type Builder struct {
	mu       sync.RWMutex
	cfg      model.FormConfig
	seeded   bool
	selected string
	hasSel   bool
	data     map[string]any
	errors   map[string]string

	keys     model.KeyFunc
	now      func() time.Time
	onChange func(model.FormConfig)
	logger   *slog.Logger
}

// New constructs a builder. Without WithConfig it starts from a blank form.
func New(opts ...Option) *Builder {
	b := &Builder{
		now:    time.Now,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.keys == nil {
		b.keys = model.TimestampKeys(b.now)
	}
	if !b.seeded {
		b.cfg = model.NewForm(b.now())
	}
	return b
}

// Config returns the current configuration. Treat it as read-only.
func (b *Builder) Config() model.FormConfig {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cfg
}

// SetConfig replaces the configuration, clearing selection and form state.
func (b *Builder) SetConfig(cfg model.FormConfig) {
	b.mu.Lock()
	b.cfg = cfg
	b.selected, b.hasSel = "", false
	b.data, b.errors = nil, nil
	b.mu.Unlock()

	b.logger.Debug("config replaced", slog.String("form", cfg.ID))
	b.notify(cfg)
}

// AddField appends a new field of fieldType to the section sectionID, or as a
// bare top-level entry when sectionID is empty. The new field is selected.
// It returns the new key, or false when the section does not exist.
func (b *Builder) AddField(fieldType model.FieldType, sectionID string) (string, bool) {
	b.mu.Lock()
	key := model.UniqueKey(b.keys("field"), model.Keys(b.cfg))
	field := model.NewField(key, fieldType, "New "+string(fieldType)+" Field")

	next := b.cfg
	if sectionID == "" {
		next.Sections = append(append([]model.Entry{}, b.cfg.Sections...), model.FieldEntry(field))
	} else {
		var ok bool
		added := false
		next, ok = mapSections(b.cfg, sectionID, func(section model.Section) model.Section {
			if added {
				return section
			}
			added = true
			section.Fields = append(append([]model.Field{}, section.Fields...), field)
			return section
		})
		if !ok {
			b.mu.Unlock()
			return "", false
		}
	}
	b.cfg = next
	b.selected, b.hasSel = key, true
	b.mu.Unlock()

	b.logger.Debug("field added", slog.String("key", key), slog.String("type", string(fieldType)), slog.String("section", sectionID))
	b.notify(next)
	return key, true
}

// RemoveField removes every field with key, wherever it sits.
func (b *Builder) RemoveField(key string) bool {
	b.mu.Lock()
	next, changed := rewriteFields(b.cfg, func(field model.Field) ([]model.Field, bool) {
		return nil, field.Key == key
	})
	if !changed {
		b.mu.Unlock()
		return false
	}
	b.cfg = next
	if b.hasSel && b.selected == key {
		b.selected, b.hasSel = "", false
	}
	b.mu.Unlock()

	b.logger.Debug("field removed", slog.String("key", key))
	b.notify(next)
	return true
}

// UpdateField merges patch into every field with key. A key change that
// collides with another field is suffixed to stay unique, and the selection
// follows the renamed field.
func (b *Builder) UpdateField(key string, patch FieldPatch) bool {
	b.mu.Lock()
	taken := model.Keys(b.cfg)
	if patch.Key != nil {
		delete(taken, key)
	}
	renamed := ""
	next, changed := rewriteFields(b.cfg, func(field model.Field) ([]model.Field, bool) {
		if field.Key != key {
			return nil, false
		}
		updated := patch.apply(field)
		if patch.Key != nil && *patch.Key != key {
			updated.Key = model.UniqueKey(*patch.Key, taken)
			taken[updated.Key]++
			if renamed == "" {
				renamed = updated.Key
			}
		} else if patch.Key != nil {
			taken[key]++
		}
		return []model.Field{updated}, true
	})
	if !changed {
		b.mu.Unlock()
		return false
	}
	b.cfg = next
	if renamed != "" && b.hasSel && b.selected == key {
		b.selected = renamed
	}
	b.mu.Unlock()

	b.logger.Debug("field updated", slog.String("key", key), slog.String("renamed", renamed))
	b.notify(next)
	return true
}

// DuplicateField copies the first field with key, gives the copy a fresh key
// and a "(Copy)" label, inserts it right after the original in the same
// container and selects it.
func (b *Builder) DuplicateField(key string) (string, bool) {
	b.mu.Lock()
	newKey := model.UniqueKey(b.keys("field"), model.Keys(b.cfg))
	done := false
	next, changed := rewriteFields(b.cfg, func(field model.Field) ([]model.Field, bool) {
		if done || field.Key != key {
			return nil, false
		}
		done = true
		dup := field.Clone()
		dup.Key = newKey
		dup.Label = field.DisplayLabel() + " (Copy)"
		return []model.Field{field, dup}, true
	})
	if !changed {
		b.mu.Unlock()
		return "", false
	}
	b.cfg = next
	b.selected, b.hasSel = newKey, true
	b.mu.Unlock()

	b.logger.Debug("field duplicated", slog.String("key", key), slog.String("copy", newKey))
	b.notify(next)
	return newKey, true
}

// AddSection appends an empty, expanded section and returns its id.
func (b *Builder) AddSection() string {
	b.mu.Lock()
	taken := make(map[string]int)
	for _, section := range model.Sections(b.cfg) {
		taken[section.ID]++
	}
	id := model.UniqueKey("section_"+strconv.FormatInt(b.now().UnixMilli(), 10), taken)
	section := model.Section{
		ID:                id,
		Title:             "New Section",
		InitiallyExpanded: true,
	}
	next := b.cfg
	next.Sections = append(append([]model.Entry{}, b.cfg.Sections...), model.SectionEntry(section))
	b.cfg = next
	b.mu.Unlock()

	b.logger.Debug("section added", slog.String("id", id))
	b.notify(next)
	return id
}

// RemoveSection removes the section with id together with its fields. Bare
// fields are never matched.
func (b *Builder) RemoveSection(id string) bool {
	b.mu.Lock()
	var kept []model.Entry
	removed := false
	for _, entry := range b.cfg.Sections {
		if entry.Kind() == model.EntrySection && entry.Section.ID == id {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		b.mu.Unlock()
		return false
	}
	next := b.cfg
	next.Sections = kept
	b.cfg = next
	if b.hasSel {
		if _, _, ok := model.FindField(next, b.selected); !ok {
			b.selected, b.hasSel = "", false
		}
	}
	b.mu.Unlock()

	b.logger.Debug("section removed", slog.String("id", id))
	b.notify(next)
	return true
}

// UpdateSection merges patch into the section with id.
func (b *Builder) UpdateSection(id string, patch SectionPatch) bool {
	b.mu.Lock()
	next, ok := mapSections(b.cfg, id, patch.apply)
	if !ok {
		b.mu.Unlock()
		return false
	}
	b.cfg = next
	b.mu.Unlock()

	b.logger.Debug("section updated", slog.String("id", id))
	b.notify(next)
	return true
}

// Select marks the field with key as selected. An empty key clears the
// selection; an unknown key leaves it unchanged.
func (b *Builder) Select(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if key == "" {
		b.selected, b.hasSel = "", false
		return true
	}
	if _, _, ok := model.FindField(b.cfg, key); !ok {
		return false
	}
	b.selected, b.hasSel = key, true
	return true
}

// SelectedKey returns the selected key, if any.
func (b *Builder) SelectedKey() (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selected, b.hasSel
}

// GetSelectedField resolves the selection against the current tree. With
// duplicate keys the first field in flatten order wins.
func (b *Builder) GetSelectedField() (model.Field, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.hasSel {
		return model.Field{}, false
	}
	field, _, ok := model.FindField(b.cfg, b.selected)
	return field, ok
}

// UpdateFormData records a preview value and clears that field's error.
func (b *Builder) UpdateFormData(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		b.data = make(map[string]any)
	}
	b.data[key] = value
	delete(b.errors, key)
}

// FormData returns a copy of the recorded preview values.
func (b *Builder) FormData() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]any, len(b.data))
	for key, value := range b.data {
		out[key] = value
	}
	return out
}

// ValidateForm checks the recorded values against every field and stores the
// resulting errors.
func (b *Builder) ValidateForm() validation.Result {
	b.mu.Lock()
	result := validation.ValidateSubmission(b.cfg, b.data)
	b.errors = result.Errors
	b.mu.Unlock()

	if !result.Valid {
		b.logger.Debug("form validation failed", slog.Any("errors", result.Order))
	}
	return result
}

// Errors returns a copy of the errors stored by the last ValidateForm call.
func (b *Builder) Errors() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]string, len(b.errors))
	for key, message := range b.errors {
		out[key] = message
	}
	return out
}

func (b *Builder) notify(cfg model.FormConfig) {
	if b.onChange != nil {
		b.onChange(cfg)
	}
}

// rewriteFields rebuilds only the containers whose fields fn replaces. fn
// returns the replacement fields and whether the field was replaced.
func rewriteFields(cfg model.FormConfig, fn func(model.Field) ([]model.Field, bool)) (model.FormConfig, bool) {
	var entries []model.Entry
	changed := false
	for _, entry := range cfg.Sections {
		switch entry.Kind() {
		case model.EntrySection:
			var fields []model.Field
			touched := false
			for _, field := range entry.Section.Fields {
				replacement, ok := fn(field)
				if !ok {
					fields = append(fields, field)
					continue
				}
				touched = true
				fields = append(fields, replacement...)
			}
			if !touched {
				entries = append(entries, entry)
				continue
			}
			changed = true
			section := *entry.Section
			section.Fields = fields
			entries = append(entries, model.SectionEntry(section))
		case model.EntryField:
			replacement, ok := fn(*entry.Field)
			if !ok {
				entries = append(entries, entry)
				continue
			}
			changed = true
			for _, field := range replacement {
				entries = append(entries, model.FieldEntry(field))
			}
		default:
			entries = append(entries, entry)
		}
	}
	if !changed {
		return cfg, false
	}
	out := cfg
	out.Sections = entries
	return out, true
}

func mapSections(cfg model.FormConfig, id string, fn func(model.Section) model.Section) (model.FormConfig, bool) {
	entries := make([]model.Entry, len(cfg.Sections))
	found := false
	for i, entry := range cfg.Sections {
		if entry.Kind() == model.EntrySection && entry.Section.ID == id {
			entries[i] = model.SectionEntry(fn(*entry.Section))
			found = true
			continue
		}
		entries[i] = entry
	}
	if !found {
		return cfg, false
	}
	out := cfg
	out.Sections = entries
	return out, true
}

package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Transformer mutates a private copy of the configuration before decorators
// run. Implementations can rename fields, relabel sections or perform
// arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, cfg *model.FormConfig) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, cfg *model.FormConfig) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, cfg *model.FormConfig) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, cfg)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON file.
// The document shape supports form-level text plus per-section and per-field
// patches keyed by section id and field key:
//
//	{
//	  "title": "Signup",
//	  "sections": {"details": {"title": "Your details", "collapsible": true}},
//	  "fields": {
//	    "email": {"label": "Work email", "required": true, "rename": "work_email"}
//	  }
//	}
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	Sections    map[string]jsonSectionPatch `json:"sections"`
	Fields      map[string]jsonFieldPatch   `json:"fields"`
}

type jsonSectionPatch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Collapsible *bool  `json:"collapsible"`
}

type jsonFieldPatch struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	HelperText  string `json:"helperText"`
	Required    *bool  `json:"required"`
	Rename      string `json:"rename"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches. Unknown section ids or field
// keys are errors so stale presets surface early.
func (t *JSONPresetTransformer) Transform(ctx context.Context, cfg *model.FormConfig) error {
	if cfg == nil {
		return errors.New("json preset transformer: config is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		cfg.Title = t.document.Title
	}
	if t.document.Description != "" {
		cfg.Description = t.document.Description
	}

	for id, patch := range t.document.Sections {
		section := findSection(cfg, id)
		if section == nil {
			return fmt.Errorf("json preset transformer: section %q not found", id)
		}
		applySectionPatch(section, patch)
	}

	for key, patch := range t.document.Fields {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := findFields(cfg, key)
		if len(fields) == 0 {
			return fmt.Errorf("json preset transformer: field %q not found", key)
		}
		for _, field := range fields {
			applyFieldPatch(field, patch)
		}
	}
	return nil
}

func applySectionPatch(section *model.Section, patch jsonSectionPatch) {
	if patch.Title != "" {
		section.Title = patch.Title
	}
	if patch.Description != "" {
		section.Description = patch.Description
	}
	if patch.Collapsible != nil {
		section.Collapsible = *patch.Collapsible
	}
}

func applyFieldPatch(field *model.Field, patch jsonFieldPatch) {
	if patch.Label != "" {
		field.Label = patch.Label
	}
	if patch.Placeholder != "" {
		field.Placeholder = patch.Placeholder
	}
	if patch.HelperText != "" {
		field.HelperText = patch.HelperText
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
	if strings.TrimSpace(patch.Rename) != "" {
		field.Key = strings.TrimSpace(patch.Rename)
	}
}

func findSection(cfg *model.FormConfig, id string) *model.Section {
	for i := range cfg.Sections {
		if section := cfg.Sections[i].Section; section != nil && section.ID == id {
			return section
		}
	}
	return nil
}

// findFields returns every field with key, in flatten order.
func findFields(cfg *model.FormConfig, key string) []*model.Field {
	var out []*model.Field
	for i := range cfg.Sections {
		entry := &cfg.Sections[i]
		switch {
		case entry.Section != nil:
			for j := range entry.Section.Fields {
				if entry.Section.Fields[j].Key == key {
					out = append(out, &entry.Section.Fields[j])
				}
			}
		case entry.Field != nil && entry.Field.Key == key:
			out = append(out, entry.Field)
		}
	}
	return out
}

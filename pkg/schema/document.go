// Package schema describes form documents as they arrive from disk, an
// fs.FS or memory, before they are decoded into a model.FormConfig.
package schema

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Document wraps the raw form payload, its detected format and its origin.
type Document struct {
	source Source
	raw    []byte
	format model.Format
}

// NewDocument constructs a Document wrapper while validating the inputs. The
// format is detected from the source location and payload.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone, format: DetectFormat(src.Location(), clone)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// WithFormat returns a copy of d decoded as format instead of the detected
// one.
func (d Document) WithFormat(format model.Format) Document {
	d.format = format
	return d
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

func (d Document) Format() model.Format {
	return d.format
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Config decodes the payload into a form configuration.
func (d Document) Config() (model.FormConfig, error) {
	cfg, err := model.Decode(d.raw, d.format)
	if err != nil {
		return model.FormConfig{}, fmt.Errorf("schema: %s: %w", d.Location(), err)
	}
	return cfg, nil
}

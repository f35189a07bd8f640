// Package flutter renders a form configuration as a self-contained Flutter
// application. The configuration is inlined as a Dart map literal and handed
// to a JSON-driven form widget; the generated state class tracks filled
// fields and validation errors and guards submission on both.
package flutter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

const (
	defaultImport   = "package:dynamic_json_form_builder/json_form_builder.dart"
	defaultAppTitle = "Dynamic Form App"
	defaultBarTitle = "Dynamic Form"
	defaultInfo     = "Dynamic form built with JSON configuration"
)

// Option customises the renderer.
type Option func(*Renderer)

// WithFormPackage overrides the import that provides JsonFormBuilder and
// FormTheme.
func WithFormPackage(importPath string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(importPath); trimmed != "" {
			r.formPackage = trimmed
		}
	}
}

// Renderer implements render.Renderer for the "flutter" target.
type Renderer struct {
	formPackage string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{formPackage: defaultImport}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "flutter"
}

func (r *Renderer) ContentType() string {
	return "text/x-dart; charset=utf-8"
}

// Render emits main.dart for cfg.
func (r *Renderer) Render(ctx context.Context, cfg model.FormConfig, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg = render.ApplySubset(cfg, opts.Subset)

	literal, err := configLiteral(cfg)
	if err != nil {
		return nil, fmt.Errorf("flutter renderer: encode config: %w", err)
	}

	name := className(cfg.ID)
	replacer := strings.NewReplacer(
		"__CLASS__", name,
		"__APP_TITLE__", dartString(fallback(cfg.Title, defaultAppTitle)),
		"__BAR_TITLE__", dartString(fallback(cfg.Title, defaultBarTitle)),
		"__INFO__", dartString(fallback(cfg.Description, defaultInfo)),
		"__CONFIG__", literal,
	)

	var b strings.Builder
	b.WriteString("import 'package:flutter/material.dart';\n")
	b.WriteString("import " + dartString(r.formPackage) + ";\n\n")
	b.WriteString(replacer.Replace(appSource))
	b.WriteString("\n\n")
	b.WriteString(replacer.Replace(widgetSource))
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// configLiteral encodes cfg with the canonical codec and re-indents it to
// four spaces to match Dart formatting.
func configLiteral(cfg model.FormConfig) (string, error) {
	raw, err := model.Encode(cfg, model.FormatJSON)
	if err != nil {
		return "", err
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "  ", "    "); err != nil {
		return "", err
	}
	return dartLiteral(out.String()), nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

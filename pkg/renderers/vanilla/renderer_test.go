package vanilla_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func newRenderer(t *testing.T, opts ...vanilla.Option) *vanilla.Renderer {
	t.Helper()
	r, err := vanilla.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func renderHTML(t *testing.T, r *vanilla.Renderer, cfg model.FormConfig, opts render.RenderOptions) string {
	t.Helper()
	out, err := r.Render(testsupport.Context(), cfg, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Contract(t *testing.T) {
	r := newRenderer(t)
	if r.Name() != "html" {
		t.Fatalf("unexpected name %q", r.Name())
	}
	if !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderer_OneControlPerField(t *testing.T) {
	form := testsupport.AllTypesForm()
	html := renderHTML(t, newRenderer(t), form, render.RenderOptions{})

	fields := model.Flatten(form)
	if got := strings.Count(html, "data-field="); got != len(fields) {
		t.Fatalf("expected %d field groups, got %d", len(fields), got)
	}
	for _, field := range fields {
		if !strings.Contains(html, `name="`+field.Key+`"`) {
			t.Fatalf("field %s has no control", field.Key)
		}
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>All Types</title>",
		`<form id="dynamicForm" class="fb-form">`,
		`<fieldset class="fb-section" data-section="grouped">`,
		`<input type="email" id="email_field" name="email_field"`,
		`<input type="tel" id="phone_field" name="phone_field"`,
		`<textarea id="multiline_field" name="multiline_field"`,
		`<select id="dropdown_field" name="dropdown_field">`,
		`<option value="">Select an option</option>`,
		`<option value="Alpha">Alpha</option>`,
		`<input type="text" id="slider_field" name="slider_field"`,
		`<input type="text" id="mystery_field" name="mystery_field"`,
		`<button type="submit">Submit</button>`,
		`document.getElementById("dynamicForm")`,
		"--theme-primary",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
}

func TestRenderer_DefaultsAndEscaping(t *testing.T) {
	form := model.FormConfig{
		Description: `Hello <script>alert(1)</script><b>world</b>`,
		Sections: []model.Entry{
			model.FieldEntry(model.Field{Key: "name", Type: model.FieldTypeText, Placeholder: `"quoted"`}),
		},
	}
	html := renderHTML(t, newRenderer(t), form, render.RenderOptions{})

	if !strings.Contains(html, "<title>Dynamic Form</title>") {
		t.Fatalf("expected default title\n%s", html)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("description was not sanitized\n%s", html)
	}
	if !strings.Contains(html, "<b>world</b>") {
		t.Fatalf("expected safe markup to survive sanitizing\n%s", html)
	}
	if !strings.Contains(html, `<label for="name">name</label>`) {
		t.Fatalf("expected key as label fallback\n%s", html)
	}
	if !strings.Contains(html, `placeholder="&quot;quoted&quot;"`) {
		t.Fatalf("expected escaped placeholder\n%s", html)
	}
}

func TestRenderer_ValuesAndSubset(t *testing.T) {
	form := testsupport.AllTypesForm()
	html := renderHTML(t, newRenderer(t), form, render.RenderOptions{
		Subset: render.FieldSubset{Keys: []string{"dropdown_field", "text_field"}},
		Values: map[string]any{"dropdown_field": "Beta", "text_field": "Ada"},
	})
	if got := strings.Count(html, "data-field="); got != 2 {
		t.Fatalf("expected 2 fields after subset, got %d\n%s", got, html)
	}
	if !strings.Contains(html, `<option value="Beta" selected>Beta</option>`) {
		t.Fatalf("expected preselected option\n%s", html)
	}
	if !strings.Contains(html, `value="Ada"`) {
		t.Fatalf("expected prefilled input\n%s", html)
	}
}

func TestRenderer_ThemeConfig(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme: "ocean",
		CSSVars: map[string]string{
			"--theme-primary": "#0ea5e9",
			"--bad":           "red;}</style>",
			"no-prefix":       "1px",
		},
		Tokens: map[string]string{vanilla.RootClassesToken: `layout-grid theme-dark "broken"`},
		AssetURL: func(key string) string {
			if key == "html.stylesheet" {
				return "/assets/ocean.css"
			}
			return ""
		},
	}
	html := renderHTML(t, newRenderer(t, vanilla.WithoutInlineStyles()), testsupport.AllTypesForm(), render.RenderOptions{Theme: cfg})

	for _, want := range []string{
		":root {\n  --theme-primary: #0ea5e9;\n}",
		`<body class="layout-grid theme-dark">`,
		`<link rel="stylesheet" href="/assets/ocean.css">`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
	for _, unwanted := range []string{"--bad", "no-prefix", "button {"} {
		if strings.Contains(html, unwanted) {
			t.Fatalf("did not expect %q in output", unwanted)
		}
	}
}

func TestRenderer_ChromeClasses(t *testing.T) {
	r := newRenderer(t, vanilla.WithChromeClasses(vanilla.ChromeClasses{Form: "custom-form", Group: `x"y`}))
	html := renderHTML(t, r, testsupport.AllTypesForm(), render.RenderOptions{})
	if !strings.Contains(html, `class="custom-form"`) {
		t.Fatalf("expected custom form class\n%s", html)
	}
	if !strings.Contains(html, `class="form-group"`) {
		t.Fatalf("expected invalid group class to fall back to default")
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/page.tmpl":  {Data: []byte(`{{ title }}:{% for entry in entries %}{% for field in entry.fields %}{% include "field.tmpl" %}{% endfor %}{% endfor %}`)},
		"templates/field.tmpl": {Data: []byte(`[{{ field.key }}]`)},
	}
	form := model.FormConfig{Title: "T", Sections: []model.Entry{
		model.FieldEntry(model.NewField("a", model.FieldTypeText, "A")),
		model.FieldEntry(model.NewField("b", model.FieldTypeText, "B")),
	}}
	html := renderHTML(t, newRenderer(t, vanilla.WithTemplatesFS(files)), form, render.RenderOptions{})
	if html != "T:[a][b]" {
		t.Fatalf("unexpected output %q", html)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRenderer(t).Render(ctx, testsupport.AllTypesForm(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

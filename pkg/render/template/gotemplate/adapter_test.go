package gotemplate_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func templates() fstest.MapFS {
	return fstest.MapFS{
		"hello.tmpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tmpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tmpl": {Data: []byte("{{ name|shout }}")},
		"escape.tmpl":     {Data: []byte("<h1>{{ title }}</h1><script>const t = {{ title|jsstring }};</script>")},
		"json.tmpl":       {Data: []byte("{{ data|tojson:4 }}")},
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templates()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_EscapingFilters(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape", map[string]any{"title": `<Tom> "Jerry"`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(result, "<h1>&lt;Tom&gt; &quot;Jerry&quot;</h1>") {
		t.Fatalf("expected html escaped title, got %q", result)
	}
	if !strings.Contains(result, `const t = "\u003cTom\u003e \"Jerry\"";`) {
		t.Fatalf("expected js string literal, got %q", result)
	}
}

func TestEngine_RenderStringAndJSON(t *testing.T) {
	engine := newEngine(t)

	inline, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "one", "b": "two"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if inline != "one-two" {
		t.Fatalf("unexpected inline result %q", inline)
	}

	type payload struct {
		Name string `json:"name"`
	}
	result, err := engine.RenderTemplate("json", map[string]any{"data": payload{Name: "x"}})
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	if result != "{\n    \"name\": \"x\"\n}" {
		t.Fatalf("unexpected json result %q", result)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
}

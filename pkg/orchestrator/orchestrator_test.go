package orchestrator_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/audit"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestOrchestrator_DefaultRegistry(t *testing.T) {
	orch := orchestrator.New()
	want := []string{"flutter", "html", "json", "openapi", "react", "vue", "yaml"}
	if diff := cmp.Diff(want, orch.Registry().List()); diff != "" {
		t.Fatalf("targets mismatch (-want +got):\n%s", diff)
	}

	cfg := testsupport.ComprehensiveForm()
	output, err := orch.Generate(context.Background(), orchestrator.Request{Config: &cfg})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "<form") {
		t.Fatalf("expected html by default, got:\n%s", output)
	}
}

func TestOrchestrator_LoadsFromSource(t *testing.T) {
	orch := orchestrator.New()
	output, err := orch.Generate(context.Background(), orchestrator.Request{
		Source:   schema.SourceFromFile(filepath.Join("testdata", "contact.json")),
		Renderer: "json",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(output), "{\n  \"id\": \"contact\",") {
		t.Fatalf("unexpected json output:\n%s", output)
	}

	if _, err := orch.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected missing input error")
	}
	if _, err := orch.Generate(context.Background(), orchestrator.Request{
		Source:   schema.SourceFromFile(filepath.Join("testdata", "contact.json")),
		Renderer: "missing",
	}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestOrchestrator_RepairAndStrict(t *testing.T) {
	ctx := context.Background()
	src := schema.SourceFromFile(filepath.Join("testdata", "contact.json"))

	strict := orchestrator.New(orchestrator.WithStrict(true))
	_, err := strict.Generate(ctx, orchestrator.Request{Source: src})
	var auditErr *orchestrator.AuditError
	if !errors.As(err, &auditErr) {
		t.Fatalf("expected AuditError, got %v", err)
	}
	if auditErr.Report.Count(audit.EmptyOptions) != 1 {
		t.Fatalf("expected one empty_options issue, got %+v", auditErr.Report.Issues)
	}

	repaired := orchestrator.New(orchestrator.WithStrict(true), orchestrator.WithRepair(true))
	cfg, report, err := repaired.Prepare(ctx, orchestrator.Request{Source: src})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if report.HasIssues() {
		t.Fatalf("repair should clear issues, got %+v", report.Issues)
	}
	field, _, _ := model.FindField(cfg, "topic")
	if diff := cmp.Diff([]string{"Sales"}, field.Options()); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_TransformerAndDecorators(t *testing.T) {
	var order []string
	transformer := orchestrator.TransformerFunc(func(_ context.Context, cfg *model.FormConfig) error {
		order = append(order, "transform")
		cfg.Title = "Transformed"
		return nil
	})
	decorator := model.DecoratorFunc(func(cfg *model.FormConfig) error {
		order = append(order, "decorate:"+cfg.Title)
		return nil
	})
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(renderer.Name()),
		orchestrator.WithTransformer(transformer),
		orchestrator.WithDecorators(decorator),
	)
	cfg := testsupport.ComprehensiveForm()
	if _, err := orch.Generate(context.Background(), orchestrator.Request{Config: &cfg}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"transform", "decorate:Transformed"}, order); diff != "" {
		t.Fatalf("stage order mismatch (-want +got):\n%s", diff)
	}
	if renderer.last.Title != "Transformed" || cfg.Title != "Comprehensive Test Form" {
		t.Fatalf("transform must apply to a private copy")
	}

	failing := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithTransformer(orchestrator.TransformerFunc(func(context.Context, *model.FormConfig) error {
			return fmt.Errorf("boom")
		})),
	)
	if _, err := failing.Generate(context.Background(), orchestrator.Request{Config: &cfg}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected transformer error, got %v", err)
	}
}

func TestJSONPresetTransformerFromFS(t *testing.T) {
	transformer, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS("testdata"), "sample_transformer.json")
	if err != nil {
		t.Fatalf("new json transformer: %v", err)
	}
	cfg := testsupport.ComprehensiveForm()
	if err := transformer.Transform(context.Background(), &cfg); err != nil {
		t.Fatalf("apply transformer: %v", err)
	}

	if cfg.Title != "Transformed Title" {
		t.Fatalf("title not patched: %q", cfg.Title)
	}
	section, _, ok := model.FindSection(cfg, "text-fields")
	if !ok || section.Title != "Text" || section.Collapsible {
		t.Fatalf("section not patched: %+v", section)
	}
	email, _, ok := model.FindField(cfg, "work_email")
	if !ok || email.Label != "Work Email" || email.HelperText != "We never share it" {
		t.Fatalf("field not patched: %+v", email)
	}
	multi, _, _ := model.FindField(cfg, "multi_select_5_options")
	if !multi.Required {
		t.Fatalf("required flag not patched")
	}

	stale, err := orchestrator.NewJSONPresetTransformer([]byte(`{"fields":{"ghost":{"label":"x"}}}`))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := stale.Transform(context.Background(), &cfg); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
}

func TestOrchestrator_GenerateAll(t *testing.T) {
	orch := orchestrator.New()
	cfg := testsupport.AllTypesForm()
	outputs, err := orch.GenerateAll(context.Background(), orchestrator.Request{Config: &cfg})
	if err != nil {
		t.Fatalf("generate all: %v", err)
	}
	if len(outputs) != len(orch.Registry().List()) {
		t.Fatalf("expected an output per target, got %d", len(outputs))
	}
	for name, output := range outputs {
		if len(output) == 0 {
			t.Fatalf("%s produced no output", name)
		}
	}

	outputs, err = orch.GenerateAll(context.Background(), orchestrator.Request{Config: &cfg}, "react", "json")
	if err != nil || len(outputs) != 2 {
		t.Fatalf("expected two outputs, got %d (%v)", len(outputs), err)
	}
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := testsupport.ComprehensiveForm()
	if _, err := orchestrator.New().Generate(ctx, orchestrator.Request{Config: &cfg}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type captureRenderer struct {
	last    model.FormConfig
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, cfg model.FormConfig, opts render.RenderOptions) ([]byte, error) {
	r.last = cfg
	r.options = opts
	return []byte(cfg.ID), nil
}

func TestOrchestrator_NumericOptionsReachEveryBackend(t *testing.T) {
	source := schema.SourceFromBytes("sizes.yaml", []byte(`
id: sizes
sections:
  - key: size
    type: dropdown
    label: Size
    extra:
      options: [1, 2, 3]
`))
	orch := orchestrator.New()
	_, report, err := orch.Prepare(context.Background(), orchestrator.Request{Source: source})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if !report.IsValid || report.Summary.AverageOptionsPerField != 3 {
		t.Fatalf("unexpected report %+v", report)
	}

	for renderer, want := range map[string]string{
		"react": `<option value="2">2</option>`,
		"html":  `<option value="2">2</option>`,
	} {
		output, err := orch.Generate(context.Background(), orchestrator.Request{Source: source, Renderer: renderer})
		if err != nil {
			t.Fatalf("%s: %v", renderer, err)
		}
		if !strings.Contains(string(output), want) {
			t.Fatalf("%s output is missing the audited options:\n%s", renderer, output)
		}
	}
}

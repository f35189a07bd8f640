package rawconfig

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestRenderer_RoundTrip(t *testing.T) {
	form := testsupport.ComprehensiveForm()
	r := New()
	if r.Name() != "json" || r.ContentType() != "application/json" {
		t.Fatalf("unexpected contract %q %q", r.Name(), r.ContentType())
	}

	out, err := r.Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), "{\n  \"id\": \"comprehensive-test-form\",") {
		t.Fatalf("expected canonical two-space JSON, got:\n%s", out)
	}

	decoded, err := model.Decode(out, model.FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(form, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_YAMLAndSubset(t *testing.T) {
	r := New(WithFormat(model.FormatYAML))
	if r.Name() != "yaml" {
		t.Fatalf("unexpected name %q", r.Name())
	}
	out, err := r.Render(testsupport.Context(), testsupport.ComprehensiveForm(), render.RenderOptions{
		Subset: render.FieldSubset{Sections: []string{"selection-fields"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	decoded, err := model.Decode(out, model.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	var keys []string
	for _, field := range model.Flatten(decoded) {
		keys = append(keys, field.Key)
	}
	want := []string{"dropdown_3_options", "radio_4_options", "multi_select_5_options"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("subset mismatch (-want +got):\n%s", diff)
	}
}

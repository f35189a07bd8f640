package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func errorForm() model.FormConfig {
	return model.FormConfig{
		ID: "account",
		Sections: []model.Entry{
			model.SectionEntry(model.Section{
				ID: "contact",
				Fields: []model.Field{
					model.NewField("email", model.FieldTypeEmail, "Email"),
					model.NewField("phone", model.FieldTypePhone, "Phone"),
				},
			}),
			model.FieldEntry(model.NewField("name", model.FieldTypeText, "Name")),
			model.FieldEntry(model.NewField("tags", model.FieldTypeMultiSelect, "Tags")),
		},
	}
}

func TestMapErrorPayload_PathStyles(t *testing.T) {
	payload := map[string][]string{
		"/body/name":                 {"Name is required"},
		"body.email":                 {"Email invalid", " Email invalid "},
		"$.data.tags[0]":             {"Tags must be unique"},
		"request/payload/phone":      {"Phone malformed"},
		"non_field_errors":           {"Form level error"},
		"request/body/unknown-field": {"Should fall back to form errors"},
		"":                           {"Unscoped form error"},
		"name":                       {"   "},
	}

	mapped := render.MapErrorPayload(errorForm(), payload)

	wantFields := map[string][]string{
		"name":  {"Name is required"},
		"email": {"Email invalid"},
		"tags":  {"Tags must be unique"},
		"phone": {"Phone malformed"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Form level error", "Should fall back to form errors", "Unscoped form error"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapped := render.MapErrorPayload(errorForm(), nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected zero payload, got %+v", mapped)
	}
}

func TestPayloadFromResult(t *testing.T) {
	result := validation.Result{
		Valid:  false,
		Errors: map[string]string{"email": "Email is required"},
		Order:  []string{"email"},
	}
	got := render.PayloadFromResult(result)
	want := render.ErrorPayload{Fields: map[string][]string{"email": {"Email is required"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	if got := render.PayloadFromResult(validation.Result{Valid: true}); got.Fields != nil {
		t.Fatalf("expected empty payload for valid result, got %+v", got)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}

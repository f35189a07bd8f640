package openapi

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func loadDocument(t *testing.T, data []byte) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		t.Fatalf("load document: %v\n%s", err, data)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("validate document: %v\n%s", err, data)
	}
	return doc
}

func TestRenderer_ValidDocument(t *testing.T) {
	form := testsupport.AllTypesForm()
	out, err := New().Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := loadDocument(t, out)

	ref, ok := doc.Components.Schemas["AllTypes"]
	if !ok || ref.Value == nil {
		t.Fatalf("expected AllTypes schema, got %v", doc.Components.Schemas)
	}
	schema := ref.Value
	if got, want := len(schema.Properties), len(model.Flatten(form)); got != want {
		t.Fatalf("expected %d properties, got %d", want, got)
	}

	cases := map[string]string{
		"number_field":       openapi3.TypeNumber,
		"checkbox_field":     openapi3.TypeBoolean,
		"multi_select_field": openapi3.TypeArray,
		"rating_field":       openapi3.TypeInteger,
		"slider_field":       openapi3.TypeNumber,
		"mystery_field":      openapi3.TypeString,
	}
	for key, want := range cases {
		prop := schema.Properties[key]
		if prop == nil || !prop.Value.Type.Is(want) {
			t.Fatalf("%s: expected type %s", key, want)
		}
	}
	if diff := cmp.Diff([]any{"Alpha", "Beta"}, schema.Properties["dropdown_field"].Value.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if got := schema.Properties["date_field"].Value.Format; got != "date" {
		t.Fatalf("expected date format, got %q", got)
	}
	slider := schema.Properties["slider_field"].Value
	if slider.Min == nil || *slider.Min != 0 || slider.Max == nil || *slider.Max != 100 {
		t.Fatalf("unexpected slider bounds %v %v", slider.Min, slider.Max)
	}
}

func TestRenderer_RulesAndRequired(t *testing.T) {
	name := model.NewField("name", model.FieldTypeText, "Name")
	name.Required = true
	name.Validation = []model.ValidationRule{
		{Type: model.RuleMinLength, Value: 2.0, Message: "short"},
		{Type: model.RuleMinLength, Value: 5.0, Message: "ignored"},
		{Type: model.RuleMaxLength, Value: "10", Message: "long"},
		{Type: model.RulePattern, Value: "^[a-z]+$", Message: "letters"},
	}
	age := model.NewField("age", model.FieldTypeNumber, "Age")
	age.Validation = []model.ValidationRule{
		{Type: model.RuleRequired, Message: "needed"},
		{Type: model.RuleMin, Value: 18.0, Message: "adult"},
		{Type: model.RuleMinLength, Value: 3.0, Message: "not for numbers"},
	}
	broken := model.NewField("broken", model.FieldTypeText, "Broken")
	broken.Validation = []model.ValidationRule{{Type: model.RulePattern, Value: "([", Message: "bad"}}

	form := model.FormConfig{ID: "9-lives", Sections: []model.Entry{
		model.FieldEntry(name), model.FieldEntry(age), model.FieldEntry(broken),
	}}
	if got := SchemaName(form); got != "Form9Lives" {
		t.Fatalf("unexpected schema name %q", got)
	}

	out, err := New(WithVersion("2.1.0")).Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := loadDocument(t, out)
	if doc.Info.Version != "2.1.0" || doc.Info.Title != "Dynamic Form" {
		t.Fatalf("unexpected info %+v", doc.Info)
	}
	schema := doc.Components.Schemas["Form9Lives"].Value

	if diff := cmp.Diff([]string{"name", "age"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	nameSchema := schema.Properties["name"].Value
	if nameSchema.MinLength != 2 || nameSchema.MaxLength == nil || *nameSchema.MaxLength != 10 || nameSchema.Pattern != "^[a-z]+$" {
		t.Fatalf("unexpected name constraints %+v", nameSchema)
	}
	ageSchema := schema.Properties["age"].Value
	if ageSchema.Min == nil || *ageSchema.Min != 18 || ageSchema.MinLength != 0 {
		t.Fatalf("unexpected age constraints %+v", ageSchema)
	}
	if got := schema.Properties["broken"].Value.Pattern; got != "" {
		t.Fatalf("malformed pattern must be skipped, got %q", got)
	}
}

package react

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestRenderer_OneControlPerField(t *testing.T) {
	form := testsupport.AllTypesForm()
	out, err := New().Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(out)

	fields := model.Flatten(form)
	if got := strings.Count(src, "<div data-field="); got != len(fields) {
		t.Fatalf("expected %d field wrappers, got %d", len(fields), got)
	}
	for _, field := range fields {
		if strings.Count(src, `<div data-field="`+field.Key+`">`) != 1 {
			t.Fatalf("field %s not rendered exactly once", field.Key)
		}
		if !strings.Contains(src, `register("`+field.Key+`"`) {
			t.Fatalf("field %s not registered", field.Key)
		}
	}

	for _, want := range []string{
		`<input type="email" {...register("email_field", { required: false })}`,
		`<input type="tel" {...register("phone_field"`,
		`<input type="number" {...register("number_field"`,
		`<textarea {...register("multiline_field"`,
		`<option value="Alpha">Alpha</option>`,
		`<input type="radio" value="Beta" {...register("radio_field"`,
		`<input type="checkbox" value="Alpha" {...register("multi_select_field"`,
		`<input type="date" {...register("date_field"`,
		`<input type="range" min={0} max={100} step={1} {...register("slider_field"`,
		`<input type="radio" value="5" {...register("rating_field"`,
		`<input type="color" {...register("color_field"`,
		`<input type="file" {...register("file_field"`,
		`<input type="text" {...register("mystery_field"`,
		`<fieldset data-section="grouped" className="space-y-6">`,
		"export const formConfig = {",
		"export default function DynamicForm() {",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected output to contain %q\n%s", want, src)
		}
	}
}

func TestRenderer_RegisterOptions(t *testing.T) {
	field := model.NewField("username", model.FieldTypeText, "User {name}")
	field.Required = true
	field.Validation = []model.ValidationRule{
		{Type: model.RuleMinLength, Value: float64(3), Message: "Too short"},
		{Type: model.RuleMinLength, Value: float64(9), Message: "ignored"},
		{Type: model.RulePattern, Value: "^[a-z]+$", Message: "Lowercase only"},
		{Type: model.RulePattern, Value: "([", Message: "broken"},
		{Type: model.RuleMax, Value: "abc", Message: "not a number"},
		{Type: model.RuleCustom, Message: "custom"},
	}

	got := registerOptions(field)
	want := `{ required: "User {name} is required", minLength: { value: 3, message: "Too short" }, pattern: { value: new RegExp("^[a-z]+$"), message: "Lowercase only" } }`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("register options mismatch (-want +got):\n%s", diff)
	}

	form := model.FormConfig{ID: "f", Sections: []model.Entry{model.FieldEntry(field)}}
	out, err := New(WithComponentName("SignupForm")).Render(testsupport.Context(), form, render.RenderOptions{
		Values: map[string]any{"username": "ada"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(out)
	for _, want := range []string{
		"export default function SignupForm() {",
		`<label className="` + labelClass + `">User &#123;name&#125;</label>`,
		`defaultValue="ada"`,
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected output to contain %q\n%s", want, src)
		}
	}
}

func TestRenderer_QuotedKeyStaysValidJSX(t *testing.T) {
	field := model.NewField(`say"hi`, model.FieldTypeText, "Greeting")
	form := model.FormConfig{ID: "f", Sections: []model.Entry{model.FieldEntry(field)}}
	out, err := New().Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(out)
	if !strings.Contains(src, `<div data-field="say&#34;hi">`) {
		t.Fatalf("expected entity-escaped attribute\n%s", src)
	}
	if strings.Contains(src, `data-field="say\"hi"`) {
		t.Fatalf("attribute must not carry a backslash escape\n%s", src)
	}
	if !strings.Contains(src, `register("say\"hi"`) {
		t.Fatalf("register call should keep the JavaScript string literal\n%s", src)
	}
}

func TestRenderer_SubsetAndTitle(t *testing.T) {
	form := testsupport.ComprehensiveForm()
	out, err := New().Render(testsupport.Context(), form, render.RenderOptions{
		Subset: render.FieldSubset{Sections: []string{"text-fields"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(out)
	if strings.Contains(src, `data-field="radio_4_options"`) {
		t.Fatalf("subset should drop selection fields")
	}
	if !strings.Contains(src, `<h1 className="text-2xl font-bold mb-4 text-white">Comprehensive Test Form</h1>`) {
		t.Fatalf("missing title")
	}
}

func TestNumberLiteral(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{float64(2.5), "2.5", true},
		{7, "7", true},
		{" 10 ", "10", true},
		{"ten", "", false},
		{true, "", false},
	}
	for _, tc := range cases {
		got, ok := numberLiteral(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("numberLiteral(%v) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

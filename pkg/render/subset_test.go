package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func sampleForm() model.FormConfig {
	return model.FormConfig{
		ID:    "profile",
		Title: "Profile",
		Sections: []model.Entry{
			model.SectionEntry(model.Section{
				ID:    "personal",
				Title: "Personal",
				Fields: []model.Field{
					model.NewField("name", model.FieldTypeText, "Name"),
					model.NewField("email", model.FieldTypeEmail, "Email"),
				},
			}),
			model.FieldEntry(model.NewField("bio", model.FieldTypeMultiline, "Bio")),
			model.SectionEntry(model.Section{
				ID: "prefs",
				Fields: []model.Field{
					model.NewField("theme", model.FieldTypeDropdown, "Theme"),
				},
			}),
		},
	}
}

func keys(cfg model.FormConfig) []string {
	var out []string
	for _, field := range model.Flatten(cfg) {
		out = append(out, field.Key)
	}
	return out
}

func TestApplySubset(t *testing.T) {
	cases := []struct {
		name     string
		subset   FieldSubset
		want     []string
		sections int
	}{
		{name: "empty keeps all", want: []string{"name", "email", "bio", "theme"}, sections: 2},
		{name: "by section", subset: FieldSubset{Sections: []string{" Personal "}}, want: []string{"name", "email"}, sections: 1},
		{name: "by type", subset: FieldSubset{Types: []string{"multiline", "dropdown"}}, want: []string{"bio", "theme"}, sections: 1},
		{name: "by key", subset: FieldSubset{Keys: []string{"email"}}, want: []string{"email"}, sections: 1},
		{name: "union of filters", subset: FieldSubset{Sections: []string{"prefs"}, Keys: []string{"bio"}}, want: []string{"bio", "theme"}, sections: 1},
		{name: "no match", subset: FieldSubset{Keys: []string{"missing"}}, want: nil, sections: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := sampleForm()
			got := ApplySubset(form, tc.subset)

			if diff := cmp.Diff(tc.want, keys(got)); diff != "" {
				t.Fatalf("field keys mismatch (-want +got):\n%s", diff)
			}
			if n := len(model.Sections(got)); n != tc.sections {
				t.Fatalf("expected %d sections, got %d", tc.sections, n)
			}
			if diff := cmp.Diff(keys(sampleForm()), keys(form)); diff != "" {
				t.Fatalf("input mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldSubsetEmpty(t *testing.T) {
	if !(FieldSubset{Keys: []string{"  "}}).Empty() {
		t.Fatalf("blank tokens should not count as filters")
	}
	if (FieldSubset{Types: []string{"text"}}).Empty() {
		t.Fatalf("expected non-empty subset")
	}
}

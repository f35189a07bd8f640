package audit_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/audit"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func fixedKeys(prefix string) string { return prefix + "_generated" }

func TestRepair_DoesNotMutateInput(t *testing.T) {
	for name, cfg := range testsupport.ProblematicForms() {
		t.Run(name, func(t *testing.T) {
			snapshot := cfg.Clone()
			_ = audit.Repair(cfg)
			if diff := cmp.Diff(snapshot, cfg); diff != "" {
				t.Fatalf("input mutated (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRepair_FixesOptions(t *testing.T) {
	repaired := audit.Repair(testsupport.EdgeCaseForm())
	fields := model.Flatten(repaired)

	if diff := cmp.Diff([]string{"Valid Option", "Another Valid", "Last Valid"}, fields[0].Options()); diff != "" {
		t.Fatalf("blank options not stripped (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Option A", "Option B", "Option C"}, fields[1].Options()); diff != "" {
		t.Fatalf("duplicates not removed (-want +got):\n%s", diff)
	}

	report := audit.Audit(repaired)
	if !report.IsValid {
		t.Fatalf("expected repaired form to be valid, got %+v", report.Issues)
	}
	if got := report.Count(audit.InsufficientOptions); got != 1 {
		t.Fatalf("single option warning should remain, got %d", got)
	}
}

func TestRepair_EnsuresOptionsList(t *testing.T) {
	repaired := audit.Repair(testsupport.MissingOptionsForm())
	field, _, ok := model.FindField(repaired, "dropdown_missing_options")
	if !ok {
		t.Fatalf("field missing after repair")
	}
	options := field.Options()
	if options == nil || len(options) != 0 {
		t.Fatalf("expected present but empty options, got %#v", options)
	}
}

func TestRepair_NormalisesMixedOptionLists(t *testing.T) {
	field := model.NewField("size", model.FieldTypeRadio, "Size")
	field.Extra = model.ExtraFor(model.FieldTypeRadio, map[string]any{"options": []any{"S", 2.0, "S", ""}})
	cfg := model.FormConfig{ID: "mixed", Sections: []model.Entry{model.FieldEntry(field)}}

	repaired := audit.Repair(cfg)
	choice := repaired.Sections[0].Field.Extra.(*model.ChoiceExtra)
	if diff := cmp.Diff([]string{"S", "2"}, choice.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if choice.Other != nil {
		t.Fatalf("raw options should be consumed, got %v", choice.Other)
	}
}

func TestRepair_KeysAndLabels(t *testing.T) {
	noKey := model.NewField("", model.FieldTypeText, "")
	first := model.NewField("first_name", model.FieldTypeText, "")
	dup := model.NewField("first_name", model.FieldTypeText, "Again")
	taken := model.NewField("first_name_2", model.FieldTypeText, "Taken")

	cfg := model.FormConfig{
		ID: "keys",
		Sections: []model.Entry{
			model.FieldEntry(noKey),
			model.SectionEntry(model.Section{ID: "s", Fields: []model.Field{first, dup}}),
			model.FieldEntry(taken),
		},
	}
	repaired := audit.Repair(cfg, audit.WithKeyGenerator(fixedKeys))

	var keys, labels []string
	for _, field := range model.Flatten(repaired) {
		keys = append(keys, field.Key)
		labels = append(labels, field.Label)
	}
	if diff := cmp.Diff([]string{"field_generated", "first_name", "first_name_3", "first_name_2"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Field Generated", "First Name", "Again", "Taken"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if report := audit.Audit(repaired); report.Count(audit.DuplicateKey) != 0 {
		t.Fatalf("duplicate keys survived repair: %+v", report.Issues)
	}
}

func TestRepair_DefaultKeyGenerator(t *testing.T) {
	cfg := model.FormConfig{ID: "k", Sections: []model.Entry{model.FieldEntry(model.NewField("", model.FieldTypeText, ""))}}
	repaired := audit.Repair(cfg)
	key := repaired.Sections[0].Field.Key
	if !strings.HasPrefix(key, "field_") || len(key) != len("field_")+12 {
		t.Fatalf("unexpected generated key %q", key)
	}
}

func TestLabelFromKey(t *testing.T) {
	cases := map[string]string{
		"first_name":    "First Name",
		"email":         "Email",
		"field_1_value": "Field 1 Value",
		"already Upper": "Already Upper",
		"dash-case":     "Dash-Case",
	}
	for key, want := range cases {
		if got := audit.LabelFromKey(key); got != want {
			t.Fatalf("%s: want %q, got %q", key, want, got)
		}
	}
}

package validation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func rule(t model.RuleType, value any, message string) model.ValidationRule {
	return model.ValidationRule{Type: t, Value: value, Message: message}
}

func TestValidateField_Rules(t *testing.T) {
	cases := []struct {
		name  string
		value any
		rule  model.ValidationRule
		want  string
	}{
		{"required nil", nil, rule(model.RuleRequired, nil, "req"), "req"},
		{"required empty string", "", rule(model.RuleRequired, nil, "req"), "req"},
		{"required whitespace", "  \t", rule(model.RuleRequired, nil, "req"), "req"},
		{"required false", false, rule(model.RuleRequired, nil, "req"), "req"},
		{"required zero", 0.0, rule(model.RuleRequired, nil, "req"), "req"},
		{"required NaN", math.NaN(), rule(model.RuleRequired, nil, "req"), "req"},
		{"required filled", "x", rule(model.RuleRequired, nil, "req"), ""},
		{"required true", true, rule(model.RuleRequired, nil, "req"), ""},
		{"required empty selection is present", []string{}, rule(model.RuleRequired, nil, "req"), ""},

		{"minLength short", "abc", rule(model.RuleMinLength, 5.0, "short"), "short"},
		{"minLength exact", "abcde", rule(model.RuleMinLength, 5.0, "short"), ""},
		{"minLength counts runes", "héllo", rule(model.RuleMinLength, 5.0, "short"), ""},
		{"minLength string bound", "ab", rule(model.RuleMinLength, "3", "short"), "short"},
		{"minLength skips empty", "", rule(model.RuleMinLength, 5.0, "short"), ""},
		{"minLength skips non-string", 12.0, rule(model.RuleMinLength, 5.0, "short"), ""},
		{"minLength ignores bad bound", "ab", rule(model.RuleMinLength, "five", "short"), ""},
		{"maxLength long", "abcdef", rule(model.RuleMaxLength, 5.0, "long"), "long"},
		{"maxLength ok", "abc", rule(model.RuleMaxLength, 5.0, "long"), ""},

		{"min below", 3.0, rule(model.RuleMin, 5.0, "low"), "low"},
		{"min numeric string", "3", rule(model.RuleMin, 5.0, "low"), "low"},
		{"min above", 7.0, rule(model.RuleMin, 5.0, "low"), ""},
		{"min skips zero", 0.0, rule(model.RuleMin, 5.0, "low"), ""},
		{"min skips empty", "", rule(model.RuleMin, 5.0, "low"), ""},
		{"min skips non-numeric", "abc", rule(model.RuleMin, 5.0, "low"), ""},
		{"min int value", 3, rule(model.RuleMin, 5, "low"), "low"},
		{"max above", 9.0, rule(model.RuleMax, 5.0, "high"), "high"},
		{"max ok", 5.0, rule(model.RuleMax, 5.0, "high"), ""},

		{"pattern mismatch", "ABC", rule(model.RulePattern, "^[a-z]+$", "pat"), "pat"},
		{"pattern match", "abc", rule(model.RulePattern, "^[a-z]+$", "pat"), ""},
		{"pattern skips empty", "", rule(model.RulePattern, "^[a-z]+$", "pat"), ""},
		{"pattern skips non-string", 5.0, rule(model.RulePattern, "^[a-z]+$", "pat"), ""},
		{"pattern malformed passes", "abc", rule(model.RulePattern, "([a-z", "pat"), ""},
		{"pattern non-string value passes", "abc", rule(model.RulePattern, 12.0, "pat"), ""},

		{"custom passes", "", rule(model.RuleCustom, nil, "custom"), ""},
		{"unknown passes", "", rule(model.RuleType("other"), nil, "other"), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.ValidateField(tc.value, []model.ValidationRule{tc.rule})
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestValidateField_ShortCircuitsOnFirstFailure(t *testing.T) {
	rules := []model.ValidationRule{
		rule(model.RuleMinLength, 5.0, "Too short"),
		rule(model.RulePattern, "^[a-z]+$", "Lowercase only"),
	}
	if got := validation.ValidateField("AB", rules); got != "Too short" {
		t.Fatalf("expected minLength message, got %q", got)
	}
	if got := validation.ValidateField("ABCDEF", rules); got != "Lowercase only" {
		t.Fatalf("expected pattern message, got %q", got)
	}
	if got := validation.ValidateField("abcdef", rules); got != "" {
		t.Fatalf("expected no error, got %q", got)
	}
}

func TestEffectiveRules_PrependsRequiredWithoutMutating(t *testing.T) {
	field := model.NewField("name", model.FieldTypeText, "Name")
	field.Required = true
	field.Validation = []model.ValidationRule{rule(model.RuleRequired, nil, "Please fill the name")}
	original := field.Clone()

	rules := validation.EffectiveRules(field)
	want := []model.ValidationRule{
		rule(model.RuleRequired, nil, "Name is required"),
		rule(model.RuleRequired, nil, "Please fill the name"),
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Fatalf("effective rules mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original, field); diff != "" {
		t.Fatalf("field mutated (-want +got):\n%s", diff)
	}

	if got := validation.Check(field, ""); got != "Name is required" {
		t.Fatalf("expected exactly the prepended message, got %q", got)
	}
}

func TestEffectiveRules_LabelFallsBackToKey(t *testing.T) {
	field := model.NewField("nickname", model.FieldTypeText, "")
	field.Required = true
	if got := validation.Check(field, nil); got != "nickname is required" {
		t.Fatalf("unexpected message %q", got)
	}

	field.Required = false
	if rules := validation.EffectiveRules(field); rules != nil {
		t.Fatalf("expected no rules for optional field, got %v", rules)
	}
}

func TestCheckRules(t *testing.T) {
	rules := []model.ValidationRule{
		rule(model.RulePattern, "^ok$", "fine"),
		rule(model.RulePattern, "([", "broken"),
		rule(model.RuleMin, "ten", "bad bound"),
		rule(model.RuleMaxLength, 3.0, "fine"),
		rule(model.RuleCustom, nil, "custom"),
	}
	errs := validation.CheckRules(rules)
	if len(errs) != 2 {
		t.Fatalf("expected 2 rule errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Index != 1 || !errors.Is(errs[0], validation.ErrMalformedPattern) {
		t.Fatalf("expected malformed pattern at index 1, got %v", errs[0])
	}
	if errs[1].Index != 2 || !errors.Is(errs[1], validation.ErrInvalidRuleValue) {
		t.Fatalf("expected invalid value at index 2, got %v", errs[1])
	}
}

func TestFormatHelpers(t *testing.T) {
	if !validation.ValidateEmail("someone@example.com") {
		t.Fatalf("expected valid email")
	}
	if validation.ValidateEmail("not-an-email") {
		t.Fatalf("expected invalid email")
	}
	if !validation.ValidatePhone("+1 (555) 123-4567") {
		t.Fatalf("expected valid phone")
	}
	if validation.ValidatePhone("call me") {
		t.Fatalf("expected invalid phone")
	}

	rules := []model.ValidationRule{validation.EmailRule("")}
	if got := validation.ValidateField("nope", rules); got != "Please enter a valid email address" {
		t.Fatalf("unexpected email rule message %q", got)
	}
	if got := validation.ValidateField("+44 20 7946 0958", []model.ValidationRule{validation.PhoneRule("bad phone")}); got != "" {
		t.Fatalf("expected phone to pass, got %q", got)
	}
}

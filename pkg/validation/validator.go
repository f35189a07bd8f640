// Package validation evaluates submitted values against a field's ordered
// rule list. Rules run in order and the first failing rule's message is the
// result; nothing after it is evaluated.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ValidateField returns the message of the first failing rule, or "" when
// every rule passes. Values follow the loose truthiness of the editor preview:
// nil, "", false, 0 and NaN are empty.
func ValidateField(value any, rules []model.ValidationRule) string {
	for _, rule := range rules {
		if failed(value, rule) {
			return rule.Message
		}
	}
	return ""
}

// Check validates value against the effective rules of field.
func Check(field model.Field, value any) string {
	return ValidateField(value, EffectiveRules(field))
}

// EffectiveRules returns the rules the preview and the submit check evaluate:
// a synthetic required rule first when the field is required, followed by the
// author's rules. The field's own slice is never modified.
func EffectiveRules(field model.Field) []model.ValidationRule {
	if !field.Required {
		return field.Validation
	}
	out := make([]model.ValidationRule, 0, len(field.Validation)+1)
	out = append(out, model.ValidationRule{
		Type:    model.RuleRequired,
		Message: RequiredMessage(field),
	})
	return append(out, field.Validation...)
}

// RequiredMessage is the default message of the synthetic required rule.
func RequiredMessage(field model.Field) string {
	return field.DisplayLabel() + " is required"
}

func failed(value any, rule model.ValidationRule) bool {
	switch rule.Type {
	case model.RuleRequired:
		if !truthy(value) {
			return true
		}
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) == ""
	case model.RuleMinLength, model.RuleMaxLength:
		s, ok := value.(string)
		if !ok || s == "" {
			return false
		}
		bound, ok := toNumber(rule.Value)
		if !ok {
			return false
		}
		length := float64(utf8.RuneCountInString(s))
		if rule.Type == model.RuleMinLength {
			return length < bound
		}
		return length > bound
	case model.RuleMin, model.RuleMax:
		if !truthy(value) {
			return false
		}
		n, ok := toNumber(value)
		if !ok {
			return false
		}
		bound, ok := toNumber(rule.Value)
		if !ok {
			return false
		}
		if rule.Type == model.RuleMin {
			return n < bound
		}
		return n > bound
	case model.RulePattern:
		s, ok := value.(string)
		if !ok || s == "" {
			return false
		}
		re, err := compile(rule.Value)
		if err != nil {
			return false
		}
		return !re.MatchString(s)
	default:
		// custom rules and unknown tags have no built-in semantics.
		return false
	}
}

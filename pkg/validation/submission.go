package validation

import "github.com/goliatone/go-formbuilder/pkg/model"

// Result is the outcome of checking a whole submission.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
	// Order lists the failing keys in flatten order.
	Order []string `json:"order,omitempty"`
}

// ValidateSubmission checks data against every field of cfg. Missing keys are
// validated as nil. When several fields share a key the first failure for that
// key is kept.
func ValidateSubmission(cfg model.FormConfig, data map[string]any) Result {
	result := Result{Valid: true}
	model.Walk(cfg, func(field model.Field, _ model.Location) bool {
		if _, seen := result.Errors[field.Key]; seen {
			return true
		}
		message := Check(field, data[field.Key])
		if message == "" {
			return true
		}
		if result.Errors == nil {
			result.Errors = make(map[string]string)
		}
		result.Errors[field.Key] = message
		result.Order = append(result.Order, field.Key)
		result.Valid = false
		return true
	})
	return result
}

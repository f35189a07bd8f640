package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// ErrorPayload splits submission errors into field-level messages keyed by
// field key and form-level messages that belong to no field.
type ErrorPayload struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Form   []string            `json:"form,omitempty"`
}

// PayloadFromResult converts a submission result into an error payload. A
// valid result yields the zero payload.
func PayloadFromResult(result validation.Result) ErrorPayload {
	if len(result.Errors) == 0 {
		return ErrorPayload{}
	}
	payload := ErrorPayload{Fields: make(map[string][]string, len(result.Errors))}
	for key, message := range result.Errors {
		if messages := normalizeMessages([]string{message}); messages != nil {
			payload.Fields[key] = messages
		}
	}
	if len(payload.Fields) == 0 {
		payload.Fields = nil
	}
	return payload
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload resolves externally produced error paths (JSON pointers,
// dotted or bracketed paths, optionally wrapped in body/data segments) onto
// the field keys of cfg. Paths that resolve to no field become form-level
// messages so nothing is lost.
func MapErrorPayload(cfg model.FormConfig, payload map[string][]string) ErrorPayload {
	mapping := ErrorPayload{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	fieldPaths := collectFieldPaths(cfg)

	for rawPath, messages := range payload {
		normalizedMessages := normalizeMessages(messages)
		if len(normalizedMessages) == 0 {
			continue
		}

		mapped, formLevel := mapErrorPath(rawPath, fieldPaths)
		if formLevel || mapped == "" {
			mapping.Form = append(mapping.Form, normalizedMessages...)
			continue
		}
		mapping.Fields[mapped] = append(mapping.Fields[mapped], normalizedMessages...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// mapErrorPath resolves raw onto a field key. Field keys are flat, so the
// deepest segment naming a known key wins once wrapper and index segments are
// dropped.
func mapErrorPath(raw string, fieldPaths map[string]struct{}) (string, bool) {
	if isFormLevelKey(raw) {
		return "", true
	}
	segments := parsePathSegments(raw)
	for i := len(segments) - 1; i >= 0; i-- {
		if _, ok := fieldPaths[segments[i]]; ok {
			return segments[i], false
		}
	}
	return "", true
}

var pathSeparators = strings.NewReplacer("[", "/", "]", "/", ".", "/", "#", "/", "$", "/")

// parsePathSegments splits JSON pointers, dotted and bracketed paths into
// segments, unescaping pointer tokens and skipping wrappers and indexes.
func parsePathSegments(path string) []string {
	var out []string
	for _, part := range strings.Split(pathSeparators.Replace(strings.TrimSpace(path)), "/") {
		part = strings.TrimSpace(part)
		if part == "" || isWrapperSegment(part) {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			continue
		}
		part = strings.ReplaceAll(part, "~1", "/")
		out = append(out, strings.ReplaceAll(part, "~0", "~"))
	}
	return out
}

func isWrapperSegment(segment string) bool {
	switch strings.ToLower(segment) {
	case "body", "request", "payload", "data", "values", "fields", "attributes":
		return true
	default:
		return false
	}
}

func collectFieldPaths(cfg model.FormConfig) map[string]struct{} {
	dest := make(map[string]struct{})
	model.Walk(cfg, func(field model.Field, _ model.Location) bool {
		if key := strings.TrimSpace(field.Key); key != "" {
			dest[key] = struct{}{}
		}
		return true
	})
	return dest
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}

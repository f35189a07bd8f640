// Package audit performs static analysis over a whole form configuration and
// offers a best-effort repair transform for the defects it finds.
package audit

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Code identifies a diagnostic kind.
type Code string

const (
	MissingOptions      Code = "missing_options"
	InsufficientOptions Code = "insufficient_options"
	DuplicateOptions    Code = "duplicate_options"
	EmptyOptions        Code = "empty_options"
	InvalidFieldType    Code = "invalid_field_type"
	MissingKey          Code = "missing_key"
	MissingLabel        Code = "missing_label"
	DuplicateKey        Code = "duplicate_key"
	InvalidPattern      Code = "invalid_pattern"
)

// Diagnostic is one finding attached to a field.
type Diagnostic struct {
	Code      Code   `json:"type"`
	FieldKey  string `json:"fieldKey"`
	FieldType string `json:"fieldType"`
	Message   string `json:"message"`
}

// Summary aggregates counts over the flattened field list.
type Summary struct {
	TotalFields            int            `json:"totalFields"`
	TotalSections          int            `json:"totalSections"`
	FieldTypeCount         map[string]int `json:"fieldTypeCount"`
	DropdownFieldCount     int            `json:"dropdownFieldCount"`
	RadioFieldCount        int            `json:"radioFieldCount"`
	FieldsWithOptions      int            `json:"fieldsWithOptions"`
	AverageOptionsPerField float64        `json:"averageOptionsPerField"`
}

// Report is the structured result of Audit. Issues block export; warnings
// are advisory.
type Report struct {
	IsValid  bool         `json:"isValid"`
	Issues   []Diagnostic `json:"issues"`
	Warnings []Diagnostic `json:"warnings"`
	Summary  Summary      `json:"summary"`
}

// Audit runs every check over the flattened field list of cfg. Option checks
// run first, then type checks, then key and label checks.
func Audit(cfg model.FormConfig) Report {
	fields := model.Flatten(cfg)
	report := Report{Issues: []Diagnostic{}, Warnings: []Diagnostic{}}

	for _, field := range fields {
		checkOptions(field, &report)
	}
	for _, field := range fields {
		if !field.Type.IsKnown() {
			report.issue(InvalidFieldType, field, fmt.Sprintf("Field \"%s\" has invalid type \"%s\"", field.Key, field.Type))
		}
	}
	for _, field := range fields {
		if strings.TrimSpace(field.Key) == "" {
			diag := diagnostic(MissingKey, field, "Field is missing a key")
			if field.Key == "" {
				diag.FieldKey = "undefined"
			}
			report.Issues = append(report.Issues, diag)
		}
		if strings.TrimSpace(field.Label) == "" {
			report.warn(MissingLabel, field, fmt.Sprintf("Field \"%s\" is missing a label", field.Key))
		}
	}
	checkDuplicateKeys(fields, &report)
	for _, field := range fields {
		for _, ruleErr := range validation.CheckRules(field.Validation) {
			if ruleErr.Rule.Type != model.RulePattern {
				continue
			}
			report.warn(InvalidPattern, field, fmt.Sprintf("Field \"%s\" has an invalid pattern rule: %v", field.Key, ruleErr.Err))
		}
	}

	report.Summary = summarize(cfg, fields)
	report.IsValid = len(report.Issues) == 0
	return report
}

// HasIssues reports whether the report contains blocking findings.
func (r Report) HasIssues() bool {
	return len(r.Issues) > 0
}

// Count returns how many diagnostics with code the report holds.
func (r Report) Count(code Code) int {
	n := 0
	for _, diag := range r.Issues {
		if diag.Code == code {
			n++
		}
	}
	for _, diag := range r.Warnings {
		if diag.Code == code {
			n++
		}
	}
	return n
}

func checkOptions(field model.Field, report *Report) {
	if !field.Type.HasOptions() {
		return
	}
	options := Options(field)
	kind := string(field.Type)

	if len(options) == 0 {
		report.issue(MissingOptions, field, fmt.Sprintf("%s field \"%s\" has no options defined", kind, field.Key))
	}
	if len(options) < 2 {
		report.warn(InsufficientOptions, field,
			fmt.Sprintf("%s field \"%s\" has only %d option(s). Consider adding more options.", kind, field.Key, len(options)))
	}

	seen := make(map[string]struct{}, len(options))
	duplicated := false
	blank := 0
	for _, option := range options {
		if _, ok := seen[option]; ok {
			duplicated = true
		}
		seen[option] = struct{}{}
		if strings.TrimSpace(option) == "" {
			blank++
		}
	}
	if duplicated {
		report.warn(DuplicateOptions, field, fmt.Sprintf("%s field \"%s\" has duplicate options", kind, field.Key))
	}
	if blank > 0 {
		report.issue(EmptyOptions, field, fmt.Sprintf("%s field \"%s\" has %d empty option(s)", kind, field.Key, blank))
	}
}

func checkDuplicateKeys(fields []model.Field, report *Report) {
	counts := make(map[string]int, len(fields))
	for _, field := range fields {
		counts[field.Key]++
	}
	reported := make(map[string]struct{})
	for _, field := range fields {
		if strings.TrimSpace(field.Key) == "" || counts[field.Key] < 2 {
			continue
		}
		if _, ok := reported[field.Key]; ok {
			continue
		}
		reported[field.Key] = struct{}{}
		report.issue(DuplicateKey, field, fmt.Sprintf("Key \"%s\" is used by %d fields", field.Key, counts[field.Key]))
	}
}

// Options returns the option list of a choice field, the same list every
// backend renders.
func Options(field model.Field) []string {
	return field.Options()
}

func summarize(cfg model.FormConfig, fields []model.Field) Summary {
	summary := Summary{
		TotalFields:    len(fields),
		TotalSections:  len(model.Sections(cfg)),
		FieldTypeCount: make(map[string]int),
	}
	totalOptions := 0
	for _, field := range fields {
		summary.FieldTypeCount[string(field.Type)]++
		switch field.Type {
		case model.FieldTypeDropdown:
			summary.DropdownFieldCount++
		case model.FieldTypeRadio:
			summary.RadioFieldCount++
		}
		if field.Type.HasOptions() {
			summary.FieldsWithOptions++
			totalOptions += len(Options(field))
		}
	}
	if summary.FieldsWithOptions > 0 {
		summary.AverageOptionsPerField = float64(totalOptions) / float64(summary.FieldsWithOptions)
	}
	return summary
}

func diagnostic(code Code, field model.Field, message string) Diagnostic {
	return Diagnostic{Code: code, FieldKey: field.Key, FieldType: string(field.Type), Message: message}
}

func (r *Report) issue(code Code, field model.Field, message string) {
	r.Issues = append(r.Issues, diagnostic(code, field, message))
}

func (r *Report) warn(code Code, field model.Field, message string) {
	r.Warnings = append(r.Warnings, diagnostic(code, field, message))
}

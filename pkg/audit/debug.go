package audit

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Debug audits cfg and logs the summary, every finding and the option-bearing
// fields. It returns the report so callers can keep using it.
func Debug(ctx context.Context, logger *slog.Logger, cfg model.FormConfig) Report {
	report := Audit(cfg)
	if logger == nil {
		return report
	}
	logger = logger.With(slog.String("form", cfg.ID))

	s := report.Summary
	logger.InfoContext(ctx, "form summary",
		slog.Int("total_fields", s.TotalFields),
		slog.Int("total_sections", s.TotalSections),
		slog.Any("field_type_count", s.FieldTypeCount),
		slog.Int("fields_with_options", s.FieldsWithOptions),
		slog.Float64("average_options_per_field", s.AverageOptionsPerField),
	)
	for _, issue := range report.Issues {
		logger.ErrorContext(ctx, issue.Message, diagnosticAttrs(issue)...)
	}
	for _, warning := range report.Warnings {
		logger.WarnContext(ctx, warning.Message, diagnosticAttrs(warning)...)
	}
	for _, field := range model.Flatten(cfg) {
		if !field.Type.HasOptions() {
			continue
		}
		options := Options(field)
		logger.DebugContext(ctx, "option field",
			slog.String("key", field.Key),
			slog.String("type", string(field.Type)),
			slog.String("label", field.Label),
			slog.Any("options", options),
			slog.Int("option_count", len(options)),
		)
	}
	return report
}

func diagnosticAttrs(diag Diagnostic) []any {
	return []any{
		slog.String("code", string(diag.Code)),
		slog.String("field_key", diag.FieldKey),
		slog.String("field_type", diag.FieldType),
	}
}

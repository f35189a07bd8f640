package main

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/logging"
	"github.com/goliatone/go-formbuilder/pkg/audit"
)

// exitIssues is the status returned when a form has audit issues or a
// submission fails validation.
const exitIssues = 2

var (
	auditFormat         string
	auditFailOnWarnings bool
)

var auditCmd = &cobra.Command{
	Use:   "audit <form>",
	Short: "Report structural problems in a form",
	Long: `Audit a form configuration for missing or duplicated options, empty
option values, unknown field types, missing labels and duplicate keys.

The JSON report carries isValid, issues, warnings and a summary. The command
exits with status 2 when the report has issues.

Examples:
  formgen-cli audit contact.yaml
  formgen-cli audit contact.yaml --format=text
  formgen-cli audit contact.yaml --fail-on-warnings`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditFormat, "format", "json", "Output format (json, text)")
	auditCmd.Flags().BoolVar(&auditFailOnWarnings, "fail-on-warnings", false, "Also exit non-zero when the report has warnings")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadForm(cmd, args[0])
	if err != nil {
		return err
	}

	var report audit.Report
	switch auditFormat {
	case "text":
		out := logging.New(cmd.OutOrStdout(), slog.LevelDebug, logging.FormatText)
		report = audit.Debug(withContext(cmd), out, cfg)
	case "json":
		report = audit.Audit(cfg)
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := writeOutput(cmd, "", data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", auditFormat)
	}

	logger.Info("audit finished",
		slog.String("form", cfg.ID),
		slog.Int("issues", len(report.Issues)),
		slog.Int("warnings", len(report.Warnings)),
	)
	if report.HasIssues() {
		return &exitError{code: exitIssues}
	}
	if auditFailOnWarnings && len(report.Warnings) > 0 {
		return &exitError{code: exitIssues}
	}
	return nil
}

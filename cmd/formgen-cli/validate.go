package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

var validateData string

var validateCmd = &cobra.Command{
	Use:   "validate <form> --data <values>",
	Short: "Check submitted values against a form",
	Long: `Validate a submission against every field of a form.

The values file is a JSON or YAML object keyed by field key. Failures are
printed as an error payload and the command exits with status 2.

Examples:
  formgen-cli validate contact.yaml --data=submission.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateData, "data", "d", "", "Submitted values (JSON or YAML object)")
	_ = validateCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadForm(cmd, args[0])
	if err != nil {
		return err
	}
	values, err := readValues(validateData)
	if err != nil {
		return err
	}

	result := validation.ValidateSubmission(cfg, values)
	if result.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), "Submission is valid")
		return nil
	}

	payload := render.PayloadFromResult(result)
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode errors: %w", err)
	}
	if err := writeOutput(cmd, "", data); err != nil {
		return err
	}
	logger.Info("submission rejected", slog.String("form", cfg.ID), slog.Any("fields", result.Order))
	return &exitError{code: exitIssues}
}

func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	values := map[string]any{}
	if model.FormatFromPath(path) == model.FormatYAML {
		err = yaml.Unmarshal(data, &values)
	} else {
		err = json.Unmarshal(data, &values)
	}
	if err != nil {
		return nil, fmt.Errorf("decode values %s: %w", path, err)
	}
	return values, nil
}

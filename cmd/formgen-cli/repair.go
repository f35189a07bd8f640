package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/audit"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	repairOutput string
	repairFormat string
	repairUUID   bool
)

var repairCmd = &cobra.Command{
	Use:   "repair <form>",
	Short: "Fix option lists, labels and keys in a form",
	Long: `Repair a form configuration and print the result.

Repair fills missing option lists with placeholders, drops empty and duplicate
option values, derives missing labels from keys and synthesizes missing keys.
The input file is never modified in place unless --output names it.

Examples:
  formgen-cli repair broken.json
  formgen-cli repair broken.json --format=yaml --output=fixed.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVarP(&repairOutput, "output", "o", "", "Output file (stdout if empty)")
	repairCmd.Flags().StringVar(&repairFormat, "format", "", "Output format: json or yaml (default from --output, else json)")
	repairCmd.Flags().BoolVar(&repairUUID, "uuid-keys", false, "Synthesize missing keys from UUIDs instead of timestamps")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := loadForm(cmd, args[0])
	if err != nil {
		return err
	}

	var opts []audit.RepairOption
	if repairUUID {
		opts = append(opts, audit.WithKeyGenerator(model.UUIDKeys()))
	}
	before := audit.Audit(cfg)
	repaired := audit.Repair(cfg, opts...)
	after := audit.Audit(repaired)
	logger.Info("form repaired",
		slog.String("form", cfg.ID),
		slog.Int("issues_before", len(before.Issues)),
		slog.Int("issues_after", len(after.Issues)),
	)

	format := model.Format(repairFormat)
	if format == "" {
		format = model.FormatJSON
		if repairOutput != "" {
			format = model.FormatFromPath(repairOutput)
		}
	}
	data, err := model.Encode(repaired, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, repairOutput, data)
}

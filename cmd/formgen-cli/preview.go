package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

var (
	previewFormat   string
	previewPrefill  string
	previewSections []string
	previewKeys     []string
	previewOutput   string
)

var previewCmd = &cobra.Command{
	Use:   "preview <form>",
	Short: "Fill in a form interactively in the terminal",
	Long: `Preview a form by answering its fields in the terminal.

Every answer is checked against the field's rules and asked again until it
passes. The collected values are printed when the form is complete.

Examples:
  formgen-cli preview contact.yaml
  formgen-cli preview contact.yaml --format=pretty --prefill=draft.json
  formgen-cli preview contact.yaml --section=billing`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewFormat, "format", string(tui.OutputFormatJSON), "Output format (json, form, pretty)")
	previewCmd.Flags().StringVar(&previewPrefill, "prefill", "", "Default answers (JSON or YAML object)")
	previewCmd.Flags().StringSliceVar(&previewSections, "section", nil, "Only ask fields of these sections")
	previewCmd.Flags().StringSliceVar(&previewKeys, "key", nil, "Only ask these field keys")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "Output file (stdout if empty)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadForm(cmd, args[0])
	if err != nil {
		return err
	}

	opts := render.RenderOptions{
		Subset: render.FieldSubset{Sections: previewSections, Keys: previewKeys},
	}
	if previewPrefill != "" {
		if opts.Values, err = readValues(previewPrefill); err != nil {
			return err
		}
	}

	gen := newOrchestrator(nil)
	session := tui.New(
		tui.WithOutput(cmd.ErrOrStderr()),
		tui.WithOutputFormat(tui.OutputFormat(previewFormat)),
		tui.WithWidgets(gen.WidgetRegistry()),
		tui.WithLogger(logger),
	)
	if err := gen.Registry().Register(session); err != nil {
		return err
	}

	output, err := gen.Generate(withContext(cmd), orchestrator.Request{
		Config:        &cfg,
		Renderer:      session.Name(),
		RenderOptions: opts,
	})
	if errors.Is(err, tui.ErrAborted) {
		return &exitError{code: 130, msg: "Preview aborted"}
	}
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return writeOutput(cmd, previewOutput, output)
}

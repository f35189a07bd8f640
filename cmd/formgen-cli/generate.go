package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/themes"
)

var (
	generateTarget  string
	generateAll     bool
	generateOutput  string
	generateNoTheme bool
)

// targetExtensions names the file extension written for each target by
// generate --all.
var targetExtensions = map[string]string{
	"html":    ".html",
	"vue":     ".vue",
	"react":   ".tsx",
	"flutter": ".dart",
	"json":    ".json",
	"yaml":    ".yaml",
	"openapi": ".openapi.json",
}

var generateCmd = &cobra.Command{
	Use:   "generate <form>",
	Short: "Generate source code for a form",
	Long: `Generate source code for a form configuration.

The target defaults to the configured renderer. With --all every registered
target is generated and --output names a directory.

Examples:
  formgen-cli generate contact.yaml
  formgen-cli generate contact.yaml --target=react --output=ContactForm.tsx
  formgen-cli generate contact.json --all --output=build/`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateTarget, "target", "t", "", "Target renderer (see 'targets')")
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "Generate every registered target")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file, or directory with --all (stdout if empty)")
	generateCmd.Flags().BoolVar(&generateNoTheme, "no-theme", false, "Ignore the persisted theme state")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := withContext(cmd)
	cfg, err := loadForm(cmd, args[0])
	if err != nil {
		return err
	}

	var store *themes.Store
	if !generateNoTheme {
		var closeStore func() error
		if store, closeStore, err = openStore(ctx); err != nil {
			return err
		}
		defer closeStore()
	}
	gen := newOrchestrator(store)
	req := orchestrator.Request{Config: &cfg, Renderer: generateTarget}

	if !generateAll {
		output, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		return writeOutput(cmd, generateOutput, output)
	}

	if generateOutput == "" {
		return fmt.Errorf("--all requires --output to name a directory")
	}
	outputs, err := gen.GenerateAll(ctx, req)
	if err != nil {
		return err
	}
	base := outputBase(cfg.ID)
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ext, ok := targetExtensions[name]
		if !ok {
			ext = "." + name
		}
		path := filepath.Join(generateOutput, base+ext)
		if err := writeOutput(cmd, path, outputs[name]); err != nil {
			return err
		}
		logger.Info("target generated", slog.String("target", name), slog.String("path", path))
	}
	return nil
}

// outputBase reduces a form id to a file name that stays inside the output
// directory.
func outputBase(id string) string {
	base := filepath.Base(filepath.FromSlash(strings.ReplaceAll(id, "\\", "/")))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "form"
	}
	return base
}

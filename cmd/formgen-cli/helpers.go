package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/themes"
)

// maxDocumentBytes caps form documents read from disk.
const maxDocumentBytes = 8 << 20

// formSource maps a path argument onto a schema source. "-" reads stdin.
func formSource(cmd *cobra.Command, path string) (schema.Source, error) {
	if path != "-" {
		return schema.SourceFromFile(path), nil
	}
	data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return schema.SourceFromBytes("stdin", data), nil
}

// loadForm reads and decodes the form document at path.
func loadForm(cmd *cobra.Command, path string) (model.FormConfig, error) {
	src, err := formSource(cmd, path)
	if err != nil {
		return model.FormConfig{}, err
	}
	loader := formbuilder.NewLoader(schema.WithMaxBytes(maxDocumentBytes))
	doc, err := loader.Load(withContext(cmd), src)
	if err != nil {
		return model.FormConfig{}, err
	}
	return doc.Config()
}

// newOrchestrator applies the configured defaults, then the extra options.
func newOrchestrator(store *themes.Store, extra ...orchestrator.Option) *orchestrator.Orchestrator {
	options := []orchestrator.Option{
		orchestrator.WithDefaultRenderer(appConfig.Renderer),
		orchestrator.WithRepair(appConfig.Repair),
		orchestrator.WithStrict(appConfig.Strict),
		orchestrator.WithLogger(logger),
	}
	if store != nil {
		options = append(options, formbuilder.WithThemeStore(store))
	}
	return orchestrator.New(append(options, extra...)...)
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			_, err := io.WriteString(out, "\n")
			return err
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

func withContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

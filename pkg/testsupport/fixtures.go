package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// MustLoadForm reads a form configuration fixture. The format follows the
// file extension.
func MustLoadForm(t *testing.T, path string) model.FormConfig {
	t.Helper()

	cfg, err := LoadForm(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return cfg
}

// LoadForm reads a form configuration fixture, returning an error for callers
// managing setup outside of *testing.T.
func LoadForm(path string) (model.FormConfig, error) {
	if path == "" {
		return model.FormConfig{}, errors.New("testsupport: form path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FormConfig{}, fmt.Errorf("testsupport: read form: %w", err)
	}
	cfg, err := model.Decode(data, model.FormatFromPath(path))
	if err != nil {
		return model.FormConfig{}, fmt.Errorf("testsupport: decode form: %w", err)
	}
	return cfg, nil
}

// WriteForm writes a form golden in canonical JSON when UPDATE_GOLDENS is
// enabled.
func WriteForm(t *testing.T, path string, cfg model.FormConfig) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := model.MarshalIndent(cfg)
	if err != nil {
		t.Fatalf("marshal form: %v", err)
	}
	writeFile(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

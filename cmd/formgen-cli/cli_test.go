package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-formbuilder/pkg/audit"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

// resetFlags restores every flag to its default so tests do not leak state
// through the package-level command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// workspace writes a config using the file driver under a temp directory and
// returns the directory with the --config argument pair.
func workspace(t *testing.T) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	cfg := "theme:\n  storage:\n    driver: file\n    path: " + filepath.ToSlash(filepath.Join(dir, "state")) + "\nlogging:\n  format: discard\n"
	path := filepath.Join(dir, "formbuilder.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir, []string{"--config", path}
}

func writeForm(t *testing.T, dir, name string, cfg model.FormConfig) string {
	t.Helper()
	data, err := model.MarshalIndent(cfg)
	if err != nil {
		t.Fatalf("marshal form: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write form: %v", err)
	}
	return path
}

func contactForm() model.FormConfig {
	email := model.NewField("email", model.FieldTypeEmail, "Email")
	email.Required = true
	return model.FormConfig{
		ID:       "contact",
		Title:    "Contact",
		Sections: []model.Entry{model.FieldEntry(email)},
	}
}

func exitCode(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return -1
}

func TestGenerate_SingleTarget(t *testing.T) {
	dir, cfgArgs := workspace(t)
	form := writeForm(t, dir, "contact.json", contactForm())

	out, err := execute(t, append(cfgArgs, "generate", form, "--target", "json", "--no-theme")...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	cfg, err := model.Decode([]byte(out), model.FormatJSON)
	if err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if cfg.ID != "contact" {
		t.Fatalf("unexpected form id %q", cfg.ID)
	}
}

func TestGenerate_AllTargets(t *testing.T) {
	dir, cfgArgs := workspace(t)
	form := writeForm(t, dir, "contact.json", contactForm())
	outDir := filepath.Join(dir, "build")

	if _, err := execute(t, append(cfgArgs, "generate", form, "--all", "--output", outDir)...); err != nil {
		t.Fatalf("generate --all: %v", err)
	}
	for _, name := range []string{"contact.html", "contact.tsx", "contact.vue", "contact.dart", "contact.json", "contact.yaml", "contact.openapi.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	if _, err := execute(t, append(cfgArgs, "generate", form, "--all")...); err == nil {
		t.Fatal("expected --all without --output to fail")
	}
}

func TestGenerate_AllKeepsFilesInsideOutput(t *testing.T) {
	dir, cfgArgs := workspace(t)
	cfg := contactForm()
	cfg.ID = "../escape"
	form := writeForm(t, dir, "escape.json", cfg)
	outDir := filepath.Join(dir, "build")

	if _, err := execute(t, append(cfgArgs, "generate", form, "--all", "--output", outDir, "--no-theme")...); err != nil {
		t.Fatalf("generate --all: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "escape.json")); err != nil {
		t.Fatalf("expected output inside the directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.html")); err == nil {
		t.Fatal("output escaped the --output directory")
	}
}

func TestOutputBase(t *testing.T) {
	tests := map[string]string{
		"contact":   "contact",
		"../escape": "escape",
		`..\win\x`:  "x",
		"/":         "form",
		"..":        "form",
		"":          "form",
	}
	for id, want := range tests {
		if got := outputBase(id); got != want {
			t.Errorf("outputBase(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestAudit_ExitsOnIssues(t *testing.T) {
	dir, cfgArgs := workspace(t)
	broken := writeForm(t, dir, "broken.json", testsupport.MissingOptionsForm())

	out, err := execute(t, append(cfgArgs, "audit", broken)...)
	if code := exitCode(err); code != exitIssues {
		t.Fatalf("expected exit %d, got %v", exitIssues, err)
	}
	var report audit.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, out)
	}
	if report.IsValid || report.Count(audit.MissingOptions) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}

	healthy := writeForm(t, dir, "contact.json", contactForm())
	if _, err := execute(t, append(cfgArgs, "audit", healthy)...); err != nil {
		t.Fatalf("healthy form should pass: %v", err)
	}
}

func TestRepair_WritesFixedForm(t *testing.T) {
	dir, cfgArgs := workspace(t)
	broken := writeForm(t, dir, "broken.json", testsupport.MissingOptionsForm())
	fixed := filepath.Join(dir, "fixed.yaml")

	if _, err := execute(t, append(cfgArgs, "repair", broken, "--output", fixed)...); err != nil {
		t.Fatalf("repair: %v", err)
	}
	data, err := os.ReadFile(fixed)
	if err != nil {
		t.Fatalf("read repaired form: %v", err)
	}
	cfg, err := model.Decode(data, model.FormatYAML)
	if err != nil {
		t.Fatalf("decode repaired form: %v", err)
	}
	if report := audit.Audit(cfg); report.Count(audit.MissingOptions) != 0 {
		t.Fatalf("repair left missing options: %+v", report.Issues)
	}
}

func TestValidate_Submission(t *testing.T) {
	dir, cfgArgs := workspace(t)
	form := writeForm(t, dir, "contact.json", contactForm())

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"email": ""}`), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, append(cfgArgs, "validate", form, "--data", bad)...)
	if code := exitCode(err); code != exitIssues {
		t.Fatalf("expected exit %d, got %v", exitIssues, err)
	}
	var payload render.ErrorPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("payload is not JSON: %v\n%s", err, out)
	}
	if len(payload.Fields["email"]) != 1 {
		t.Fatalf("expected an email error, got %+v", payload)
	}

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("email: jane@example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, append(cfgArgs, "validate", form, "--data", good)...)
	if err != nil || !strings.Contains(out, "valid") {
		t.Fatalf("expected valid submission, got %v\n%s", err, out)
	}
}

func TestTargets(t *testing.T) {
	_, cfgArgs := workspace(t)
	out, err := execute(t, append(cfgArgs, "targets")...)
	if err != nil {
		t.Fatalf("targets: %v", err)
	}
	for _, name := range []string{"html", "react", "vue", "flutter", "json", "yaml", "openapi"} {
		if !strings.Contains(out, name) {
			t.Errorf("targets output missing %s:\n%s", name, out)
		}
	}
}

func TestTheme_PersistsAcrossCommands(t *testing.T) {
	dir, cfgArgs := workspace(t)

	if _, err := execute(t, append(cfgArgs, "theme", "preset", "modern-preset")...); err != nil {
		t.Fatalf("apply preset: %v", err)
	}
	css, err := execute(t, append(cfgArgs, "theme", "css")...)
	if err != nil {
		t.Fatalf("css: %v", err)
	}
	if !strings.Contains(css, "--theme-primary: #8b5cf6;") {
		t.Fatalf("preset not persisted:\n%s", css)
	}

	form := writeForm(t, dir, "contact.json", contactForm())
	html, err := execute(t, append(cfgArgs, "generate", form, "--target", "html")...)
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}
	if !strings.Contains(html, "--theme-primary: #8b5cf6;") {
		t.Fatalf("html output does not use the stored theme")
	}

	if _, err := execute(t, append(cfgArgs, "theme", "apply", "--history", "0")...); err != nil {
		t.Fatalf("restore history: %v", err)
	}
	classes, err := execute(t, append(cfgArgs, "theme", "css", "--classes")...)
	if err != nil {
		t.Fatalf("classes: %v", err)
	}
	if !strings.Contains(classes, "theme-dark") {
		t.Fatalf("expected default dark theme restored, got %q", classes)
	}
}

func TestTheme_RandomAndApplyFile(t *testing.T) {
	dir, cfgArgs := workspace(t)

	out, err := execute(t, append(cfgArgs, "theme", "random", "--level", "conservative")...)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if !strings.Contains(out, `"id": "random-theme-`) {
		t.Fatalf("unexpected random output:\n%s", out)
	}
	if _, err := execute(t, append(cfgArgs, "theme", "random", "--level", "wild")...); err == nil {
		t.Fatal("expected unknown level to fail")
	}

	file := filepath.Join(dir, "layout.yaml")
	body := "layout:\n  id: wide\n  name: Wide\n  type: single-column\n  formLayout:\n    maxWidth: 1200px\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, append(cfgArgs, "theme", "apply", file, "--save")...); err != nil {
		t.Fatalf("apply file: %v", err)
	}
	show, err := execute(t, append(cfgArgs, "theme", "show")...)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(show, `"maxWidth": "1200px"`) || !strings.Contains(show, `"customLayouts": [`) {
		t.Fatalf("applied layout not visible:\n%s", show)
	}

	if _, err := execute(t, append(cfgArgs, "theme", "apply")...); err == nil {
		t.Fatal("expected apply without input to fail")
	}
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/themes"
)

var (
	themeRandomLayout bool
	themeRandomLevel  string
	themeRandomDryRun bool
	themeApplyHistory int
	themeApplySave    bool
	themeCSSClasses   bool
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the persisted theme and layout",
	Long: `Inspect and change the theme and layout used by the html target.

State is stored with the driver configured under theme.storage (memory, file
or sqlite) and keeps the last 10 committed pairs as history.`,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current theme state as JSON",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

var themeRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate and commit a random theme or layout",
	Long: `Generate a random theme (or layout with --layout) and commit it.

The randomization level comes from --level, falling back to the configured
theme.randomization.

Examples:
  formgen-cli theme random
  formgen-cli theme random --layout --level=creative
  formgen-cli theme random --dry-run`,
	Args: cobra.NoArgs,
	RunE: runThemeRandom,
}

var themePresetCmd = &cobra.Command{
	Use:   "preset [id]",
	Short: "List presets, or apply the preset with the given id",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemePreset,
}

var themeApplyCmd = &cobra.Command{
	Use:   "apply [file]",
	Short: "Commit a theme/layout file or a history entry",
	Long: `Commit the theme and layout described by a JSON or YAML file, or restore a
history entry with --history.

The file holds a "theme" object, a "layout" object or both.

Examples:
  formgen-cli theme apply brand.yaml --save
  formgen-cli theme apply --history=2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemeApply,
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Commit the default theme and layout",
	Args:  cobra.NoArgs,
	RunE:  runThemeReset,
}

var themeCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the CSS custom properties of the current theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeCSS,
}

func init() {
	themeRandomCmd.Flags().BoolVar(&themeRandomLayout, "layout", false, "Generate a layout instead of a theme")
	themeRandomCmd.Flags().StringVar(&themeRandomLevel, "level", "", "Randomization level (conservative, moderate, creative)")
	themeRandomCmd.Flags().BoolVar(&themeRandomDryRun, "dry-run", false, "Print the result without committing it")
	themeApplyCmd.Flags().IntVar(&themeApplyHistory, "history", -1, "Restore the history entry at this index (0 is the oldest)")
	themeApplyCmd.Flags().BoolVar(&themeApplySave, "save", false, "Also add the applied values to the custom library")
	themeCSSCmd.Flags().BoolVar(&themeCSSClasses, "classes", false, "Print the root class list instead")

	themeCmd.AddCommand(themeShowCmd, themeRandomCmd, themePresetCmd, themeApplyCmd, themeResetCmd, themeCSSCmd)
	rootCmd.AddCommand(themeCmd)
}

func runThemeShow(cmd *cobra.Command, _ []string) error {
	store, closeStore, err := openStore(withContext(cmd))
	if err != nil {
		return err
	}
	defer closeStore()
	return printJSON(cmd, store.Snapshot())
}

func runThemeRandom(cmd *cobra.Command, _ []string) error {
	level := themes.Level(themeRandomLevel)
	if level == "" {
		level = themes.Level(appConfig.Theme.Randomization)
	}
	if !level.Valid() {
		return fmt.Errorf("unknown randomization level %q", level)
	}

	store, closeStore, err := openStore(withContext(cmd))
	if err != nil {
		return err
	}
	defer closeStore()

	if store.Settings().RandomizationLevel != level {
		store.UpdateSettings(themes.SettingsPatch{RandomizationLevel: &level})
	}

	if themeRandomLayout {
		layout := store.GenerateRandomLayout()
		if !themeRandomDryRun {
			store.SetLayout(layout)
		}
		logger.Info("random layout generated", slog.String("id", layout.ID), slog.String("level", string(level)))
		return printJSON(cmd, layout)
	}
	generated := store.GenerateRandomTheme()
	if !themeRandomDryRun {
		store.SetTheme(generated)
	}
	logger.Info("random theme generated", slog.String("id", generated.ID), slog.String("level", string(level)))
	return printJSON(cmd, generated)
}

func runThemePreset(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(withContext(cmd))
	if err != nil {
		return err
	}
	defer closeStore()

	if len(args) == 1 {
		if !store.ApplyPreset(args[0]) {
			return fmt.Errorf("unknown preset %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied preset %s\n", args[0])
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTAGS")
	for _, preset := range store.Presets() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", preset.ID, preset.Name, preset.Category, strings.Join(preset.Tags, ","))
	}
	return w.Flush()
}

// themeFile is the document accepted by theme apply.
type themeFile struct {
	Theme  *themes.ThemeConfig  `json:"theme,omitempty"`
	Layout *themes.LayoutConfig `json:"layout,omitempty"`
}

func runThemeApply(cmd *cobra.Command, args []string) error {
	if (len(args) == 1) == (themeApplyHistory >= 0) {
		return errors.New("pass either a file or --history")
	}

	store, closeStore, err := openStore(withContext(cmd))
	if err != nil {
		return err
	}
	defer closeStore()

	if themeApplyHistory >= 0 {
		if !store.RestoreFromHistory(themeApplyHistory) {
			return fmt.Errorf("no history entry at index %d", themeApplyHistory)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored history entry %d\n", themeApplyHistory)
		return nil
	}

	file, err := readThemeFile(args[0])
	if err != nil {
		return err
	}
	if file.Theme == nil && file.Layout == nil {
		return fmt.Errorf("%s holds neither a theme nor a layout", args[0])
	}
	if file.Theme != nil {
		store.SetTheme(*file.Theme)
		if themeApplySave {
			store.SaveCustomTheme(*file.Theme)
		}
	}
	if file.Layout != nil {
		store.SetLayout(*file.Layout)
		if themeApplySave {
			store.SaveCustomLayout(*file.Layout)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", args[0])
	return nil
}

func runThemeReset(cmd *cobra.Command, _ []string) error {
	store, closeStore, err := openStore(withContext(cmd))
	if err != nil {
		return err
	}
	defer closeStore()
	store.ResetToDefault()
	fmt.Fprintln(cmd.OutOrStdout(), "Theme reset to default")
	return nil
}

func runThemeCSS(cmd *cobra.Command, _ []string) error {
	store, closeStore, err := openStore(withContext(cmd))
	if err != nil {
		return err
	}
	defer closeStore()

	current, layout := store.CurrentTheme(), store.CurrentLayout()
	if themeCSSClasses {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(themes.RootClasses(current, layout), " "))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), themes.Stylesheet(current, layout))
	return nil
}

// readThemeFile decodes JSON directly and routes YAML through a generic value
// so the JSON field names apply to both.
func readThemeFile(path string) (themeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return themeFile{}, fmt.Errorf("read theme file: %w", err)
	}
	if model.FormatFromPath(path) == model.FormatYAML {
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return themeFile{}, fmt.Errorf("decode theme file %s: %w", path, err)
		}
		if data, err = json.Marshal(generic); err != nil {
			return themeFile{}, fmt.Errorf("normalise theme file %s: %w", path, err)
		}
	}
	var file themeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return themeFile{}, fmt.Errorf("decode theme file %s: %w", path, err)
	}
	return file, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(cmd, "", data)
}

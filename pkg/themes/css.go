package themes

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// RootClassesToken is the renderer token carrying the root class list.
const RootClassesToken = "root-classes"

// ManifestName is the go-theme name under which presets are published.
const ManifestName = "formbuilder"

const manifestVersion = "1.0.0"

// CSSVariables flattens theme and layout into the --theme-* and --layout-*
// custom properties.
func CSSVariables(t ThemeConfig, l LayoutConfig) map[string]string {
	return map[string]string{
		"--theme-primary":        t.Colors.Primary,
		"--theme-secondary":      t.Colors.Secondary,
		"--theme-background":     t.Colors.Background,
		"--theme-surface":        t.Colors.Surface,
		"--theme-text-primary":   t.Colors.Text.Primary,
		"--theme-text-secondary": t.Colors.Text.Secondary,
		"--theme-text-muted":     t.Colors.Text.Muted,
		"--theme-border":         t.Colors.Border,
		"--theme-error":          t.Colors.Error,
		"--theme-success":        t.Colors.Success,
		"--theme-warning":        t.Colors.Warning,
		"--theme-info":           t.Colors.Info,

		"--theme-font-family":            t.Typography.FontFamily,
		"--theme-heading-font-size":      t.Typography.Headings.FontSize,
		"--theme-heading-font-weight":    t.Typography.Headings.FontWeight,
		"--theme-heading-letter-spacing": t.Typography.Headings.LetterSpacing,
		"--theme-body-font-size":         t.Typography.Body.FontSize,
		"--theme-body-font-weight":       t.Typography.Body.FontWeight,
		"--theme-body-line-height":       t.Typography.Body.LineHeight,
		"--theme-input-font-size":        t.Typography.Input.FontSize,
		"--theme-input-font-weight":      t.Typography.Input.FontWeight,

		"--theme-spacing-xs": t.Spacing.XS,
		"--theme-spacing-sm": t.Spacing.SM,
		"--theme-spacing-md": t.Spacing.MD,
		"--theme-spacing-lg": t.Spacing.LG,
		"--theme-spacing-xl": t.Spacing.XL,

		"--theme-radius-sm":   t.BorderRadius.SM,
		"--theme-radius-md":   t.BorderRadius.MD,
		"--theme-radius-lg":   t.BorderRadius.LG,
		"--theme-radius-full": t.BorderRadius.Full,

		"--theme-shadow-sm": t.Shadows.SM,
		"--theme-shadow-md": t.Shadows.MD,
		"--theme-shadow-lg": t.Shadows.LG,
		"--theme-shadow-xl": t.Shadows.XL,

		"--layout-max-width":       l.FormLayout.MaxWidth,
		"--layout-padding":         l.FormLayout.Padding,
		"--layout-spacing":         l.FormLayout.Spacing,
		"--layout-field-spacing":   l.FieldLayout.FieldSpacing,
		"--layout-group-spacing":   l.FieldLayout.GroupSpacing,
		"--layout-section-spacing": l.FieldLayout.SectionSpacing,
	}
}

// RootClasses lists the classes a document root carries for the pair.
func RootClasses(t ThemeConfig, l LayoutConfig) []string {
	return []string{
		"layout-" + string(l.Type),
		"label-" + string(l.FieldLayout.LabelPosition),
		"form-align-" + string(l.FormLayout.Alignment),
		"theme-" + string(t.Type),
	}
}

// Stylesheet renders the custom properties as a sorted :root rule.
func Stylesheet(t ThemeConfig, l LayoutConfig) string {
	vars := CSSVariables(t, l)
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// Tokens is CSSVariables without the leading dashes plus the root class
// token, the shape go-theme manifests carry.
func Tokens(t ThemeConfig, l LayoutConfig) map[string]string {
	vars := CSSVariables(t, l)
	tokens := make(map[string]string, len(vars)+1)
	for name, value := range vars {
		tokens[strings.TrimPrefix(name, "--")] = value
	}
	tokens[RootClassesToken] = strings.Join(RootClasses(t, l), " ")
	return tokens
}

// RendererConfig adapts a theme/layout pair for renderers.
func RendererConfig(t ThemeConfig, l LayoutConfig) *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:   t.ID,
		Variant: l.ID,
		Tokens:  Tokens(t, l),
		CSSVars: CSSVariables(t, l),
	}
}

// Manifest publishes presets as a go-theme manifest. The base tokens come
// from the first preset and each preset becomes a variant keyed by its id.
func Manifest(presets []Preset) *theme.Manifest {
	manifest := &theme.Manifest{
		Name:     ManifestName,
		Version:  manifestVersion,
		Variants: make(map[string]theme.Variant, len(presets)),
	}
	for i, preset := range presets {
		tokens := Tokens(preset.Theme, preset.Layout)
		if i == 0 {
			manifest.Tokens = tokens
		}
		manifest.Variants[preset.ID] = theme.Variant{Tokens: tokens}
	}
	return manifest
}

// ManifestRegistrar is satisfied by go-theme registries.
type ManifestRegistrar interface {
	Register(*theme.Manifest) error
}

// RegisterPresets publishes presets into reg.
func RegisterPresets(reg ManifestRegistrar, presets []Preset) error {
	if reg == nil {
		return fmt.Errorf("themes: nil registry")
	}
	if err := reg.Register(Manifest(presets)); err != nil {
		return fmt.Errorf("themes: register presets: %w", err)
	}
	return nil
}

// RendererConfigFromSelection resolves a go-theme selection. Variant tokens
// override manifest tokens and every token except the root class list
// becomes a custom property.
func RendererConfigFromSelection(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	partials := make(map[string]string, len(manifest.Templates))
	for key, value := range manifest.Templates {
		partials[key] = value
	}
	assets := manifest.Assets
	files := make(map[string]string, len(assets.Files))
	for key, value := range assets.Files {
		files[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		for key, value := range variant.Templates {
			partials[key] = value
		}
		for key, value := range variant.Assets.Files {
			files[key] = value
		}
		if variant.Assets.Prefix != "" {
			assets.Prefix = variant.Assets.Prefix
		}
	}

	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		if key == RootClassesToken {
			continue
		}
		vars["--"+key] = value
	}
	prefix := strings.TrimRight(assets.Prefix, "/")
	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  vars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		},
	}
}

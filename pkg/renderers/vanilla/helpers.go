package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/themes"
)

// RootClassesToken is the theme token holding space-separated classes for the
// document body.
const RootClassesToken = themes.RootClassesToken

// themeStylesheetAsset is the asset key resolved through the theme's
// AssetURL to link an external stylesheet.
const themeStylesheetAsset = "html.stylesheet"

func controlID(key string) string {
	return strings.Join(strings.Fields(key), "-")
}

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.ContainsAny(token, `"<>'`) {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

// cssVarsStyle renders vars as a :root rule, sorted by name. Names must start
// with "--"; values containing characters that could end the rule are
// dropped.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if !strings.HasPrefix(key, "--") || strings.ContainsAny(vars[key], "{};<>") {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func themeBodyClass(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}
	return sanitizeClassList(cfg.Tokens[RootClassesToken])
}

func themeStylesheetURL(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(cfg.AssetURL(themeStylesheetAsset))
}

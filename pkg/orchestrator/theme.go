package orchestrator

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/themes"
)

// defaultThemeFallbacks maps partial names to the embedded html templates.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"forms.page":  "templates/page.tmpl",
		"forms.field": "templates/field.tmpl",
	}
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	name, variant := req.ThemeName, req.ThemeVariant
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q/%q: %w", name, variant, err)
	}
	cfg := themes.RendererConfigFromSelection(selection)
	if cfg == nil {
		return nil, nil
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = defaultThemeFallbacks()
	}
	if cfg.Partials == nil {
		cfg.Partials = make(map[string]string, len(fallbacks))
	}
	for key, value := range fallbacks {
		if _, ok := cfg.Partials[key]; !ok {
			cfg.Partials[key] = value
		}
	}
	return cfg, nil
}

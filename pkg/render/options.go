package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the configuration.
type RenderOptions struct {
	// Subset restricts rendering to matching fields. The zero value keeps
	// every field.
	Subset FieldSubset
	// Theme carries resolved presentation tokens. Renderers that emit markup
	// inline Theme.CSSVars; code generators ignore it.
	Theme *theme.RendererConfig
	// Values pre-populates rendered controls keyed by field key.
	Values map[string]any
}

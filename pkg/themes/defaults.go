package themes

const baseFontStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`

var (
	defaultSpacing = Spacing{XS: "0.25rem", SM: "0.5rem", MD: "1rem", LG: "1.5rem", XL: "2rem"}
	defaultRadius  = Radius{SM: "0.25rem", MD: "0.5rem", LG: "0.75rem", Full: "9999px"}
	lightShadows   = Shadows{
		SM: "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
		MD: "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
		LG: "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
		XL: "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
	}
	defaultBreakpoints = Breakpoints{Mobile: "640px", Tablet: "768px", Desktop: "1024px"}
)

func darkColors(background string) Colors {
	return Colors{
		Primary:    "#60a5fa",
		Secondary:  "#94a3b8",
		Background: background,
		Surface:    "#1f2937",
		Text:       TextColors{Primary: "#f9fafb", Secondary: "#d1d5db", Muted: "#6b7280"},
		Border:     "#374151",
		Error:      "#f87171",
		Success:    "#34d399",
		Warning:    "#fbbf24",
		Info:       "#60a5fa",
	}
}

func interTypography() Typography {
	return Typography{
		Headings:   HeadingType{FontSize: "1.5rem", FontWeight: "600", LetterSpacing: "-0.025em"},
		Body:       BodyType{FontSize: "1rem", FontWeight: "400", LineHeight: "1.5"},
		Input:      InputType{FontSize: "1rem", FontWeight: "400"},
		FontFamily: "Inter, " + baseFontStack,
	}
}

// DefaultTheme is the theme a fresh store starts with.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		ID:           "default-dark",
		Name:         "Default Dark Theme",
		Type:         ThemeDark,
		Colors:       darkColors("#0a0a0a"),
		Typography:   interTypography(),
		Spacing:      defaultSpacing,
		BorderRadius: defaultRadius,
		Shadows:      lightShadows,
	}
}

func DarkTheme() ThemeConfig {
	return ThemeConfig{
		ID:           "dark",
		Name:         "Dark Theme",
		Type:         ThemeDark,
		Colors:       darkColors("#111827"),
		Typography:   interTypography(),
		Spacing:      defaultSpacing,
		BorderRadius: defaultRadius,
		Shadows: Shadows{
			SM: "0 1px 2px 0 rgba(0, 0, 0, 0.2)",
			MD: "0 4px 6px -1px rgba(0, 0, 0, 0.3), 0 2px 4px -1px rgba(0, 0, 0, 0.2)",
			LG: "0 10px 15px -3px rgba(0, 0, 0, 0.3), 0 4px 6px -2px rgba(0, 0, 0, 0.2)",
			XL: "0 20px 25px -5px rgba(0, 0, 0, 0.3), 0 10px 10px -5px rgba(0, 0, 0, 0.2)",
		},
	}
}

func ModernTheme() ThemeConfig {
	return ThemeConfig{
		ID:   "modern",
		Name: "Modern Theme",
		Type: ThemeLight,
		Colors: Colors{
			Primary:    "#8b5cf6",
			Secondary:  "#6b7280",
			Background: "#fafafa",
			Surface:    "#ffffff",
			Text:       TextColors{Primary: "#111827", Secondary: "#374151", Muted: "#9ca3af"},
			Border:     "#e5e7eb",
			Error:      "#ef4444",
			Success:    "#10b981",
			Warning:    "#f59e0b",
			Info:       "#8b5cf6",
		},
		Typography: Typography{
			Headings:   HeadingType{FontSize: "1.5rem", FontWeight: "700", LetterSpacing: "-0.025em"},
			Body:       BodyType{FontSize: "1rem", FontWeight: "400", LineHeight: "1.6"},
			Input:      InputType{FontSize: "1rem", FontWeight: "500"},
			FontFamily: "Poppins, Inter, " + baseFontStack,
		},
		Spacing:      defaultSpacing,
		BorderRadius: Radius{SM: "0.5rem", MD: "0.75rem", LG: "1rem", Full: "9999px"},
		Shadows: Shadows{
			SM: "0 1px 3px 0 rgba(0, 0, 0, 0.1)",
			MD: "0 4px 6px -1px rgba(0, 0, 0, 0.15), 0 2px 4px -1px rgba(0, 0, 0, 0.1)",
			LG: "0 10px 15px -3px rgba(0, 0, 0, 0.15), 0 4px 6px -2px rgba(0, 0, 0, 0.1)",
			XL: "0 20px 25px -5px rgba(0, 0, 0, 0.15), 0 10px 10px -5px rgba(0, 0, 0, 0.1)",
		},
	}
}

// DefaultLayout is the layout a fresh store starts with.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		ID:   "default",
		Name: "Default Layout",
		Type: LayoutSingleColumn,
		FormLayout: FormLayout{
			MaxWidth: "100%", Padding: "2rem", Spacing: "1.5rem", Alignment: AlignCenter,
		},
		FieldLayout: FieldLayout{
			LabelPosition: LabelTop, FieldSpacing: "1rem", GroupSpacing: "1.5rem", SectionSpacing: "2rem",
		},
		Responsive: Responsive{
			Breakpoints:          defaultBreakpoints,
			ColumnsPerBreakpoint: Columns{Mobile: 1, Tablet: 1, Desktop: 1},
		},
	}
}

func TwoColumnLayout() LayoutConfig {
	layout := DefaultLayout()
	layout.ID = "two-column"
	layout.Name = "Two Column Layout"
	layout.Type = LayoutTwoColumn
	layout.FormLayout.MaxWidth = "900px"
	layout.Responsive.ColumnsPerBreakpoint = Columns{Mobile: 1, Tablet: 2, Desktop: 2}
	return layout
}

func CardLayout() LayoutConfig {
	return LayoutConfig{
		ID:   "card",
		Name: "Card Layout",
		Type: LayoutCard,
		FormLayout: FormLayout{
			MaxWidth: "700px", Padding: "3rem", Spacing: "2rem", Alignment: AlignCenter,
		},
		FieldLayout: FieldLayout{
			LabelPosition: LabelTop, FieldSpacing: "1.5rem", GroupSpacing: "2rem", SectionSpacing: "2.5rem",
		},
		Responsive: Responsive{
			Breakpoints:          defaultBreakpoints,
			ColumnsPerBreakpoint: Columns{Mobile: 1, Tablet: 1, Desktop: 1},
		},
	}
}

// DefaultPresets returns the built-in preset catalogue.
func DefaultPresets() []Preset {
	return []Preset{
		{
			ID: "default-preset", Name: "Default", Description: "Clean and professional default theme",
			Theme: DefaultTheme(), Layout: DefaultLayout(),
			Category: "modern", Tags: []string{"clean", "professional", "default"},
		},
		{
			ID: "dark-preset", Name: "Dark Mode", Description: "Dark theme for better focus",
			Theme: DarkTheme(), Layout: DefaultLayout(),
			Category: "dark", Tags: []string{"dark", "focus", "modern"},
		},
		{
			ID: "modern-preset", Name: "Modern Purple", Description: "Modern theme with purple accents",
			Theme: ModernTheme(), Layout: DefaultLayout(),
			Category: "modern", Tags: []string{"modern", "purple", "stylish"},
		},
		{
			ID: "two-column-preset", Name: "Two Column", Description: "Efficient two-column layout",
			Theme: DefaultTheme(), Layout: TwoColumnLayout(),
			Category: "modern", Tags: []string{"two-column", "efficient", "wide"},
		},
		{
			ID: "card-preset", Name: "Card Style", Description: "Elegant card-based layout",
			Theme: DefaultTheme(), Layout: CardLayout(),
			Category: "modern", Tags: []string{"card", "elegant", "spacious"},
		},
	}
}

// FindPreset looks a preset up by id.
func FindPreset(presets []Preset, id string) (Preset, bool) {
	for _, preset := range presets {
		if preset.ID == id {
			return preset.clone(), true
		}
	}
	return Preset{}, false
}

func DefaultSettings() Settings {
	return Settings{
		AutoApply:          false,
		PreviewMode:        true,
		PersistSettings:    true,
		AISuggestions:      false,
		RandomizationLevel: LevelModerate,
	}
}

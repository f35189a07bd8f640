package themes

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

type palette struct {
	primaries      []string
	backgrounds    []string
	surfaces       []string
	textPrimary    []string
	textSecondary  []string
	textMuted      []string
	fonts          []string
	headingSizes   []string
	headingWeights []string
	spacing        []float64
	radii          []Radius
}

var palettes = map[Level]palette{
	LevelConservative: {
		primaries:      []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#06b6d4", "#84cc16"},
		backgrounds:    []string{"#ffffff", "#f8fafc", "#fafafa"},
		surfaces:       []string{"#f1f5f9", "#f8fafc", "#ffffff"},
		textPrimary:    []string{"#1e293b", "#111827", "#374151"},
		textSecondary:  []string{"#475569", "#6b7280", "#9ca3af"},
		textMuted:      []string{"#94a3b8", "#d1d5db", "#e5e7eb"},
		fonts:          []string{"Inter", "Roboto", "Open Sans"},
		headingSizes:   []string{"1.25rem", "1.5rem", "1.75rem"},
		headingWeights: []string{"500", "600"},
		spacing:        []float64{0.8, 1.0, 1.2},
		radii: []Radius{
			{SM: "0.25rem", MD: "0.5rem", LG: "0.75rem", Full: "9999px"},
			{SM: "0.125rem", MD: "0.25rem", LG: "0.5rem", Full: "9999px"},
		},
	},
	LevelModerate: {
		primaries:      []string{"#06b6d4", "#84cc16", "#f97316", "#ec4899", "#6366f1", "#14b8a6", "#a3e635"},
		backgrounds:    []string{"#ffffff", "#fafafa", "#f9fafb"},
		surfaces:       []string{"#f1f5f9", "#f3f4f6", "#ffffff"},
		textPrimary:    []string{"#111827", "#1f2937", "#374151"},
		textSecondary:  []string{"#4b5563", "#6b7280", "#9ca3af"},
		textMuted:      []string{"#9ca3af", "#d1d5db", "#e5e7eb"},
		fonts:          []string{"Poppins", "Nunito", "Source Sans Pro"},
		headingSizes:   []string{"1.5rem", "1.75rem", "2rem"},
		headingWeights: []string{"600", "700"},
		spacing:        []float64{0.6, 1.0, 1.4},
		radii: []Radius{
			{SM: "0.5rem", MD: "0.75rem", LG: "1rem", Full: "9999px"},
			{SM: "0.25rem", MD: "0.5rem", LG: "0.75rem", Full: "9999px"},
			{SM: "0.125rem", MD: "0.25rem", LG: "0.5rem", Full: "9999px"},
		},
	},
	LevelCreative: {
		primaries:      []string{"#14b8a6", "#a3e635", "#fb7185", "#fbbf24", "#8b5cf6", "#f472b6", "#06b6d4"},
		backgrounds:    []string{"#fefefe", "#fdfdfd", "#fcfcfc"},
		surfaces:       []string{"#f0f9ff", "#f0fdf4", "#fef2f2"},
		textPrimary:    []string{"#0f172a", "#111827", "#1f2937"},
		textSecondary:  []string{"#334155", "#4b5563", "#6b7280"},
		textMuted:      []string{"#64748b", "#9ca3af", "#d1d5db"},
		fonts:          []string{"Montserrat", "Playfair Display", "Oswald"},
		headingSizes:   []string{"1.75rem", "2rem", "2.25rem"},
		headingWeights: []string{"700", "800"},
		spacing:        []float64{0.5, 1.0, 1.6},
		radii: []Radius{
			{SM: "0.75rem", MD: "1rem", LG: "1.5rem", Full: "9999px"},
			{SM: "0rem", MD: "0rem", LG: "0rem", Full: "0rem"},
			{SM: "0.5rem", MD: "1rem", LG: "2rem", Full: "9999px"},
		},
	},
}

type layoutConstraint struct {
	types          []LayoutType
	labelPositions []LabelPosition
	alignments     []Alignment
	maxWidths      []string
}

var layoutConstraints = map[Level]layoutConstraint{
	LevelConservative: {
		types:          []LayoutType{LayoutSingleColumn, LayoutTwoColumn},
		labelPositions: []LabelPosition{LabelTop, LabelLeft},
		alignments:     []Alignment{AlignCenter},
		maxWidths:      []string{"600px", "700px", "800px"},
	},
	LevelModerate: {
		types:          []LayoutType{LayoutSingleColumn, LayoutTwoColumn, LayoutGrid, LayoutCard},
		labelPositions: []LabelPosition{LabelTop, LabelLeft, LabelFloating},
		alignments:     []Alignment{AlignLeft, AlignCenter},
		maxWidths:      []string{"100%", "800px", "900px", "1000px"},
	},
	LevelCreative: {
		types:          []LayoutType{LayoutSingleColumn, LayoutTwoColumn, LayoutGrid, LayoutCard, LayoutStepper},
		labelPositions: []LabelPosition{LabelTop, LabelLeft, LabelRight, LabelFloating},
		alignments:     []Alignment{AlignLeft, AlignCenter, AlignRight},
		maxWidths:      []string{"100%", "90vw", "80vw", "1200px"},
	},
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// rem formats v as a rem length, rounded to three decimals.
func rem(v float64) string {
	v = math.Round(v*1000) / 1000
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}

func levelOrDefault(level Level) Level {
	if level.Valid() {
		return level
	}
	return LevelModerate
}

func levelTitle(level Level) string {
	s := string(level)
	return strings.ToUpper(s[:1]) + s[1:]
}

// complementHue derives the secondary color from the primary hex value.
func complementHue(primary string) string {
	value, err := strconv.ParseInt(strings.TrimPrefix(primary, "#"), 16, 64)
	if err != nil {
		value = 0
	}
	return "hsl(" + strconv.FormatInt((value+120)%360, 10) + ", 50%, 50%)"
}

// GenerateRandomTheme builds a light-leaning theme from the palette of level.
// Unknown levels fall back to moderate.
func GenerateRandomTheme(level Level, rng *rand.Rand, now time.Time) ThemeConfig {
	level = levelOrDefault(level)
	p := palettes[level]

	primary := pick(rng, p.primaries)
	colors := Colors{
		Primary:    primary,
		Secondary:  complementHue(primary),
		Background: pick(rng, p.backgrounds),
		Surface:    pick(rng, p.surfaces),
		Text: TextColors{
			Primary:   pick(rng, p.textPrimary),
			Secondary: pick(rng, p.textSecondary),
			Muted:     pick(rng, p.textMuted),
		},
		Border:  "#e2e8f0",
		Error:   "#ef4444",
		Success: "#10b981",
		Warning: "#f59e0b",
		Info:    primary,
	}
	typography := Typography{
		Headings: HeadingType{
			FontSize:      pick(rng, p.headingSizes),
			FontWeight:    pick(rng, p.headingWeights),
			LetterSpacing: "-0.025em",
		},
		Body:       BodyType{FontSize: "1rem", FontWeight: "400", LineHeight: "1.6"},
		Input:      InputType{FontSize: "1rem", FontWeight: "400"},
		FontFamily: pick(rng, p.fonts) + ", " + baseFontStack,
	}
	m := pick(rng, p.spacing)

	themeType := ThemeDark
	if rng.Float64() > 0.3 {
		themeType = ThemeLight
	}
	return ThemeConfig{
		ID:         "random-theme-" + strconv.FormatInt(now.UnixMilli(), 10),
		Name:       "Random " + levelTitle(level) + " Theme",
		Type:       themeType,
		Colors:     colors,
		Typography: typography,
		Spacing: Spacing{
			XS: rem(0.25 * m), SM: rem(0.5 * m), MD: rem(m), LG: rem(1.5 * m), XL: rem(2 * m),
		},
		BorderRadius: pick(rng, p.radii),
		Shadows:      lightShadows,
	}
}

// GenerateRandomLayout picks a layout archetype and geometry allowed by
// level, scaling spacing by a factor between 0.75 and 1.25.
func GenerateRandomLayout(level Level, rng *rand.Rand, now time.Time) LayoutConfig {
	level = levelOrDefault(level)
	c := layoutConstraints[level]

	layoutType := pick(rng, c.types)
	labelPosition := pick(rng, c.labelPositions)
	alignment := pick(rng, c.alignments)
	maxWidth := pick(rng, c.maxWidths)
	m := rng.Float64()*0.5 + 0.75

	columns := Columns{Mobile: 1, Tablet: 1, Desktop: 1}
	switch layoutType {
	case LayoutTwoColumn:
		columns.Tablet, columns.Desktop = 2, 2
	case LayoutGrid:
		columns.Tablet, columns.Desktop = 2, 3
	}
	return LayoutConfig{
		ID:   "random-layout-" + strconv.FormatInt(now.UnixMilli(), 10),
		Name: "Random " + levelTitle(level) + " Layout",
		Type: layoutType,
		FormLayout: FormLayout{
			MaxWidth:  maxWidth,
			Padding:   rem(2 * m),
			Spacing:   rem(1.5 * m),
			Alignment: alignment,
		},
		FieldLayout: FieldLayout{
			LabelPosition:  labelPosition,
			FieldSpacing:   rem(m),
			GroupSpacing:   rem(1.5 * m),
			SectionSpacing: rem(2 * m),
		},
		Responsive: Responsive{
			Breakpoints:          defaultBreakpoints,
			ColumnsPerBreakpoint: columns,
		},
	}
}

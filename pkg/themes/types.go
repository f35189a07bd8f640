// Package themes holds the visual presentation state of a form: the theme
// (colors, typography, spacing, radii, shadows) and the layout geometry. The
// Store owns the committed values, a transient preview overlay and a bounded
// history, and persists a snapshot through a storage.Slot.
package themes

// ThemeType classifies a theme for the theme-<type> root class.
type ThemeType string

const (
	ThemeLight  ThemeType = "light"
	ThemeDark   ThemeType = "dark"
	ThemeCustom ThemeType = "custom"
)

// LayoutType selects the overall arrangement of fields.
type LayoutType string

const (
	LayoutSingleColumn LayoutType = "single-column"
	LayoutTwoColumn    LayoutType = "two-column"
	LayoutGrid         LayoutType = "grid"
	LayoutCard         LayoutType = "card"
	LayoutStepper      LayoutType = "stepper"
)

// LabelPosition places field labels relative to their controls.
type LabelPosition string

const (
	LabelTop      LabelPosition = "top"
	LabelLeft     LabelPosition = "left"
	LabelRight    LabelPosition = "right"
	LabelFloating LabelPosition = "floating"
)

// Alignment positions the form inside its container.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Level controls how far random generation strays from safe choices.
type Level string

const (
	LevelConservative Level = "conservative"
	LevelModerate     Level = "moderate"
	LevelCreative     Level = "creative"
)

// Levels lists the randomization levels from tamest to wildest.
func Levels() []Level {
	return []Level{LevelConservative, LevelModerate, LevelCreative}
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelConservative, LevelModerate, LevelCreative:
		return true
	}
	return false
}

type TextColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Muted     string `json:"muted"`
}

type Colors struct {
	Primary    string     `json:"primary"`
	Secondary  string     `json:"secondary"`
	Background string     `json:"background"`
	Surface    string     `json:"surface"`
	Text       TextColors `json:"text"`
	Border     string     `json:"border"`
	Error      string     `json:"error"`
	Success    string     `json:"success"`
	Warning    string     `json:"warning"`
	Info       string     `json:"info"`
}

type HeadingType struct {
	FontSize      string `json:"fontSize"`
	FontWeight    string `json:"fontWeight"`
	LetterSpacing string `json:"letterSpacing"`
}

type BodyType struct {
	FontSize   string `json:"fontSize"`
	FontWeight string `json:"fontWeight"`
	LineHeight string `json:"lineHeight"`
}

type InputType struct {
	FontSize   string `json:"fontSize"`
	FontWeight string `json:"fontWeight"`
}

type Typography struct {
	Headings   HeadingType `json:"headings"`
	Body       BodyType    `json:"body"`
	Input      InputType   `json:"input"`
	FontFamily string      `json:"fontFamily"`
}

type Spacing struct {
	XS string `json:"xs"`
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
	XL string `json:"xl"`
}

type Radius struct {
	SM   string `json:"sm"`
	MD   string `json:"md"`
	LG   string `json:"lg"`
	Full string `json:"full"`
}

type Shadows struct {
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
	XL string `json:"xl"`
}

// ThemeConfig is a complete visual theme. It holds only values, so copying a
// ThemeConfig copies all of it.
type ThemeConfig struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         ThemeType  `json:"type"`
	Colors       Colors     `json:"colors"`
	Typography   Typography `json:"typography"`
	Spacing      Spacing    `json:"spacing"`
	BorderRadius Radius     `json:"borderRadius"`
	Shadows      Shadows    `json:"shadows"`
}

type FormLayout struct {
	MaxWidth  string    `json:"maxWidth"`
	Padding   string    `json:"padding"`
	Spacing   string    `json:"spacing"`
	Alignment Alignment `json:"alignment"`
}

type FieldLayout struct {
	LabelPosition  LabelPosition `json:"labelPosition"`
	FieldSpacing   string        `json:"fieldSpacing"`
	GroupSpacing   string        `json:"groupSpacing"`
	SectionSpacing string        `json:"sectionSpacing"`
}

type Breakpoints struct {
	Mobile  string `json:"mobile"`
	Tablet  string `json:"tablet"`
	Desktop string `json:"desktop"`
}

type Columns struct {
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
	Desktop int `json:"desktop"`
}

type Responsive struct {
	Breakpoints          Breakpoints `json:"breakpoints"`
	ColumnsPerBreakpoint Columns     `json:"columnsPerBreakpoint"`
}

// LayoutConfig is the geometry of a form. Like ThemeConfig it is a plain
// value.
type LayoutConfig struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        LayoutType  `json:"type"`
	FormLayout  FormLayout  `json:"formLayout"`
	FieldLayout FieldLayout `json:"fieldLayout"`
	Responsive  Responsive  `json:"responsive"`
}

// Preset pairs a theme with a layout under a catalogue entry.
type Preset struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Theme       ThemeConfig  `json:"theme"`
	Layout      LayoutConfig `json:"layout"`
	Category    string       `json:"category"`
	Tags        []string     `json:"tags"`
}

func (p Preset) clone() Preset {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

// Settings tunes the generator.
type Settings struct {
	AutoApply          bool  `json:"autoApply"`
	PreviewMode        bool  `json:"previewMode"`
	PersistSettings    bool  `json:"persistSettings"`
	AISuggestions      bool  `json:"aiSuggestions"`
	RandomizationLevel Level `json:"randomizationLevel"`
}

// SettingsPatch updates the non-nil settings only.
type SettingsPatch struct {
	AutoApply          *bool
	PreviewMode        *bool
	PersistSettings    *bool
	AISuggestions      *bool
	RandomizationLevel *Level
}

func (p SettingsPatch) apply(s Settings) Settings {
	if p.AutoApply != nil {
		s.AutoApply = *p.AutoApply
	}
	if p.PreviewMode != nil {
		s.PreviewMode = *p.PreviewMode
	}
	if p.PersistSettings != nil {
		s.PersistSettings = *p.PersistSettings
	}
	if p.AISuggestions != nil {
		s.AISuggestions = *p.AISuggestions
	}
	if p.RandomizationLevel != nil && p.RandomizationLevel.Valid() {
		s.RandomizationLevel = *p.RandomizationLevel
	}
	return s
}

// HistoryEntry is a committed theme/layout pair. Timestamp is in Unix
// milliseconds.
type HistoryEntry struct {
	Theme     ThemeConfig  `json:"theme"`
	Layout    LayoutConfig `json:"layout"`
	Timestamp int64        `json:"timestamp"`
}

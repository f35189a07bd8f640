package themes

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestGenerateRandomTheme_StaysInPalette(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	now := time.UnixMilli(42)
	for _, level := range Levels() {
		p := palettes[level]
		for i := 0; i < 50; i++ {
			theme := GenerateRandomTheme(level, rng, now)
			if !slices.Contains(p.primaries, theme.Colors.Primary) {
				t.Fatalf("%s: primary %q outside palette", level, theme.Colors.Primary)
			}
			if theme.Colors.Info != theme.Colors.Primary {
				t.Fatalf("info must mirror primary")
			}
			if !slices.Contains(p.headingWeights, theme.Typography.Headings.FontWeight) {
				t.Fatalf("%s: weight %q outside palette", level, theme.Typography.Headings.FontWeight)
			}
			if !slices.Contains(p.radii, theme.BorderRadius) {
				t.Fatalf("%s: radius %+v outside palette", level, theme.BorderRadius)
			}
			if theme.Type != ThemeLight && theme.Type != ThemeDark {
				t.Fatalf("unexpected type %q", theme.Type)
			}
			if theme.ID != "random-theme-42" {
				t.Fatalf("unexpected id %q", theme.ID)
			}
		}
	}
}

func TestGenerateRandomTheme_Naming(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	theme := GenerateRandomTheme(LevelConservative, rng, time.UnixMilli(0))
	if theme.Name != "Random Conservative Theme" {
		t.Fatalf("unexpected name %q", theme.Name)
	}
	if !strings.HasSuffix(theme.Typography.FontFamily, baseFontStack) {
		t.Fatalf("font family must end with the system stack: %q", theme.Typography.FontFamily)
	}
	if got := GenerateRandomTheme(Level("bogus"), rng, time.UnixMilli(0)).Name; got != "Random Moderate Theme" {
		t.Fatalf("unknown levels fall back to moderate, got %q", got)
	}
}

func TestComplementHue(t *testing.T) {
	// 0x3b82f6 = 3900150; (3900150+120) % 360 = 30.
	if got := complementHue("#3b82f6"); got != "hsl(30, 50%, 50%)" {
		t.Fatalf("unexpected secondary %q", got)
	}
}

func TestGenerateRandomLayout_Constraints(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for _, level := range Levels() {
		c := layoutConstraints[level]
		for i := 0; i < 50; i++ {
			layout := GenerateRandomLayout(level, rng, time.UnixMilli(9))
			if !slices.Contains(c.types, layout.Type) {
				t.Fatalf("%s: type %q not allowed", level, layout.Type)
			}
			if !slices.Contains(c.alignments, layout.FormLayout.Alignment) {
				t.Fatalf("%s: alignment %q not allowed", level, layout.FormLayout.Alignment)
			}
			cols := layout.Responsive.ColumnsPerBreakpoint
			switch layout.Type {
			case LayoutGrid:
				if cols.Tablet != 2 || cols.Desktop != 3 {
					t.Fatalf("grid columns %+v", cols)
				}
			case LayoutTwoColumn:
				if cols.Tablet != 2 || cols.Desktop != 2 {
					t.Fatalf("two-column columns %+v", cols)
				}
			default:
				if cols != (Columns{Mobile: 1, Tablet: 1, Desktop: 1}) {
					t.Fatalf("%s columns %+v", layout.Type, cols)
				}
			}
		}
	}
}

func TestRem(t *testing.T) {
	cases := map[float64]string{
		0.25 * 0.8: "0.2rem",
		0.25 * 1.2: "0.3rem",
		1.5 * 1.4:  "2.1rem",
		2.0:        "2rem",
		1.23456:    "1.235rem",
	}
	for in, want := range cases {
		if got := rem(in); got != want {
			t.Fatalf("rem(%v) = %q, want %q", in, got, want)
		}
	}
}

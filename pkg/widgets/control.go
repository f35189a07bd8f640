package widgets

import "github.com/goliatone/go-formbuilder/pkg/model"

// Defaults applied when a field's extras leave a bound unset.
const (
	DefaultSliderMin  = 0.0
	DefaultSliderMax  = 100.0
	DefaultSliderStep = 1.0
	DefaultMaxRating  = 5
)

// Control is the backend-neutral description of how a field renders.
type Control struct {
	Kind string
	// InputType is the input type attribute for KindInput controls.
	InputType string
	Options   []string
	Min       float64
	Max       float64
	Step      float64
	// HasBounds is set when Min/Max/Step carry meaningful values.
	HasBounds  bool
	ShowLabels bool
	MaxRating  int
	AllowHalf  bool
}

// Control resolves the control for field and fills in the type-specific
// parameters read from its extras.
func (r *Registry) Control(field model.Field) Control {
	c := Control{Kind: r.Resolve(field)}
	switch c.Kind {
	case KindInput:
		c.InputType = InputType(field.Type)
		if number, ok := field.Extra.(*model.NumberExtra); ok && number != nil {
			c.Min, c.HasBounds = deref(number.Min, 0), number.Min != nil || number.Max != nil || number.Step != nil
			c.Max = deref(number.Max, 0)
			c.Step = deref(number.Step, 0)
		}
	case KindSelect, KindRadioGroup, KindMultiChoice:
		c.Options = field.Options()
	case KindRange:
		c.Min, c.Max, c.Step, c.HasBounds = DefaultSliderMin, DefaultSliderMax, DefaultSliderStep, true
		if slider, ok := field.Extra.(*model.SliderExtra); ok && slider != nil {
			c.Min = deref(slider.Min, DefaultSliderMin)
			c.Max = deref(slider.Max, DefaultSliderMax)
			c.Step = deref(slider.Step, DefaultSliderStep)
			c.ShowLabels = slider.ShowLabels != nil && *slider.ShowLabels
		}
	case KindRating:
		c.MaxRating = DefaultMaxRating
		if rating, ok := field.Extra.(*model.RatingExtra); ok && rating != nil {
			if rating.MaxRating != nil && *rating.MaxRating > 0 {
				c.MaxRating = *rating.MaxRating
			}
			c.AllowHalf = rating.AllowHalfRating != nil && *rating.AllowHalfRating
		}
	}
	return c
}

// InputType maps text-like field types onto an input type attribute. Unknown
// types degrade to "text".
func InputType(t model.FieldType) string {
	switch t {
	case model.FieldTypeEmail:
		return "email"
	case model.FieldTypePassword:
		return "password"
	case model.FieldTypeNumber:
		return "number"
	case model.FieldTypePhone:
		return "tel"
	default:
		return "text"
	}
}

func deref(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

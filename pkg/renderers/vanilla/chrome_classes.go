package vanilla

// ChromeClass is a typed identifier for the structural CSS classes the page
// template emits.
type ChromeClass string

const (
	ClassForm    ChromeClass = "fb-form"
	ClassSection ChromeClass = "fb-section"
	ClassGroup   ChromeClass = "form-group"
	ClassHelp    ChromeClass = "fb-help"
)

// ChromeClasses overrides the structural classes. Empty entries keep the
// defaults.
type ChromeClasses struct {
	Form    string `json:"form"`
	Section string `json:"section"`
	Group   string `json:"group"`
	Help    string `json:"help"`
}

func (c ChromeClasses) withDefaults() ChromeClasses {
	return ChromeClasses{
		Form:    classOr(c.Form, ClassForm),
		Section: classOr(c.Section, ClassSection),
		Group:   classOr(c.Group, ClassGroup),
		Help:    classOr(c.Help, ClassHelp),
	}
}

func classOr(value string, fallback ChromeClass) string {
	if cleaned := sanitizeClassList(value); cleaned != "" {
		return cleaned
	}
	return string(fallback)
}

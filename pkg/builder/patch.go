package builder

import "github.com/goliatone/go-formbuilder/pkg/model"

// FieldPatch is a partial field update. Nil members are left untouched.
type FieldPatch struct {
	Key         *string
	Type        *model.FieldType
	Label       *string
	Required    *bool
	Placeholder *string
	HelperText  *string
	// Extra replaces the extras wholesale. When Type changes and Extra is nil
	// the existing extras are converted to the new type's variant.
	Extra      model.Extra
	Validation *[]model.ValidationRule
	VisibleIf  *map[string]any
}

func (p FieldPatch) apply(field model.Field) model.Field {
	out := field
	if p.Type != nil && *p.Type != field.Type {
		out.Type = *p.Type
		if p.Extra == nil {
			out.Extra = model.ConvertExtra(out.Type, field.Extra)
		}
	}
	if p.Extra != nil {
		out.Extra = p.Extra.Clone()
	}
	if p.Label != nil {
		out.Label = *p.Label
	}
	if p.Required != nil {
		out.Required = *p.Required
	}
	if p.Placeholder != nil {
		out.Placeholder = *p.Placeholder
	}
	if p.HelperText != nil {
		out.HelperText = *p.HelperText
	}
	if p.Validation != nil {
		if *p.Validation == nil {
			out.Validation = nil
		} else {
			out.Validation = append([]model.ValidationRule{}, (*p.Validation)...)
		}
	}
	if p.VisibleIf != nil {
		out.VisibleIf = model.Field{VisibleIf: *p.VisibleIf}.Clone().VisibleIf
	}
	return out
}

// SectionPatch is a partial section update. Nil members are left untouched.
type SectionPatch struct {
	Title             *string
	Description       *string
	Collapsible       *bool
	InitiallyExpanded *bool
}

func (p SectionPatch) apply(section model.Section) model.Section {
	out := section
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Collapsible != nil {
		out.Collapsible = *p.Collapsible
	}
	if p.InitiallyExpanded != nil {
		out.InitiallyExpanded = *p.InitiallyExpanded
	}
	return out
}

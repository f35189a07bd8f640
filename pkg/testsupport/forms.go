package testsupport

import "github.com/goliatone/go-formbuilder/pkg/model"

func choice(key string, fieldType model.FieldType, label string, required bool, options []string) model.Field {
	field := model.NewField(key, fieldType, label)
	field.Required = required
	if options != nil {
		field.Extra = &model.ChoiceExtra{Options: options}
	}
	field.Validation = []model.ValidationRule{}
	return field
}

func section(id, title, description string, collapsible bool, fields ...model.Field) model.Entry {
	return model.SectionEntry(model.Section{
		ID:                id,
		Title:             title,
		Description:       description,
		Collapsible:       collapsible,
		InitiallyExpanded: true,
		Fields:            fields,
	})
}

// MissingOptionsForm has one healthy dropdown and one without options.
func MissingOptionsForm() model.FormConfig {
	healthy := choice("dropdown_with_3_options", model.FieldTypeDropdown, "Dropdown (Should have 3 options)", true,
		[]string{"Option 1", "Option 2", "Option 3"})
	healthy.Placeholder = "Select an option"
	missing := choice("dropdown_missing_options", model.FieldTypeDropdown, "Dropdown (No options defined)", false, nil)
	missing.Placeholder = "This will have no options"

	return model.FormConfig{
		ID:          "test-missing-options",
		Title:       "Form with Missing Dropdown Options",
		Description: "This form has dropdown fields with insufficient options",
		Sections: []model.Entry{
			section("section-1", "Test Section", "Section with problematic fields", false, healthy, missing),
		},
	}
}

// TypeConfusionForm pairs a dropdown and a radio group with similar content.
func TypeConfusionForm() model.FormConfig {
	return model.FormConfig{
		ID:          "test-incorrect-types",
		Title:       "Form with Type Confusion",
		Description: "This form has fields that might be confused between radio and dropdown",
		Sections: []model.Entry{
			section("section-1", "Type Confusion Section", "Fields that demonstrate type issues", false,
				choice("should_be_dropdown", model.FieldTypeDropdown, "This should be a dropdown", true,
					[]string{"Choice A", "Choice B", "Choice C", "Choice D"}),
				choice("should_be_radio", model.FieldTypeRadio, "This should be radio buttons", true,
					[]string{"Option X", "Option Y", "Option Z"}),
			),
		},
	}
}

// EdgeCaseForm carries blank options, duplicated options and a single-option
// dropdown.
func EdgeCaseForm() model.FormConfig {
	return model.FormConfig{
		ID:          "test-edge-cases",
		Title:       "Form with Edge Cases",
		Description: "This form contains various edge cases that might cause issues",
		Sections: []model.Entry{
			section("section-1", "Edge Cases", "Various problematic scenarios", false,
				choice("empty_options", model.FieldTypeDropdown, "Dropdown with empty options", false,
					[]string{"Valid Option", "", "Another Valid", "  ", "Last Valid"}),
				choice("duplicate_options", model.FieldTypeRadio, "Radio with duplicate options", false,
					[]string{"Option A", "Option B", "Option A", "Option C", "Option B"}),
				choice("single_option", model.FieldTypeDropdown, "Dropdown with single option", false,
					[]string{"Only Choice"}),
			),
		},
	}
}

// ProblematicForms indexes the defect fixtures by name.
func ProblematicForms() map[string]model.FormConfig {
	return map[string]model.FormConfig{
		"missingDropdownOptions": MissingOptionsForm(),
		"incorrectFieldTypes":    TypeConfusionForm(),
		"edgeCases":              EdgeCaseForm(),
	}
}

// ComprehensiveForm exercises text and selection fields across two sections.
func ComprehensiveForm() model.FormConfig {
	text := model.NewField("text_field", model.FieldTypeText, "Text Field")
	text.Required = true
	text.Placeholder = "Enter text"
	text.HelperText = "Basic text input"
	text.Validation = []model.ValidationRule{{Type: model.RuleRequired, Message: "This field is required"}}

	email := model.NewField("email_field", model.FieldTypeEmail, "Email Field")
	email.Required = true
	email.Placeholder = "Enter email"
	email.HelperText = "Email validation"
	email.Validation = []model.ValidationRule{{Type: model.RuleRequired, Message: "Email is required"}}

	dropdown := choice("dropdown_3_options", model.FieldTypeDropdown, "Dropdown (3 Options)", true,
		[]string{"First Option", "Second Option", "Third Option"})
	dropdown.Validation = []model.ValidationRule{{Type: model.RuleRequired, Message: "Please select an option"}}
	radio := choice("radio_4_options", model.FieldTypeRadio, "Radio Buttons (4 Options)", true,
		[]string{"Choice 1", "Choice 2", "Choice 3", "Choice 4"})
	radio.Validation = []model.ValidationRule{{Type: model.RuleRequired, Message: "Please select an option"}}
	multi := choice("multi_select_5_options", model.FieldTypeMultiSelect, "Multi-Select (5 Options)", false,
		[]string{"Item 1", "Item 2", "Item 3", "Item 4", "Item 5"})

	return model.FormConfig{
		ID:          "comprehensive-test-form",
		Title:       "Comprehensive Test Form",
		Description: "A form that tests all field types and edge cases",
		Sections: []model.Entry{
			section("text-fields", "Text Fields", "Various text input types", true, text, email),
			section("selection-fields", "Selection Fields", "Dropdown, radio, and checkbox fields", true, dropdown, radio, multi),
		},
	}
}

// AllTypesForm holds one field of every known type, split between a section
// and bare top-level entries, plus a field with an unknown type tag.
func AllTypesForm() model.FormConfig {
	var grouped []model.Field
	var entries []model.Entry
	for i, fieldType := range model.FieldTypes() {
		field := model.NewField(string(fieldType)+"_field", fieldType, "Sample "+string(fieldType))
		if fieldType.HasOptions() {
			field.Extra = &model.ChoiceExtra{Options: []string{"Alpha", "Beta"}}
		}
		if i%2 == 0 {
			grouped = append(grouped, field)
			continue
		}
		entries = append(entries, model.FieldEntry(field))
	}
	unknown := model.NewField("mystery_field", model.FieldType("signature"), "Mystery")
	entries = append(entries, model.FieldEntry(unknown))

	return model.FormConfig{
		ID:          "all-types",
		Title:       "All Types",
		Description: "One control per field type",
		Sections: append([]model.Entry{
			section("grouped", "Grouped", "", false, grouped...),
		}, entries...),
	}
}

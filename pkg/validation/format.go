package validation

import (
	"regexp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	// EmailPattern is the address shape accepted by ValidateEmail.
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	// PhonePattern accepts digits, spaces, dashes and parentheses with an
	// optional leading plus.
	PhonePattern = `^\+?[\d\s\-\(\)]+$`
)

var (
	emailRe = regexp.MustCompile(EmailPattern)
	phoneRe = regexp.MustCompile(PhonePattern)
)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidatePhone reports whether s looks like a phone number.
func ValidatePhone(s string) bool {
	return phoneRe.MatchString(s)
}

// EmailRule returns a pattern rule enforcing EmailPattern.
func EmailRule(message string) model.ValidationRule {
	if message == "" {
		message = "Please enter a valid email address"
	}
	return model.ValidationRule{Type: model.RulePattern, Value: EmailPattern, Message: message}
}

// PhoneRule returns a pattern rule enforcing PhonePattern.
func PhoneRule(message string) model.ValidationRule {
	if message == "" {
		message = "Please enter a valid phone number"
	}
	return model.ValidationRule{Type: model.RulePattern, Value: PhonePattern, Message: message}
}

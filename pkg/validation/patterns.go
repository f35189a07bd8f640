package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrMalformedPattern marks a pattern rule whose value does not compile.
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrInvalidRuleValue marks a rule whose value has the wrong shape for
	// its type.
	ErrInvalidRuleValue = errors.New("invalid rule value")
)

// RuleError describes a rule that cannot be evaluated. Such rules pass during
// validation; CheckRules surfaces them so authors can fix the configuration.
type RuleError struct {
	Index int
	Rule  model.ValidationRule
	Err   error
}

func (e RuleError) Error() string {
	return fmt.Sprintf("validation: rule %d (%s): %v", e.Index, e.Rule.Type, e.Err)
}

func (e RuleError) Unwrap() error {
	return e.Err
}

// CheckRules reports every rule in rules that validation would skip because
// its value is unusable.
func CheckRules(rules []model.ValidationRule) []RuleError {
	var out []RuleError
	for i, rule := range rules {
		switch rule.Type {
		case model.RulePattern:
			if _, err := compile(rule.Value); err != nil {
				out = append(out, RuleError{Index: i, Rule: rule, Err: err})
			}
		case model.RuleMinLength, model.RuleMaxLength, model.RuleMin, model.RuleMax:
			if _, ok := toNumber(rule.Value); !ok {
				out = append(out, RuleError{
					Index: i,
					Rule:  rule,
					Err:   fmt.Errorf("%w: %v is not a number", ErrInvalidRuleValue, rule.Value),
				})
			}
		}
	}
	return out
}

type compiled struct {
	re  *regexp.Regexp
	err error
}

var patternCache sync.Map

func compile(value any) (*regexp.Regexp, error) {
	pattern, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a string", ErrMalformedPattern, value)
	}
	if cached, ok := patternCache.Load(pattern); ok {
		entry := cached.(compiled)
		return entry.re, entry.err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedPattern, err)
	}
	patternCache.Store(pattern, compiled{re: re, err: err})
	return re, err
}

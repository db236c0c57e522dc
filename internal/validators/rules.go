package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// shape is shared by every Alpha and Email rule; validator.Validate caches
// parsed tags and is safe for concurrent use.
var shape = validator.New()

// Failure is a rule failure before it is attached to a field name.
type Failure struct {
	Message string
	Kind    ErrorKind
}

// Result is what a Rule produces for one value.
//
// Value is the (possibly rewritten) field value handed to the next rule.
// A non-empty Failures stops the field's chain after this rule.
// Skip stops the chain without reporting anything.
type Result struct {
	Value    string
	Failures []Failure
	Skip     bool
}

// Rule is one step of a field chain. payload is the full request payload,
// available for cross-field checks.
type Rule interface {
	Apply(value string, payload Payload) Result
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(value string, payload Payload) Result

// Apply calls f(value, payload).
func (f RuleFunc) Apply(value string, payload Payload) Result {
	return f(value, payload)
}

// Trim removes surrounding whitespace.
func Trim() Rule {
	return RuleFunc(func(value string, _ Payload) Result {
		return Result{Value: strings.TrimSpace(value)}
	})
}

// Escape replaces markup-significant characters with HTML entities.
func Escape() Rule {
	return RuleFunc(func(value string, _ Payload) Result {
		return Result{Value: escapeMarkup(value)}
	})
}

// Optional ends the chain quietly when the value is absent or empty.
// It belongs after the normalizing rules.
func Optional() Rule {
	return RuleFunc(func(value string, _ Payload) Result {
		return Result{Value: value, Skip: value == ""}
	})
}

// NotEmpty fails with a MissingField error when the value is empty.
func NotEmpty(message string) Rule {
	return check(MissingField, message, func(value string) bool {
		return value != ""
	})
}

// Length fails unless the character count lies within [min, max].
// A max of zero or less leaves the upper end open.
func Length(min, max int, message string) Rule {
	return check(Shape, message, func(value string) bool {
		n := utf8.RuneCountInString(value)
		if n < min {
			return false
		}
		return max <= 0 || n <= max
	})
}

// MaxLength fails when the value is longer than max characters.
func MaxLength(max int, message string) Rule {
	return Length(0, max, message)
}

// Alpha fails when the value holds anything but Latin letters.
func Alpha(message string) Rule {
	return check(Shape, message, func(value string) bool {
		return shape.Var(value, "alpha") == nil
	})
}

// Email fails when the value is not a syntactically valid address.
func Email(message string) Rule {
	return check(Shape, message, func(value string) bool {
		return shape.Var(value, "email") == nil
	})
}

// Matches fails when re does not match the value. Whether re must match
// the whole value is up to its anchors.
func Matches(re *regexp.Regexp, message string) Rule {
	return check(Shape, message, re.MatchString)
}

// AllOf applies every rule to the same value and reports all failures
// together instead of stopping at the first one.
func AllOf(rules ...Rule) Rule {
	return RuleFunc(func(value string, payload Payload) Result {
		var failures []Failure
		for _, rule := range rules {
			res := rule.Apply(value, payload)
			failures = append(failures, res.Failures...)
		}
		return Result{Value: value, Failures: failures}
	})
}

func check(kind ErrorKind, message string, ok func(string) bool) Rule {
	return RuleFunc(func(value string, _ Payload) Result {
		if ok(value) {
			return Result{Value: value}
		}
		return Result{Value: value, Failures: []Failure{{Message: message, Kind: kind}}}
	})
}

// Package validation normalizes and checks inbound payloads before they reach
// the services. Each field owns an ordered list of rules; a rule may rewrite
// the value, then must accept it, otherwise the field fails with the rule's
// code. Every field is evaluated so callers get the complete failure set.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Code is the stable, machine-readable reason a field was rejected.
type Code string

// FieldError reports one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Code  Code   `json:"code"`
}

// Errors is the failure set of a payload. It is only returned when non-empty.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+string(fe.Code))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// CodeOf returns the code reported for field, if any.
func (e Errors) CodeOf(field string) (Code, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Code, true
		}
	}
	return "", false
}

// Rule is a (normalizer, predicate, code) step. Either function may be nil.
type Rule struct {
	Normalize func(string) string
	Check     func(string) bool
	Code      Code
}

// Field is the rule chain for one payload field. Optional fields that are
// missing, or blank after normalization, resolve to "" without running the
// remaining predicates. Missing required fields fail with MissingCode.
type Field struct {
	Name        string
	Optional    bool
	MissingCode Code
	Rules       []Rule
}

// Apply runs the chain over raw and returns the normalized value.
func (f Field) Apply(raw *string) (string, *FieldError) {
	if raw == nil {
		if f.Optional {
			return "", nil
		}
		return "", &FieldError{Field: f.Name, Code: f.MissingCode}
	}

	value := *raw
	for _, rule := range f.Rules {
		if rule.Normalize != nil {
			value = rule.Normalize(value)
		}
		if f.Optional && value == "" {
			return "", nil
		}
		if rule.Check != nil && !rule.Check(value) {
			return "", &FieldError{Field: f.Name, Code: rule.Code}
		}
	}
	return value, nil
}

// collector accumulates field failures across a payload.
type collector struct {
	errs Errors
}

// required applies f to a value that must be present.
func (c *collector) required(f Field, raw *string) string {
	value, fe := f.Apply(raw)
	if fe != nil {
		c.errs = append(c.errs, *fe)
	}
	return value
}

// partial applies f only when raw is present, keeping nil as "unchanged".
func (c *collector) partial(f Field, raw *string) *string {
	if raw == nil {
		return nil
	}
	value, fe := f.Apply(raw)
	if fe != nil {
		c.errs = append(c.errs, *fe)
		return nil
	}
	return &value
}

func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

var validate = validator.New()

// tag adapts a go-playground/validator tag into a predicate.
func tag(t string) func(string) bool {
	return func(value string) bool {
		return validate.Var(value, t) == nil
	}
}

func matches(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

func notBlank(value string) bool {
	return value != ""
}

func trim(value string) string {
	return strings.TrimSpace(value)
}

func trimLower(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

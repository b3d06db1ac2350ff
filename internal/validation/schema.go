package validation

import (
	"fmt"
	"math"
	"regexp"
)

// FieldError is one field-level validation failure. Handlers return the
// full list as the 422 response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Kind int

const (
	String Kind = iota
	Number
	Integer
)

// Rule describes the constraints for a single payload field.
type Rule struct {
	Name        string
	Kind        Kind
	Required    bool
	Email       bool
	Nonnegative bool
	Positive    bool
	Enum        []string
	Default     any
}

// Schema is an ordered set of field rules evaluated against an untyped
// payload, the way the original request bodies arrive from JSON decoding.
type Schema struct {
	Rules []Rule
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks payload against the schema. It returns a normalized map
// (strings as string, integers as int, numbers as float64, defaults
// applied) or the list of field errors. Unknown payload fields are
// ignored. Expected bad input never produces a Go error.
func (s Schema) Validate(payload map[string]any) (map[string]any, []FieldError) {
	out := make(map[string]any, len(s.Rules))
	var errs []FieldError

	for _, rule := range s.Rules {
		raw, present := payload[rule.Name]
		if !present || raw == nil {
			if rule.Required {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s is required", rule.Name)})
				continue
			}
			if rule.Default != nil {
				out[rule.Name] = rule.Default
			}
			continue
		}

		switch rule.Kind {
		case String:
			str, ok := raw.(string)
			if !ok {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s must be a string", rule.Name)})
				continue
			}
			if rule.Required && str == "" {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s is required", rule.Name)})
				continue
			}
			if rule.Email && !emailPattern.MatchString(str) {
				errs = append(errs, FieldError{rule.Name, "email must be valid"})
				continue
			}
			if len(rule.Enum) > 0 && !contains(rule.Enum, str) {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s must be one of %v", rule.Name, rule.Enum)})
				continue
			}
			out[rule.Name] = str

		case Number, Integer:
			num, ok := asFloat(raw)
			if !ok {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s must be a number", rule.Name)})
				continue
			}
			if rule.Kind == Integer && num != math.Trunc(num) {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s must be an integer", rule.Name)})
				continue
			}
			if rule.Nonnegative && num < 0 {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s must not be negative", rule.Name)})
				continue
			}
			if rule.Positive && num <= 0 {
				errs = append(errs, FieldError{rule.Name, fmt.Sprintf("%s must be positive", rule.Name)})
				continue
			}
			if rule.Kind == Integer {
				out[rule.Name] = int(num)
			} else {
				out[rule.Name] = num
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// asFloat accepts the numeric shapes a decoded JSON payload can carry.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringAt(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func intAt(m map[string]any, key string) int {
	if v, ok := m[key].(int); ok {
		return v
	}
	return 0
}

func floatAt(m map[string]any, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}

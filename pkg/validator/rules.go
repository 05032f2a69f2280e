package validator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Values holds raw submitted form values by field name.
type Values map[string]string

// Get returns the trimmed value of field.
func (v Values) Get(field string) string {
	return strings.TrimSpace(v[field])
}

// Raw returns field exactly as submitted.
func (v Values) Raw(field string) string {
	return v[field]
}

// Rule is a single field check. Message is a catalog key used as a printf
// format with Args.
type Rule struct {
	Message string
	Args    []interface{}
	Check   func(value string, values Values) bool
}

var shared = NewValidator()

// Required fails on empty or whitespace-only values.
func Required(message string) Rule {
	return Rule{
		Message: message,
		Check: func(value string, _ Values) bool {
			return strings.TrimSpace(value) != ""
		},
	}
}

// MinLength counts runes, not bytes. Empty values pass; pair with Required.
func MinLength(n int) Rule {
	return Rule{
		Message: "Must be at least %d characters",
		Args:    []interface{}{n},
		Check: func(value string, _ Values) bool {
			return value == "" || len([]rune(value)) >= n
		},
	}
}

// MinNumber fails when the value is not a number or is below min.
func MinNumber(min int64) Rule {
	return Rule{
		Message: "Must be a number of at least %d",
		Args:    []interface{}{min},
		Check: func(value string, _ Values) bool {
			if value == "" {
				return true
			}
			d, err := decimal.NewFromString(value)
			if err != nil {
				return false
			}
			return d.GreaterThanOrEqual(decimal.NewFromInt(min))
		},
	}
}

func Email() Rule {
	return Rule{
		Message: "Invalid email address",
		Check: func(value string, _ Values) bool {
			return value == "" || shared.Var(value, "email") == nil
		},
	}
}

// EqualsField compares against the untrimmed value of another field. Use it
// on secret fields so both sides are compared as submitted.
func EqualsField(other, message string) Rule {
	return Rule{
		Message: message,
		Check: func(value string, values Values) bool {
			return value == values.Raw(other)
		},
	}
}

func OneOf(options ...string) Rule {
	allowed := make([]string, len(options))
	copy(allowed, options)
	return Rule{
		Message: "Please choose a valid option",
		Check: func(value string, _ Values) bool {
			if value == "" {
				return true
			}
			for _, option := range allowed {
				if value == option {
					return true
				}
			}
			return false
		},
	}
}

// Custom wraps an arbitrary predicate. Empty values pass.
func Custom(message string, check func(value string) bool) Rule {
	return Rule{
		Message: message,
		Check: func(value string, _ Values) bool {
			return value == "" || check(value)
		},
	}
}

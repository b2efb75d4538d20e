package validator

import (
	"github.com/crandicha/acncheck/pkg/checksum"
)

// ValidACN validates the check digit of an Australian Company Number.
// Spaces are ignored, any other non-digit character fails the rule.
func ValidACN(opts ...Config[struct{}]) Rule {
	custom := resolve[struct{}](opts, nil)

	return Rule{
		Name: NameValidACN,
		Validator: func(value string) bool {
			return checksum.Valid(StripSpaces(value))
		},
		Message: message(custom, "Value is not a valid ACN number"),
	}
}

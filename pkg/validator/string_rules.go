package validator

import (
	"fmt"
	"unicode/utf8"
)

const (
	DefaultMinLength = 1
	DefaultMaxLength = 100
)

// MinLengthParams configures MinLength.
type MinLengthParams struct {
	MinLength int
}

// MaxLengthParams configures MaxLength.
type MaxLengthParams struct {
	MaxLength int
}

// MinLength validates that the value holds at least MinLength characters once
// white space is removed. A minimum of zero or less accepts everything.
func MinLength(opts ...Config[MinLengthParams]) Rule {
	params := MinLengthParams{MinLength: DefaultMinLength}
	custom := resolve(opts, &params)
	min := params.MinLength

	return Rule{
		Name: NameMinLength,
		Validator: func(value string) bool {
			return utf8.RuneCountInString(StripSpaces(value)) >= min
		},
		Message: message(custom, fmt.Sprintf("Value must be at least %d characters long", min)),
	}
}

// MaxLength validates that the value holds at most MaxLength characters once
// white space is removed. A negative maximum rejects everything.
func MaxLength(opts ...Config[MaxLengthParams]) Rule {
	params := MaxLengthParams{MaxLength: DefaultMaxLength}
	custom := resolve(opts, &params)
	max := params.MaxLength

	return Rule{
		Name: NameMaxLength,
		Validator: func(value string) bool {
			return utf8.RuneCountInString(StripSpaces(value)) <= max
		},
		Message: message(custom, fmt.Sprintf("Value must be at most %d characters long", max)),
	}
}

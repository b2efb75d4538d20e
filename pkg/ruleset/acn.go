package ruleset

import "github.com/crandicha/acncheck/pkg/validator"

const (
	// ACNLength is the number of digits in an Australian Company Number.
	ACNLength = 9
	// ACNGroupSize is the digit group size of the printed 3-3-3 layout.
	ACNGroupSize = 3
	// ACNSuccessMessage is reported when an ACN passes every rule.
	ACNSuccessMessage = "Valid ACN Number"
)

// ACN returns the ACN pipeline: exact length, 3-3-3 grouping, numeric, and
// checksum, in that order so cheap shape checks run before the checksum.
func ACN() []validator.Rule {
	return []validator.Rule{
		validator.MinLength(validator.Config[validator.MinLengthParams]{
			Parameters: &validator.MinLengthParams{MinLength: ACNLength},
		}),
		validator.MaxLength(validator.Config[validator.MaxLengthParams]{
			Parameters: &validator.MaxLengthParams{MaxLength: ACNLength},
		}),
		validator.WhitespaceEveryNthCharacter(validator.Config[validator.WhitespaceParams]{
			Parameters: &validator.WhitespaceParams{NthCharacter: ACNGroupSize},
		}),
		validator.NumberOnly(),
		validator.ValidACN(),
	}
}

// ACNSet is the declarative form of ACN.
func ACNSet() Set {
	return Set{
		Name:           "acn",
		SuccessMessage: ACNSuccessMessage,
		Rules: []Definition{
			{Rule: validator.NameMinLength, Parameters: map[string]int{validator.ParamMinLength: ACNLength}},
			{Rule: validator.NameMaxLength, Parameters: map[string]int{validator.ParamMaxLength: ACNLength}},
			{Rule: validator.NameWhitespaceEveryNthCharacter, Parameters: map[string]int{validator.ParamNthCharacter: ACNGroupSize}},
			{Rule: validator.NameNumberOnly},
			{Rule: validator.NameValidACN},
		},
	}
}

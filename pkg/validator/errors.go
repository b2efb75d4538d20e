package validator

import "errors"

var (
	// ErrUnknownRule is returned by Build for a rule name with no constructor.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrUnknownParameter is returned by Build for a parameter the rule does not accept.
	ErrUnknownParameter = errors.New("unknown rule parameter")
)

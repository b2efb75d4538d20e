package ruleset

import "errors"

var (
	// ErrParse is returned when a definition document cannot be decoded.
	ErrParse = errors.New("failed to parse rule set")

	// ErrRead is returned when a definition file cannot be read.
	ErrRead = errors.New("failed to read rule set file")

	// ErrInvalidRule is returned when a definition does not describe a buildable rule.
	ErrInvalidRule = errors.New("invalid rule definition")
)

package validator

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	DefaultNthCharacter = 3

	// whitespaceGroups is fixed: the rule describes the 3-3-3 layout of a
	// printed ACN and does not scale the group count with NthCharacter.
	whitespaceGroups = 3
)

// WhitespaceParams configures WhitespaceEveryNthCharacter.
type WhitespaceParams struct {
	NthCharacter int
}

// WhitespaceEveryNthCharacter validates how a value is grouped with spaces.
// A value without white space passes. Otherwise it must be exactly three
// groups of NthCharacter word characters ([0-9A-Za-z_]) separated by single
// spaces. A group size below one only accepts values without white space.
func WhitespaceEveryNthCharacter(opts ...Config[WhitespaceParams]) Rule {
	params := WhitespaceParams{NthCharacter: DefaultNthCharacter}
	custom := resolve(opts, &params)
	n := params.NthCharacter

	return Rule{
		Name: NameWhitespaceEveryNthCharacter,
		Validator: func(value string) bool {
			if strings.IndexFunc(value, unicode.IsSpace) < 0 {
				return true
			}
			return matchGroups(value, n, whitespaceGroups)
		},
		Message: message(custom, fmt.Sprintf("Value must contain whitespace every %d character", n)),
	}
}

// matchGroups is the equivalent of ^\w{size}( \w{size}){count-1}$.
func matchGroups(value string, size, count int) bool {
	if size <= 0 {
		return false
	}
	groups := strings.Split(value, " ")
	if len(groups) != count {
		return false
	}
	for _, g := range groups {
		if len(g) != size {
			return false
		}
		for i := 0; i < len(g); i++ {
			if !isWordByte(g[i]) {
				return false
			}
		}
	}
	return true
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

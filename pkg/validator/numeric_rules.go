package validator

import (
	"math"
	"strconv"
)

// NumberOnly validates that the value, with white space removed, parses as a
// finite real number.
func NumberOnly(opts ...Config[struct{}]) Rule {
	custom := resolve[struct{}](opts, nil)

	return Rule{
		Name: NameNumberOnly,
		Validator: func(value string) bool {
			f, err := strconv.ParseFloat(StripSpaces(value), 64)
			if err != nil {
				return false
			}
			return !math.IsInf(f, 0) && !math.IsNaN(f)
		},
		Message: message(custom, "Value must be a number"),
	}
}

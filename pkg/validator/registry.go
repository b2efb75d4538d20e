package validator

import (
	"fmt"
	"slices"
	"sort"
)

// Parameter names accepted by Build.
const (
	ParamMinLength    = "minLength"
	ParamMaxLength    = "maxLength"
	ParamNthCharacter = "nthCharacter"
)

type builder struct {
	params []string
	build  func(params map[string]int, message string) Rule
}

var builders = map[string]builder{
	NameMinLength: {
		params: []string{ParamMinLength},
		build: func(p map[string]int, msg string) Rule {
			cfg := Config[MinLengthParams]{CustomMessage: msg}
			if v, ok := p[ParamMinLength]; ok {
				cfg.Parameters = &MinLengthParams{MinLength: v}
			}
			return MinLength(cfg)
		},
	},
	NameMaxLength: {
		params: []string{ParamMaxLength},
		build: func(p map[string]int, msg string) Rule {
			cfg := Config[MaxLengthParams]{CustomMessage: msg}
			if v, ok := p[ParamMaxLength]; ok {
				cfg.Parameters = &MaxLengthParams{MaxLength: v}
			}
			return MaxLength(cfg)
		},
	},
	NameWhitespaceEveryNthCharacter: {
		params: []string{ParamNthCharacter},
		build: func(p map[string]int, msg string) Rule {
			cfg := Config[WhitespaceParams]{CustomMessage: msg}
			if v, ok := p[ParamNthCharacter]; ok {
				cfg.Parameters = &WhitespaceParams{NthCharacter: v}
			}
			return WhitespaceEveryNthCharacter(cfg)
		},
	},
	NameNumberOnly: {
		build: func(_ map[string]int, msg string) Rule {
			return NumberOnly(Config[struct{}]{CustomMessage: msg})
		},
	},
	NameValidACN: {
		build: func(_ map[string]int, msg string) Rule {
			return ValidACN(Config[struct{}]{CustomMessage: msg})
		},
	},
}

// Build constructs a rule by name. It is the bridge between declarative rule
// definitions and the typed constructors. Absent parameters use the defaults;
// present ones are used as given, zero included.
func Build(name string, params map[string]int, customMessage string) (Rule, error) {
	b, ok := builders[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	for key := range params {
		if !slices.Contains(b.params, key) {
			return Rule{}, fmt.Errorf("%w: %q for rule %q", ErrUnknownParameter, key, name)
		}
	}
	return b.build(params, customMessage), nil
}

// Names returns the names accepted by Build, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

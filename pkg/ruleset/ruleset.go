package ruleset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crandicha/acncheck/pkg/validator"
)

// Definition describes one rule of a set.
type Definition struct {
	Rule       string         `yaml:"rule" json:"rule"`
	Parameters map[string]int `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Message    string         `yaml:"message,omitempty" json:"message,omitempty"`
}

// Set is an ordered, named list of rule definitions.
type Set struct {
	Name           string       `yaml:"name" json:"name"`
	SuccessMessage string       `yaml:"successMessage,omitempty" json:"successMessage,omitempty"`
	Rules          []Definition `yaml:"rules" json:"rules"`
}

// Parse decodes a YAML or JSON rule set.
func Parse(data []byte) (Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return Set{}, errors.Join(ErrParse, err)
	}
	return set, nil
}

// Load reads and parses a rule set file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, errors.Join(ErrRead, err)
	}
	set, err := Parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Build turns every definition into a rule, keeping their order.
func (s Set) Build() ([]validator.Rule, error) {
	rules := make([]validator.Rule, 0, len(s.Rules))
	for i, def := range s.Rules {
		rule, err := validator.Build(def.Rule, def.Parameters, def.Message)
		if err != nil {
			return nil, fmt.Errorf("%w: rules[%d]: %w", ErrInvalidRule, i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Marshal encodes the set as YAML.
func (s Set) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

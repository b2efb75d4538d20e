package validator

import (
	"strings"
	"unicode"
)

// Rule names reported in the breakdown view.
const (
	NameMinLength                   = "minLength"
	NameMaxLength                   = "maxLength"
	NameWhitespaceEveryNthCharacter = "whitespaceEveryNthCharacter"
	NameNumberOnly                  = "numberOnly"
	NameValidACN                    = "isValidACNNumber"
)

// Rule represents a single validation rule.
// The message is rendered when the rule is built and never changes afterwards.
type Rule struct {
	Name      string
	Validator func(value string) bool
	Message   string
}

// Test runs the predicate against value. A rule without a predicate fails.
func (r Rule) Test(value string) bool {
	if r.Validator == nil {
		return false
	}
	return r.Validator(value)
}

// Check evaluates the rule and reports the result under the rule name.
func (r Rule) Check(value string) Verdict {
	return Verdict{Success: r.Test(value), Message: r.Name}
}

// Verdict is the outcome of a single rule or of a whole pipeline.
type Verdict struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Pending returns the verdict reported for empty input.
func Pending() Verdict {
	return Verdict{}
}

// IsPending reports whether v is the empty-input verdict.
// Failed rules always carry a message, so the two never collide.
func (v Verdict) IsPending() bool {
	return !v.Success && v.Message == ""
}

// Config carries the optional construction arguments of a rule.
// A nil Parameters keeps the rule's defaults; a non-nil one is used as given,
// zero and negative values included.
type Config[P any] struct {
	Parameters    *P
	CustomMessage string
}

// resolve copies the supplied parameters over the defaults in params and
// returns the custom message. Only the first Config is considered.
func resolve[P any](opts []Config[P], params *P) string {
	if len(opts) == 0 {
		return ""
	}
	if opts[0].Parameters != nil && params != nil {
		*params = *opts[0].Parameters
	}
	return opts[0].CustomMessage
}

func message(custom, def string) string {
	if custom != "" {
		return custom
	}
	return def
}

// Custom builds a rule from a host-defined predicate.
func Custom(name, message string, fn func(value string) bool) Rule {
	return Rule{Name: name, Validator: fn, Message: message}
}

// StripSpaces removes every white space character from s.
func StripSpaces(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Package validator provides composable rules for validating a single text
// field, together with the pipeline that evaluates them.
//
// A Rule is a small immutable value: a name identifying the rule kind, a pure
// predicate over the raw field value, and a message rendered once when the
// rule is built. Every exported constructor accepts an optional Config with
// typed parameters and a custom message; missing parameters fall back to the
// documented defaults.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `format_rules.go`, `identifier_rules.go`). The
// pipeline in `pipeline.go` has two entry points:
//
//   - Evaluate   – fail-fast summary: the first failing rule wins
//   - EvaluateAll – breakdown: every rule runs, one Verdict per rule
//
// Rules that measure length or parse numbers remove white space first. The
// grouping rule looks at the raw value because it validates the spaces
// themselves.
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.MinLength(validator.Config[validator.MinLengthParams]{
//	        Parameters: &validator.MinLengthParams{MinLength: 9},
//	    }),
//	    validator.MaxLength(validator.Config[validator.MaxLengthParams]{
//	        Parameters: &validator.MaxLengthParams{MaxLength: 9},
//	    }),
//	    validator.WhitespaceEveryNthCharacter(),
//	    validator.NumberOnly(),
//	    validator.ValidACN(),
//	}
//
//	summary := validator.Evaluate(rules, "000 000 019", "Valid ACN Number")
//	breakdown := validator.EvaluateAll(rules, "000 000 019")
//
// # Empty input
//
// Evaluate reports an empty value as the pending verdict {false, ""}. Every
// failing rule carries a non-empty message, so Verdict.IsPending tells the
// two apart.
//
// # Error Handling
//
// Predicates never fail: unusual input simply makes a rule return false, and
// out-of-range parameters produce rules that always pass or always fail.
// Parameters are used exactly as supplied; only a nil Parameters pointer
// selects the defaults.
// Build returns ErrUnknownRule or ErrUnknownParameter for bad definitions.
//
// All constructors are stateless and the resulting rules are safe for
// concurrent use.
package validator

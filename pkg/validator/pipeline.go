package validator

// DefaultSuccessMessage is the success message hosts use when none is configured.
const DefaultSuccessMessage = "Valid"

// Evaluate runs rules in order and stops at the first failure.
//
// An empty value yields the pending verdict without running any rule. A
// failure reports that rule's message. When every rule passes the verdict
// carries successMessage as given, even when it is empty.
func Evaluate(rules []Rule, value, successMessage string) Verdict {
	if value == "" {
		return Pending()
	}

	for _, rule := range rules {
		if !rule.Test(value) {
			return Verdict{Success: false, Message: rule.Message}
		}
	}

	return Verdict{Success: true, Message: successMessage}
}

// EvaluateAll runs every rule against value, including the empty value, and
// returns one verdict per rule in the same order. Each verdict carries the
// rule name rather than its failure message.
func EvaluateAll(rules []Rule, value string) []Verdict {
	verdicts := make([]Verdict, 0, len(rules))
	for _, rule := range rules {
		verdicts = append(verdicts, rule.Check(value))
	}
	return verdicts
}

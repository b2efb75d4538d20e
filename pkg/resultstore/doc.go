// Package resultstore keeps the validation verdicts of a single text field
// in step with its value.
//
// A Store is configured with a read accessor for the current value, an
// ordered list of rules and an optional success message. It exposes two
// derived views:
//
//   - Summary   – the fail-fast verdict of validator.Evaluate
//   - Breakdown – one verdict per rule from validator.EvaluateAll
//
// Both views are pure functions of the value and the configuration. They are
// memoized on the value snapshot (see pkg/reactive), so repeated observations
// of an unchanged value never run the rules again, and any change to the value
// is picked up on the next observation. Configure replaces the whole
// configuration, cached results included.
//
// Snapshot reads the value once and derives both views from that single
// read, so the two can never describe different inputs.
//
// # Usage
//
//	input := reactive.NewSignal("")
//	store := resultstore.New()
//	store.Configure(input.Get, ruleset.ACN(), ruleset.ACNSuccessMessage)
//
//	input.Set("000 000 019")
//	store.Summary()   // {true "Valid ACN Number"}
//	store.Breakdown() // five passing verdicts, one per rule
//
// A Store that was never configured reports the pending verdict and an empty
// breakdown. The store never writes to the value it observes.
package resultstore

// Package reactive provides the two primitives the result store is built on:
// a writable Signal owned by the host, and a Computed value derived from a
// source accessor with memoized recomputation.
//
// Recomputation is pull based. Nothing runs when a Signal changes; the next
// Computed.Get reads its source, and only if the snapshot differs from the
// cached ones does the compute function run again. Results are keyed by the
// snapshot itself through pkg/memo, so comparing inputs is equality on the
// key type.
//
// # Usage
//
//	input := reactive.NewSignal("")
//	length := reactive.NewComputed(input.Get, func(s string) int {
//	    return len(s)
//	})
//
//	input.Set("abc")
//	length.Get() // computes 3
//	length.Get() // cached
//	input.Set("abcd")
//	length.Get() // recomputes 4
package reactive

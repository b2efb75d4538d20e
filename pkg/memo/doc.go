// Package memo provides a generic, thread-safe memoization cache with LRU
// eviction.
//
// A Cache maps input snapshots to computed results. GetOrCompute returns the
// stored result for a key, or runs the supplied function once and keeps its
// result. Capacity bounds how many snapshots are remembered: a capacity of
// one keeps only the most recent input, which is the classic "recompute when
// the input changes" behaviour of a derived value.
//
// # Usage
//
//	c := memo.New[string, int](1)
//
//	n := c.GetOrCompute("abc", func(s string) int { return len(s) }) // computes
//	n = c.GetOrCompute("abc", func(s string) int { return len(s) })  // cached
//
//	c.Clear() // forget everything, e.g. when the computation itself changes
//
// # Concurrency
//
// All methods are safe for concurrent use. GetOrCompute holds the cache lock
// while the compute function runs so a result is computed at most once per
// key; compute functions must not call back into the same cache.
//
// # Eviction
//
// When the cache exceeds its capacity the least recently used entry is
// dropped. An optional callback registered with SetEvictCallback observes
// every eviction, including those triggered by Remove and Clear.
package memo

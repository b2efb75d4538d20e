// Package checksum implements the weighted modulo-10 check digit used by
// Australian Company Numbers and identifiers of the same family.
//
// The last digit of an identifier is its check digit. Every preceding digit
// is weighted by its distance from the check digit, so for a nine digit ACN
// the weights run 8, 7, ... 1 from left to right. The weighted sum is folded
// into a check digit with (10 - sum%10) % 10.
//
// Weights are derived from the input length rather than fixed at eight, so
// the same functions work for any identifier of at least one digit.
//
// # Usage
//
//	digits, ok := checksum.Digits("004085616")
//	if ok && checksum.IsValid(digits) {
//	    // well-formed identifier
//	}
//
//	// Compute the check digit for a body.
//	d := checksum.CheckDigit([]int{0, 0, 4, 0, 8, 5, 6, 1}) // 6
//
// All functions are pure and safe for concurrent use.
package checksum

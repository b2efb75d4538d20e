package checksum

// IsValid reports whether the last element of digits is the correct check
// digit for the elements before it.
// A single digit has an empty body, so only 0 passes. An empty slice has no
// check digit and is never valid.
func IsValid(digits []int) bool {
	n := len(digits)
	if n == 0 {
		return false
	}
	return CheckDigit(digits[:n-1]) == digits[n-1]
}

// CheckDigit returns the expected check digit for body.
// The element at index i is weighted by len(body)-i.
func CheckDigit(body []int) int {
	sum := 0
	weight := len(body)
	for _, d := range body {
		sum += d * weight
		weight--
	}
	// Go keeps the sign of the dividend, fold negatives back into 0..9.
	remainder := ((sum % 10) + 10) % 10
	return (10 - remainder) % 10
}

// Digits decomposes s into its decimal digits.
// It returns false when s is empty or contains anything other than ASCII digits.
func Digits(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits = append(digits, int(c-'0'))
	}
	return digits, true
}

// Valid is a shorthand for Digits followed by IsValid.
func Valid(s string) bool {
	digits, ok := Digits(s)
	if !ok {
		return false
	}
	return IsValid(digits)
}

package common

// Helpers for canonical decimal magnitudes: non-empty strings of ASCII digits
// without leading zeros, "0" being the only representation of zero.

// IsCanonical reports whether s is a canonical non-negative decimal magnitude.
func IsCanonical(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == '0' {
		return len(s) == 1
	}
	return IsDigits(s)
}

// IsDigits reports whether s is non-empty and consists of ASCII digits only.
func IsDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// TrimZeros strips leading zeros, returning "0" for an all-zero or empty input.
func TrimZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	if len(s) == 0 {
		return "0"
	}
	return s[i:]
}

// CmpDigits compares two canonical magnitudes.
func CmpDigits(a, b string) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// IsEven reports whether the canonical magnitude s is even.
func IsEven(s string) bool {
	return (s[len(s)-1]-'0')&1 == 0
}

package utils

import "strings"

// NormalizePhone converts a raw phone string to the canonical leading-zero
// 11-digit form. Recognized shapes, in order:
//
//	0XXXXXXXXXX (already normalized)  -> returned as-is
//	XXXXXXXXXX  (bare 10 digits)      -> "0" prepended
//	91XXXXXXXXXX (country prefix)     -> "91" dropped, "0" prepended
//
// Anything else falls through and the ORIGINAL input is returned unchanged,
// spaces, dashes and all. Callers that need a guarantee must check
// IsNormalizedPhone on the result.
func NormalizePhone(raw string) string {
	digits := stripNonDigits(raw)

	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		return digits
	case len(digits) == 10 && !strings.HasPrefix(digits, "0"):
		return "0" + digits
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return "0" + digits[2:]
	}

	return raw
}

// IsNormalizedPhone reports whether s is in the canonical form: exactly 11
// digits starting with 0.
func IsNormalizedPhone(s string) bool {
	if len(s) != 11 || s[0] != '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

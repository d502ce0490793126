package checkout

import (
	"math"
	"strconv"
	"strings"
)

// MinorUnits converts a major-unit amount to the gateway's integer minor
// units: round(amount * 100). 199.99 must come out as exactly 19999.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ParsePrice extracts a decimal from a display price string by stripping
// everything that is not a digit or a decimal point ("₹1,250.50" -> 1250.50).
// ok is false when nothing parsable remains; callers keep the zero value in
// that case rather than failing the order, and record that the fallback
// triggered.
func ParsePrice(s string) (value float64, ok bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAmount renders a decimal amount the way the commerce backend expects
// money strings: two fractional digits, no symbol.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

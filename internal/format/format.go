package format

import (
	"fmt"
	"math"
	"strings"
)

// Price renders a catalog price for display, e.g. 1234.5 => "$1,234.50".
// Prices are non-negative by construction; a stray negative renders with
// a leading minus rather than being masked.
func Price(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	major := cents / 100
	minor := cents % 100
	out := "$" + thousandSep(major) + fmt.Sprintf(".%02d", minor)
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	return out
}

// Slug lowercases a product name into an anchor-safe fragment id.
func Slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

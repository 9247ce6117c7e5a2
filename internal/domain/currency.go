package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// ToCents converts an exact major-unit amount to minor units, rounding at
// the 2-decimal boundary. This is the single major-to-minor conversion
// point on the write path.
func ToCents(major decimal.Decimal) int64 {
	return major.Mul(centsPerUnit).Round(0).IntPart()
}

// FromCents converts a stored minor-unit amount back to major units for
// display. This is the single minor-to-major conversion point on the read
// path.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// FormatCurrency renders a minor-unit amount as a US dollar display string,
// e.g. 123456789 -> "$1,234,567.89".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

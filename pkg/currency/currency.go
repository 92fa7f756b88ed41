// Package currency provides formatting and parsing of currency strings as
// they appear in the schedule and ledger files.
package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Format returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Format(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Parse extracts the numeric value from a currency string by stripping every
// character that is not a digit or a decimal point, e.g. "$9,189.34" parses to
// 9189.34. This is how values written by Format are read back from the flat
// files.
func Parse(s string) (float64, error) {
	var builder strings.Builder
	negative := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			builder.WriteRune(r)
		case r == '-' && builder.Len() == 0:
			negative = true
		}
	}
	cleaned := builder.String()
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric value in %q", s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("unparseable currency value %q: %v", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d.InexactFloat64(), nil
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}

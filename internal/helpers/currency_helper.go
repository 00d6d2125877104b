package helpers

import (
	"fmt"
	"math"
	"strings"
)

// usdDecimalPlaces is the number of fraction digits shown for USD amounts.
const usdDecimalPlaces = 2

// DollarsToCents converts a dollar amount to cents, rounding half away from
// zero. Amounts whose cent value falls outside the int64 range saturate at
// the int64 bounds, where the float conversion is unspecified.
func DollarsToCents(amount float64) int64 {
	multiplier := math.Pow(10, float64(usdDecimalPlaces))
	cents := math.Round(amount * multiplier)

	switch {
	case math.IsNaN(cents):
		return 0
	case cents >= math.MaxInt64:
		return math.MaxInt64
	case cents <= math.MinInt64:
		return math.MinInt64
	}
	return int64(cents)
}

// FormatUSD formats an amount in cents to a human-readable USD string,
// e.g. 160662 -> "$1,606.62".
func FormatUSD(amountCents int64) string {
	divisor := math.Pow(10, float64(usdDecimalPlaces))
	amount := float64(amountCents) / divisor

	formatted := fmt.Sprintf("%.*f", usdDecimalPlaces, amount)

	parts := strings.Split(formatted, ".")
	integerPart := addThousandSeparators(parts[0], ",")
	if len(parts) > 1 {
		return "$" + integerPart + "." + parts[1]
	}
	return "$" + integerPart
}

// FormatPercent formats a ratio as a percentage with one decimal place,
// e.g. 1.1176 -> "111.8%".
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// addThousandSeparators adds thousand separators to a number string
func addThousandSeparators(numStr string, separator string) string {
	// Handle negative numbers
	negative := false
	if strings.HasPrefix(numStr, "-") {
		negative = true
		numStr = numStr[1:]
	}

	// Add separators from right to left
	var result []rune
	for i, r := range []rune(numStr) {
		if i > 0 && (len(numStr)-i)%3 == 0 {
			result = append(result, []rune(separator)...)
		}
		result = append(result, r)
	}

	if negative {
		return "-" + string(result)
	}
	return string(result)
}

package common

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats a float as a dollar amount with comma separators and
// two decimals: -1234.5 -> "-$1,234.50".
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + printer.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPrice formats a price the way a browser renders it for en-US with at
// most two fraction digits: 50123.456 -> "50,123.46", 50000.5 -> "50,000.5".
func FormatPrice(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatSignedPct formats a percentage with +/- prefix
func FormatSignedPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FormatBillions formats a raw dollar amount in billions with the given precision.
func FormatBillions(v float64, precision int) string {
	return fmt.Sprintf("$%.*fB", precision, v/1e9)
}

// Excerpt returns at most the first n runes of s followed by "...".
func Excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}

package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatDollars formats an amount as US dollars with two decimal places,
// e.g. "$1,234.56" or "-$1,234.56".
func FormatDollars(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	whole, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	return sign + "$" + groupDigits(whole) + "." + cents
}

// groupDigits inserts thousands separators into a string of digits.
func groupDigits(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
	}

	// Beyond int64
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

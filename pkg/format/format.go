// Package format renders amounts and dates the way the portal displays them (vi-VN).
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is the Vietnamese dong sign; it follows the amount after a no-break space.
const CurrencySymbol = "₫"

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "15:04 02/01/2006"
)

var printer = message.NewPrinter(language.Vietnamese)

// FormatNumber groups digits with the vi-VN separator: 5000000 -> "5.000.000".
func FormatNumber(n int64) string {
	return printer.Sprint(number.Decimal(n))
}

// FormatCurrency renders an amount in VND: 5000000 -> "5.000.000 ₫".
func FormatCurrency(amount int64) string {
	return FormatNumber(amount) + " " + CurrencySymbol
}

// FormatDate renders t as dd/MM/yyyy. The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatDateTime renders t as HH:mm dd/MM/yyyy.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// Remaining is amount minus paid. It is not clamped: overpayment yields a negative value.
func Remaining(amount, paid int64) int64 {
	return amount - paid
}

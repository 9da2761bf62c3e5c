package utils

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

var priceUnitLabels = map[string]string{
	"juta":   "Juta",
	"miliar": "Miliar",
}

// FormatPrice renders an amount with its unit the Indonesian way, e.g.
// (2.5, "miliar") -> "Rp 2,5 Miliar". At most two fraction digits are shown.
func FormatPrice(amount decimal.Decimal, unit string) string {
	value := amount.Round(2).InexactFloat64()
	formatted := idPrinter.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))

	label, ok := priceUnitLabels[unit]
	if !ok {
		label = unit
	}
	if label == "" {
		return "Rp " + formatted
	}
	return "Rp " + formatted + " " + label
}

// FormatPriceString is FormatPrice for the raw decimal strings of the editor.
// Unparseable input is returned as typed.
func FormatPriceString(amount, unit string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	return FormatPrice(d, unit)
}

// FormatDate renders t as an id-ID short date (day/month/year, no padding)
func FormatDate(t time.Time) string {
	return t.Format("2/1/2006")
}

package common

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	enPrinter = message.NewPrinter(language.English)
	enTitle   = cases.Title(language.English)
)

// FormatDecimal formats v with thousands separators and the given number of decimals.
func FormatDecimal(v float64, decimals int) string {
	return enPrinter.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// FormatInteger formats v with thousands separators.
func FormatInteger(v int64) string {
	return enPrinter.Sprintf("%d", v)
}

// FormatUSD formats v as a dollar amount with thousands separators, e.g. "$1,234.50".
func FormatUSD(v float64) string {
	return "$" + FormatDecimal(v, 2)
}

// FormatSigned formats v with an explicit sign and thousands separators.
func FormatSigned(v float64, decimals int) string {
	if v >= 0 {
		return "+" + FormatDecimal(v, decimals)
	}
	return FormatDecimal(v, decimals)
}

// FormatSignedPercent formats v as a signed percentage, e.g. "+1.25%".
func FormatSignedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// TitleCase upper-cases the first letter of each word and lower-cases the rest.
func TitleCase(s string) string {
	return enTitle.String(strings.TrimSpace(s))
}

package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySuffix = " Kč"

// Separators of the cs-CZ locale, read from the CLDR data once.
var groupSeparator, decimalSeparator = localeSeparators(language.Czech)

// localeSeparators prints 1234567.5 in tag's locale and picks the grouping
// and decimal symbols out of the result.
func localeSeparators(tag language.Tag) (group, dec string) {
	group, dec = " ", ","
	s := message.NewPrinter(tag).Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1)))
	if i, j := strings.IndexByte(s, '1'), strings.IndexByte(s, '2'); i >= 0 && j > i+1 {
		group = s[i+1 : j]
	}
	if i, j := strings.IndexByte(s, '7'), strings.LastIndexByte(s, '5'); i >= 0 && j > i+1 {
		dec = s[i+1 : j]
	}
	return group, dec
}

// FormatPrice formats an amount the Czech way with two decimals and the
// currency suffix, e.g. "292,00 Kč". Formatting works on the exact decimal,
// so arbitrarily large amounts keep every digit.
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(r)
	}
	b.WriteString(decimalSeparator)
	b.WriteString(frac)
	b.WriteString(currencySuffix)
	return b.String()
}

// FormatAmount renders an amount for machine consumers: two decimals, dot
// separator, no grouping.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatDate formats a date as the cs-CZ locale does ("18. 10. 2026").
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d. %d. %d", t.Day(), int(t.Month()), t.Year())
}

// FormatQuantity prints a quantity without trailing zeros.
func FormatQuantity(q decimal.Decimal) string {
	return q.String()
}

package document

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Input length caps applied after normalization, matching the form masks.
const (
	maxQuantityChars = 10
	maxPriceChars    = 12
)

// VATRate is a Czech VAT rate in percent.
type VATRate int

const (
	VAT0  VATRate = 0
	VAT10 VATRate = 10
	VAT12 VATRate = 12
	VAT15 VATRate = 15
	VAT21 VATRate = 21
)

// VATRates lists the selectable rates, standard rate first.
func VATRates() []VATRate {
	return []VATRate{VAT21, VAT15, VAT12, VAT10, VAT0}
}

// Decimal returns the rate as a decimal percentage.
func (r VATRate) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(r))
}

// ParseVATRate parses a rate such as "21" or "21%". Anything that is not one
// of the legal rates yields 0 and false.
func ParseVATRate(raw string) (VATRate, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%")))
	if err != nil {
		return VAT0, false
	}
	for _, r := range VATRates() {
		if int(r) == n {
			return r, true
		}
	}
	return VAT0, false
}

// NormalizeNumeric reduces localized numeric input to a plain dot-decimal
// string. Characters other than digits and separators are dropped, commas
// become dots and only the first separator is kept: "1,5" and "1.5" both give
// "1.5", "1.2.3" gives "1.23".
func NormalizeNumeric(raw string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',':
			if !seenDot {
				b.WriteByte('.')
				seenDot = true
			}
		}
	}
	return b.String()
}

// ParseAmount parses localized numeric input. Empty or unparseable input is
// zero, never an error, so a half-filled form still shows totals.
func ParseAmount(raw string) decimal.Decimal {
	return parseNormalized(NormalizeNumeric(raw))
}

// ParseQuantity is ParseAmount with the quantity field's length cap.
func ParseQuantity(raw string) decimal.Decimal {
	return parseNormalized(truncate(NormalizeNumeric(raw), maxQuantityChars))
}

// ParsePrice is ParseAmount with the price field's length cap.
func ParsePrice(raw string) decimal.Decimal {
	return parseNormalized(truncate(NormalizeNumeric(raw), maxPriceChars))
}

func parseNormalized(s string) decimal.Decimal {
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

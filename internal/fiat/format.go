package fiat

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders a fiat amount with grouping separators and the currency
// symbol placed per the currency's metadata. Unknown codes render as a plain
// grouped number; the caller's suffix label already carries the code.
func Format(amount decimal.Decimal, code string, decimals int32) string {
	meta, known := Lookup(code)
	if !known {
		meta = Currency{
			DecimalPlaces:     decimals,
			SymbolPosition:    SymbolBefore,
			ThousandSeparator: ",",
			DecimalSeparator:  ".",
		}
	}

	negative := amount.Sign() < 0
	fixed := amount.Abs().StringFixed(decimals)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	number := groupThousands(intPart, meta.ThousandSeparator)
	if fracPart != "" {
		number += meta.DecimalSeparator + fracPart
	}

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	switch {
	case meta.Symbol != "" && meta.SymbolPosition == SymbolAfter:
		b.WriteString(number)
		b.WriteString(meta.Symbol)
	case meta.Symbol != "":
		b.WriteString(meta.Symbol)
		b.WriteString(number)
	default:
		b.WriteString(number)
	}
	return b.String()
}

// groupThousands inserts the separator every three digits, right to left.
func groupThousands(digits, separator string) string {
	if separator == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	length := len(digits)
	for i := 0; i < length; i++ {
		if i > 0 && (length-i)%3 == 0 {
			b.WriteString(separator)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

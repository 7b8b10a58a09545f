package currency

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseHexWei parses a hexadecimal string into a wei amount. The "0x" prefix
// is optional and case does not matter.
func ParseHexWei(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")
	if trimmed == "" {
		return nil, fmt.Errorf("invalid hex amount %q", s)
	}

	wei, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex amount %q", s)
	}
	return wei, nil
}

// FromWei converts a wei amount into the given denomination, rounded to
// places decimal places (half away from zero). The result keeps full
// precision internally; trailing zeros are trimmed by decimal.String.
func FromWei(wei *big.Int, denom Denomination, places int32) (decimal.Decimal, error) {
	exact, err := FromWeiExact(wei, denom)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return exact.Round(places), nil
}

// FromWeiExact converts a wei amount into the given denomination without
// rounding.
func FromWeiExact(wei *big.Int, denom Denomination) (decimal.Decimal, error) {
	exp, err := denom.Exponent()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(wei, -exp), nil
}

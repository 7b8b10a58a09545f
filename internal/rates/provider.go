package rates

import (
	"context"

	"github.com/shopspring/decimal"
)

// Provider supplies native-to-fiat conversion rates.
type Provider interface {
	// GetConversionRate returns how many units of fiatSymbol one unit of
	// cryptoSymbol is worth. The rate is always positive; an unknown pair
	// or unavailable quote is an error.
	GetConversionRate(ctx context.Context, cryptoSymbol, fiatSymbol string) (decimal.Decimal, error)
}

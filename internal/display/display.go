// Package display converts raw hex wei amounts into human-readable currency
// strings for wallet UIs, optionally converting between the chain's native
// currency and a user-selected fiat currency.
package display

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cyphera/wallet-display/internal/currency"
	"github.com/cyphera/wallet-display/internal/fiat"
)

// MinDisplayAmount is rendered in place of "0" when a nonzero amount rounds
// to zero at the configured precision, so the UI never implies an amount is
// exactly zero when it is merely smaller than the display precision.
const MinDisplayAmount = "<0.000001"

const (
	defaultNativeDecimals = 6
	defaultFiatDecimals   = 2
)

// State carries the externally owned values the formatter reads: the user's
// selected fiat currency, the chain's native ticker, and the native-to-fiat
// conversion rate. RateKnown is false when no rate is available.
type State struct {
	CurrentCurrency string
	NativeCurrency  string
	ConversionRate  decimal.Decimal
	RateKnown       bool
}

// Options control a single formatting call. All fields are optional.
type Options struct {
	// DisplayValue bypasses conversion and is used verbatim as the value.
	DisplayValue string
	// Prefix is prepended to the assembled string.
	Prefix string
	// Suffix overrides the derived currency label.
	Suffix string
	// NumberOfDecimals overrides the rounding precision. Nil selects the
	// default: 6 for native-denomination values, 2 for fiat values.
	NumberOfDecimals *int32
	// Denomination selects the target unit scale for native-currency
	// conversion. Empty selects the major unit.
	Denomination currency.Denomination
	// Currency is the target currency code.
	Currency string
	// HideLabel suppresses the suffix entirely.
	HideLabel bool
}

// Parts is the structured breakdown of an assembled display string.
type Parts struct {
	Prefix string `json:"prefix"`
	Value  string `json:"value"`
	Suffix string `json:"suffix"`
}

// Format derives the display string for a hex wei amount. It returns the
// assembled string together with its prefix/value/suffix breakdown.
//
// The value is resolved in priority order: a caller-supplied DisplayValue,
// a native-denomination conversion, a fiat conversion through the state's
// rate, or - when no safe conversion path exists - an empty value.
// An error is returned only when a conversion path needs the hex amount and
// it does not parse.
func Format(input string, state State, opts Options) (string, Parts, error) {
	value, err := resolveValue(input, state, opts)
	if err != nil {
		return "", Parts{}, err
	}

	parts := Parts{
		Prefix: opts.Prefix,
		Value:  value,
		Suffix: resolveSuffix(opts),
	}

	assembled := parts.Prefix + parts.Value
	if parts.Suffix != "" {
		assembled += " " + parts.Suffix
	}
	return assembled, parts, nil
}

func resolveValue(input string, state State, opts Options) (string, error) {
	if opts.DisplayValue != "" {
		return opts.DisplayValue, nil
	}

	isNative := state.NativeCurrency != "" && strings.EqualFold(opts.Currency, state.NativeCurrency)
	isUserPreferred := opts.Currency != "" && strings.EqualFold(opts.Currency, state.CurrentCurrency)

	switch {
	case isNative || (!isUserPreferred && state.NativeCurrency == ""):
		return nativeValue(input, opts)
	case isUserPreferred && state.RateKnown:
		return fiatValue(input, state, opts)
	}

	// No safe conversion path: unknown currency relationship or no rate.
	return "", nil
}

// nativeValue converts the hex wei amount within the native denomination
// system, substituting the minimum-display sentinel when a nonzero amount
// rounds to zero.
func nativeValue(input string, opts Options) (string, error) {
	wei, err := currency.ParseHexWei(input)
	if err != nil {
		return "", err
	}

	denom := opts.Denomination
	if denom == "" {
		denom = currency.Ether
	}
	decimals := int32(defaultNativeDecimals)
	if opts.NumberOfDecimals != nil {
		decimals = *opts.NumberOfDecimals
	}

	amount, err := currency.FromWei(wei, denom, decimals)
	if err != nil {
		return "", err
	}

	value := amount.String()
	if value == "0" && wei.Sign() != 0 {
		value = MinDisplayAmount
	}
	return value, nil
}

// fiatValue converts the hex wei amount through the native currency into the
// target fiat currency using the state's conversion rate.
func fiatValue(input string, state State, opts Options) (string, error) {
	wei, err := currency.ParseHexWei(input)
	if err != nil {
		return "", err
	}

	decimals := int32(defaultFiatDecimals)
	if opts.NumberOfDecimals != nil {
		decimals = *opts.NumberOfDecimals
	}

	ether, err := currency.FromWeiExact(wei, currency.Ether)
	if err != nil {
		return "", err
	}
	amount := ether.Mul(state.ConversionRate).Round(decimals)

	return fiat.Format(amount, opts.Currency, decimals), nil
}

// resolveSuffix derives the trailing currency label. Test-network tickers
// keep their original casing; everything else is upper-cased.
func resolveSuffix(opts Options) string {
	if opts.HideLabel {
		return ""
	}
	if opts.Suffix != "" {
		return opts.Suffix
	}
	if opts.Currency == "" {
		return ""
	}
	if currency.IsTestNetworkTicker(opts.Currency) {
		return opts.Currency
	}
	return strings.ToUpper(opts.Currency)
}

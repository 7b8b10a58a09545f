package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/wallet-display/internal/currency"
)

func TestParseDenomination(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected currency.Denomination
		wantErr  bool
	}{
		{name: "wei", input: "wei", expected: currency.Wei},
		{name: "gwei uppercase", input: "GWEI", expected: currency.Gwei},
		{name: "eth", input: "eth", expected: currency.Ether},
		{name: "ether alias", input: "ether", expected: currency.Ether},
		{name: "surrounding whitespace", input: " eth ", expected: currency.Ether},
		{name: "unknown", input: "satoshi", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			denom, err := currency.ParseDenomination(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, denom)
		})
	}
}

func TestDenominationExponent(t *testing.T) {
	for denom, expected := range map[currency.Denomination]int32{
		currency.Wei:   0,
		currency.Gwei:  9,
		currency.Ether: 18,
	} {
		exp, err := denom.Exponent()
		require.NoError(t, err)
		assert.Equal(t, expected, exp)
	}

	_, err := currency.Denomination("FUEL").Exponent()
	assert.Error(t, err)
}

func TestIsTestNetworkTicker(t *testing.T) {
	assert.True(t, currency.IsTestNetworkTicker("SepoliaETH"))
	assert.True(t, currency.IsTestNetworkTicker("GoerliETH"))

	// The match is exact: differently cased variants are regular tickers.
	assert.False(t, currency.IsTestNetworkTicker("sepoliaeth"))
	assert.False(t, currency.IsTestNetworkTicker("SEPOLIAETH"))
	assert.False(t, currency.IsTestNetworkTicker("ETH"))
	assert.False(t, currency.IsTestNetworkTicker(""))
}

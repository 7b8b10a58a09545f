package currency

// testNetworkTickers holds the native ticker symbols of known test networks.
// These tickers carry meaningful mixed casing and must not be upper-cased
// when rendered as a suffix label.
var testNetworkTickers = map[string]struct{}{
	"GoerliETH":       {},
	"SepoliaETH":      {},
	"LineaETH":        {},
	"LineaSepoliaETH": {},
	"MegaETH":         {},
}

// IsTestNetworkTicker reports whether code is a known test-network native
// ticker. The match is exact: a differently cased variant is not a testnet
// ticker.
func IsTestNetworkTicker(code string) bool {
	_, ok := testNetworkTickers[code]
	return ok
}

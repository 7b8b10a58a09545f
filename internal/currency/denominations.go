package currency

import (
	"fmt"
	"strings"
)

// Denomination is a named unit scale within the native currency system.
type Denomination string

const (
	// Wei is the smallest unit of the native currency.
	Wei Denomination = "WEI"
	// Gwei is 10^9 wei.
	Gwei Denomination = "GWEI"
	// Ether is the major display unit, 10^18 wei.
	Ether Denomination = "ETH"
)

// denominationExponents maps each denomination to its power-of-ten scale in wei.
var denominationExponents = map[Denomination]int32{
	Wei:   0,
	Gwei:  9,
	Ether: 18,
}

// Exponent returns the power-of-ten wei scale for the denomination.
func (d Denomination) Exponent() (int32, error) {
	exp, ok := denominationExponents[d]
	if !ok {
		return 0, fmt.Errorf("unknown denomination %q", string(d))
	}
	return exp, nil
}

// ParseDenomination parses a denomination name, case-insensitively.
func ParseDenomination(s string) (Denomination, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WEI":
		return Wei, nil
	case "GWEI":
		return Gwei, nil
	case "ETH", "ETHER":
		return Ether, nil
	}
	return "", fmt.Errorf("unknown denomination %q", s)
}

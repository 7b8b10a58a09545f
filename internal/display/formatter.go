package display

import (
	"sync"

	"github.com/cyphera/wallet-display/internal/currency"
)

// maxCacheEntries bounds the memo cache; the cache is cleared when full.
const maxCacheEntries = 1024

// Formatter memoizes Format results keyed by the full argument tuple.
// Formatting is a pure derivation, so caching is only an optimization:
// recomputing on every call is semantically equivalent.
type Formatter struct {
	mu    sync.Mutex
	cache map[formatKey]formatResult
}

type formatKey struct {
	input            string
	currentCurrency  string
	nativeCurrency   string
	conversionRate   string
	rateKnown        bool
	displayValue     string
	prefix           string
	suffix           string
	numberOfDecimals int32
	hasDecimals      bool
	denomination     currency.Denomination
	currency         string
	hideLabel        bool
}

type formatResult struct {
	display string
	parts   Parts
	err     error
}

// NewFormatter creates a memoizing formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		cache: make(map[formatKey]formatResult),
	}
}

// Format behaves exactly like the package-level Format, reusing a cached
// result when every input of a previous call matches.
func (f *Formatter) Format(input string, state State, opts Options) (string, Parts, error) {
	key := formatKey{
		input:           input,
		currentCurrency: state.CurrentCurrency,
		nativeCurrency:  state.NativeCurrency,
		rateKnown:       state.RateKnown,
		displayValue:    opts.DisplayValue,
		prefix:          opts.Prefix,
		suffix:          opts.Suffix,
		denomination:    opts.Denomination,
		currency:        opts.Currency,
		hideLabel:       opts.HideLabel,
	}
	if state.RateKnown {
		key.conversionRate = state.ConversionRate.String()
	}
	if opts.NumberOfDecimals != nil {
		key.numberOfDecimals = *opts.NumberOfDecimals
		key.hasDecimals = true
	}

	f.mu.Lock()
	cached, ok := f.cache[key]
	f.mu.Unlock()
	if ok {
		return cached.display, cached.parts, cached.err
	}

	displayString, parts, err := Format(input, state, opts)

	f.mu.Lock()
	if len(f.cache) >= maxCacheEntries {
		f.cache = make(map[formatKey]formatResult)
	}
	f.cache[key] = formatResult{display: displayString, parts: parts, err: err}
	f.mu.Unlock()

	return displayString, parts, err
}

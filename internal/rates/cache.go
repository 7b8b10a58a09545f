package rates

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Cache wraps a Provider with TTL memoization so a reactive re-render cycle
// does not refetch the same pair on every call.
type Cache struct {
	provider Provider
	ttl      time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry

	// now is swapped out in tests.
	now func() time.Time
}

type cacheEntry struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// NewCache creates a caching wrapper around provider.
func NewCache(provider Provider, ttl time.Duration) *Cache {
	return &Cache{
		provider: provider,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
		now:      time.Now,
	}
}

// GetConversionRate returns a cached rate when fresh, fetching through the
// wrapped provider otherwise. Fetch errors are not cached.
func (c *Cache) GetConversionRate(ctx context.Context, cryptoSymbol, fiatSymbol string) (decimal.Decimal, error) {
	key := strings.ToUpper(cryptoSymbol) + "/" + strings.ToUpper(fiatSymbol)

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.rate, nil
	}

	rate, err := c.provider.GetConversionRate(ctx, cryptoSymbol, fiatSymbol)
	if err != nil {
		return decimal.Decimal{}, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{rate: rate, fetchedAt: c.now()}
	c.mu.Unlock()

	return rate, nil
}

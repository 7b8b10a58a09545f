package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cyphera/wallet-display/internal/logger"
)

const (
	defaultBaseURL = "https://pro-api.coinmarketcap.com"
	defaultTimeout = 10 * time.Second

	quotesEndpoint = "/v2/cryptocurrency/quotes/latest"
	apiKeyHeader   = "X-CMC_PRO_API_KEY"
)

// Client fetches conversion rates from the CoinMarketCap API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new CoinMarketCap rates client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// quote holds the price fields we consume from a CMC quote entry.
type quote struct {
	Price       float64 `json:"price"`
	LastUpdated string  `json:"last_updated"`
}

type tokenData struct {
	ID     int              `json:"id"`
	Name   string           `json:"name"`
	Symbol string           `json:"symbol"`
	Quote  map[string]quote `json:"quote"`
}

type apiStatus struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// The v2 endpoint returns an array per symbol even for single-symbol queries.
type apiResponse struct {
	Status apiStatus              `json:"status"`
	Data   map[string][]tokenData `json:"data"`
}

// APIError represents an error returned by the CoinMarketCap API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CoinMarketCap API error: status %d, message: %s", e.StatusCode, e.Message)
}

// GetConversionRate fetches the latest quote for cryptoSymbol in fiatSymbol.
func (c *Client) GetConversionRate(ctx context.Context, cryptoSymbol, fiatSymbol string) (decimal.Decimal, error) {
	cryptoSymbol = strings.ToUpper(strings.TrimSpace(cryptoSymbol))
	fiatSymbol = strings.ToUpper(strings.TrimSpace(fiatSymbol))
	if cryptoSymbol == "" || fiatSymbol == "" {
		return decimal.Decimal{}, fmt.Errorf("crypto and fiat symbols cannot be empty")
	}

	query := url.Values{}
	query.Set("symbol", cryptoSymbol)
	query.Set("convert", fiatSymbol)
	requestURL := c.baseURL + quotesEndpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "failed to build quotes request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("CoinMarketCap API request failed", zap.Error(err))
		return decimal.Decimal{}, errors.Wrap(err, "failed to get latest quotes from CoinMarketCap")
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "failed to decode CoinMarketCap response")
	}

	if resp.StatusCode >= http.StatusBadRequest || apiResp.Status.ErrorCode != 0 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiResp.Status.ErrorMessage,
		}
		logger.Error("CoinMarketCap API returned an error",
			zap.Int("status_code", apiErr.StatusCode),
			zap.String("message", apiErr.Message))
		return decimal.Decimal{}, apiErr
	}

	entries, ok := apiResp.Data[cryptoSymbol]
	if !ok || len(entries) == 0 {
		return decimal.Decimal{}, fmt.Errorf("no quote data for symbol %s", cryptoSymbol)
	}

	fiatQuote, ok := entries[0].Quote[fiatSymbol]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("no %s quote for symbol %s", fiatSymbol, cryptoSymbol)
	}
	if fiatQuote.Price <= 0 {
		return decimal.Decimal{}, fmt.Errorf("invalid price %f for %s/%s", fiatQuote.Price, cryptoSymbol, fiatSymbol)
	}

	return decimal.NewFromFloat(fiatQuote.Price), nil
}

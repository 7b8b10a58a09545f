package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyphera/wallet-display/internal/fiat"
)

// CurrencyHandler exposes the supported fiat currency metadata.
type CurrencyHandler struct{}

// NewCurrencyHandler creates a currency handler.
func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// ListCurrenciesResponse represents the response for listing currencies
type ListCurrenciesResponse struct {
	Currencies []fiat.Currency `json:"currencies"`
}

// ListCurrencies returns all supported fiat currencies
// @Summary List supported currencies
// @Description Get the metadata of all supported fiat currencies
// @Tags currencies
// @Accept json
// @Produce json
// @Success 200 {object} ListCurrenciesResponse
// @Router /currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, ListCurrenciesResponse{
		Currencies: fiat.List(),
	})
}

// GetCurrency returns a specific currency by code
// @Summary Get currency details
// @Description Get details of a specific currency by its code
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency code (e.g., USD, EUR)"
// @Success 200 {object} fiat.Currency
// @Router /currencies/{code} [get]
func (h *CurrencyHandler) GetCurrency(c *gin.Context) {
	code := c.Param("code")

	meta, ok := fiat.Lookup(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		return
	}

	c.JSON(http.StatusOK, meta)
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/wallet-display/internal/fiat"
	"github.com/cyphera/wallet-display/internal/handlers"
)

func currencyRouter() *gin.Engine {
	router := gin.New()
	handler := handlers.NewCurrencyHandler()
	router.GET("/v1/currencies", handler.ListCurrencies)
	router.GET("/v1/currencies/:code", handler.GetCurrency)
	return router
}

func TestCurrencyHandler_ListCurrencies(t *testing.T) {
	router := currencyRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/currencies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.ListCurrenciesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Currencies, len(fiat.List()))
	assert.Equal(t, "USD", resp.Currencies[0].Code)
}

func TestCurrencyHandler_GetCurrency(t *testing.T) {
	router := currencyRouter()

	tests := []struct {
		name       string
		code       string
		wantStatus int
		wantSymbol string
	}{
		{name: "usd", code: "USD", wantStatus: http.StatusOK, wantSymbol: "$"},
		{name: "lowercase code", code: "eur", wantStatus: http.StatusOK, wantSymbol: "€"},
		{name: "unknown code", code: "XTS", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/currencies/"+tt.code, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var meta fiat.Currency
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meta))
			assert.Equal(t, tt.wantSymbol, meta.Symbol)
		})
	}
}

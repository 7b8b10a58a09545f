package server_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/wallet-display/internal/config"
	"github.com/cyphera/wallet-display/internal/logger"
	"github.com/cyphera/wallet-display/internal/server"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("local")
}

func testRouter() http.Handler {
	cfg := &config.Config{
		Stage:          config.StageLocal,
		NativeCurrency: "ETH",
		DefaultFiat:    "usd",
	}
	return server.NewRouter(cfg, nil)
}

func TestRouter_Healthz(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestRouter_RoutesWired(t *testing.T) {
	router := testRouter()

	body := fmt.Sprintf(`{"value": %q, "currency": "ETH"}`, "0xde0b6b3a7640000")
	req := httptest.NewRequest(http.MethodPost, "/v1/display", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "1 ETH")

	req = httptest.NewRequest(http.MethodGet, "/v1/currencies", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Every response carries a correlation ID.
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

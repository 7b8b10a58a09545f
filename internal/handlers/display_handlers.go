package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyphera/wallet-display/internal/config"
	"github.com/cyphera/wallet-display/internal/currency"
	"github.com/cyphera/wallet-display/internal/display"
	"github.com/cyphera/wallet-display/internal/logger"
	"github.com/cyphera/wallet-display/internal/rates"
)

// DisplayHandler exposes the currency display formatter over HTTP.
type DisplayHandler struct {
	formatter *display.Formatter
	rates     rates.Provider
	cfg       *config.Config
}

// NewDisplayHandler creates a display handler.
func NewDisplayHandler(cfg *config.Config, provider rates.Provider) *DisplayHandler {
	return &DisplayHandler{
		formatter: display.NewFormatter(),
		rates:     provider,
		cfg:       cfg,
	}
}

// DisplayRequest represents a request to format a raw hex wei amount.
type DisplayRequest struct {
	Value            string `json:"value" binding:"required"`
	Currency         string `json:"currency"`
	DisplayValue     string `json:"display_value"`
	Prefix           string `json:"prefix"`
	Suffix           string `json:"suffix"`
	NumberOfDecimals *int32 `json:"number_of_decimals"`
	Denomination     string `json:"denomination"`
	HideLabel        bool   `json:"hide_label"`

	// Optional state overrides for callers that manage their own settings.
	CurrentCurrency string  `json:"current_currency"`
	NativeCurrency  *string `json:"native_currency"`
}

// DisplayResponse represents the formatted amount and its parts.
type DisplayResponse struct {
	Display string        `json:"display"`
	Parts   display.Parts `json:"parts"`
}

// FormatAmount formats a hex wei amount into a display string
// @Summary Format a raw amount for display
// @Description Convert a hexadecimal wei amount into a human-readable currency string
// @Tags display
// @Accept json
// @Produce json
// @Param request body DisplayRequest true "Amount and display options"
// @Success 200 {object} DisplayResponse
// @Router /display [post]
func (h *DisplayHandler) FormatAmount(c *gin.Context) {
	var req DisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	opts := display.Options{
		DisplayValue:     req.DisplayValue,
		Prefix:           req.Prefix,
		Suffix:           req.Suffix,
		NumberOfDecimals: req.NumberOfDecimals,
		Currency:         req.Currency,
		HideLabel:        req.HideLabel,
	}
	if req.Denomination != "" {
		denom, err := currency.ParseDenomination(req.Denomination)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opts.Denomination = denom
	}

	state := h.resolveState(c, req)

	formatted, parts, err := h.formatter.Format(req.Value, state, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, DisplayResponse{
		Display: formatted,
		Parts:   parts,
	})
}

// resolveState builds the formatter state from configuration, request
// overrides, and the conversion-rate provider. The rate is only fetched when
// the requested conversion actually needs it.
func (h *DisplayHandler) resolveState(c *gin.Context, req DisplayRequest) display.State {
	state := display.State{
		CurrentCurrency: h.cfg.DefaultFiat,
		NativeCurrency:  h.cfg.NativeCurrency,
	}
	if req.CurrentCurrency != "" {
		state.CurrentCurrency = req.CurrentCurrency
	}
	if req.NativeCurrency != nil {
		state.NativeCurrency = *req.NativeCurrency
	}

	if !h.needsRate(req, state) {
		return state
	}

	rate, err := h.rates.GetConversionRate(c.Request.Context(), state.NativeCurrency, state.CurrentCurrency)
	if err != nil {
		// Degrade to the no-conversion-path case rather than failing the
		// whole request.
		logger.Warn("Conversion rate unavailable",
			zap.String("native_currency", state.NativeCurrency),
			zap.String("fiat_currency", state.CurrentCurrency),
			zap.Error(err))
		return state
	}

	state.ConversionRate = rate
	state.RateKnown = true
	return state
}

func (h *DisplayHandler) needsRate(req DisplayRequest, state display.State) bool {
	if h.rates == nil || req.DisplayValue != "" {
		return false
	}
	if state.NativeCurrency != "" && strings.EqualFold(req.Currency, state.NativeCurrency) {
		return false
	}
	return req.Currency != "" && strings.EqualFold(req.Currency, state.CurrentCurrency)
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shivamgupta-zluri/onboarding-project/internal/apperrors"
	portssvc "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/services"
	"github.com/shivamgupta-zluri/onboarding-project/internal/middleware"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rg.GET("/exchangeRates", h.getExchangeRates)
}

// getExchangeRates godoc
// @Summary Get current exchange rates
// @Description Returns the cached currency-to-INR conversion table, refreshing it from the provider if it has expired
// @Tags rates
// @Produce json
// @Success 200 {object} map[string]float64
// @Failure 502 {object} map[string]string "Rate provider unavailable"
// @Router /exchangeRates [get]
func (h *rateHandler) getExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.rateService.GetRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRateFetch) {
			logger.Error("Rate provider fetch failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch exchange rates"})
			return
		}
		logger.Error("Failed to get exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rates"})
		return
	}

	// The web client consumes the bare conversion table.
	c.JSON(http.StatusOK, snapshot.Rates)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/utils"
)

// MetricsHandler serves the JSON trading-metrics surface. The jitter
// strategy is fixed per listener at construction, so the same handler code
// backs both the animated and the static profiles.
type MetricsHandler struct {
	generator *synth.Generator
	strategy  synth.Strategy
}

func NewMetricsHandler(generator *synth.Generator, strategy synth.Strategy) *MetricsHandler {
	return &MetricsHandler{
		generator: generator,
		strategy:  strategy,
	}
}

// GetPortfolio returns the portfolio P&L snapshot.
func (h *MetricsHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.Portfolio(h.strategy))
}

// GetSignals returns aggregate trading-signal statistics.
func (h *MetricsHandler) GetSignals(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.Signals(h.strategy))
}

// GetAllMetrics returns the composite document: portfolio, signals,
// positions, market data and risk in one payload.
func (h *MetricsHandler) GetAllMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.Combined(h.strategy))
}

// GetPositions returns the open position list.
func (h *MetricsHandler) GetPositions(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.Positions())
}

// GetMarketData returns per-symbol market telemetry.
func (h *MetricsHandler) GetMarketData(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.Market())
}

// GetRisk returns portfolio risk measures.
func (h *MetricsHandler) GetRisk(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.Risk(h.strategy))
}

// GetTimeseries answers a Grafana-style single-metric query.
func (h *MetricsHandler) GetTimeseries(c *gin.Context) {
	series, err := h.generator.Timeseries(c.Param("metric"), h.strategy)
	if err != nil {
		RespondError(c, utils.NewBadRequestError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, series)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/utils"
)

// StocksHandler serves the watchlist quote and history endpoints.
type StocksHandler struct {
	generator    *synth.Generator
	defaultHours int
	maxHours     int
}

func NewStocksHandler(generator *synth.Generator, defaultHours, maxHours int) *StocksHandler {
	return &StocksHandler{
		generator:    generator,
		defaultHours: defaultHours,
		maxHours:     maxHours,
	}
}

// GetStocks returns the current snapshot for every monitored symbol.
func (h *StocksHandler) GetStocks(c *gin.Context) {
	c.JSON(http.StatusOK, h.generator.Quotes())
}

// GetStockHistory returns an hourly price series for one symbol. The symbol
// is taken verbatim; unmonitored symbols still get a series around the
// default base price.
func (h *StocksHandler) GetStockHistory(c *gin.Context) {
	hoursStr := c.DefaultQuery("hours", strconv.Itoa(h.defaultHours))
	hours, err := strconv.Atoi(hoursStr)
	if err != nil || hours < 1 || hours > h.maxHours {
		RespondError(c, utils.NewBadRequestErrorf(
			"invalid hours parameter %q: expected an integer between 1 and %d", hoursStr, h.maxHours))
		return
	}
	c.JSON(http.StatusOK, h.generator.History(c.Param("symbol"), hours))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/exposition"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
)

// PrometheusHandler serves the text exposition scrape endpoint.
type PrometheusHandler struct {
	generator *synth.Generator
	strategy  synth.Strategy
}

func NewPrometheusHandler(generator *synth.Generator, strategy synth.Strategy) *PrometheusHandler {
	return &PrometheusHandler{
		generator: generator,
		strategy:  strategy,
	}
}

// GetMetrics renders one scrape.
func (h *PrometheusHandler) GetMetrics(c *gin.Context) {
	text := exposition.Render(h.generator.Gauges(h.strategy))
	c.Data(http.StatusOK, exposition.ContentType, []byte(text))
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
)

// HealthHandler answers liveness probes. Every listener mounts one with its
// own service name so orchestration can tell the listeners apart.
type HealthHandler struct {
	service string
	clock   synth.Clock
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

func NewHealthHandler(service string, clock synth.Clock) *HealthHandler {
	return &HealthHandler{
		service: service,
		clock:   clock,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   h.service,
		Timestamp: h.clock.Now(),
	})
}

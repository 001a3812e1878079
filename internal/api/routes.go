package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/api/handlers"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/middleware"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/utils"
)

// RouterConfig carries the pieces every listener router shares.
type RouterConfig struct {
	Listener       string
	AllowedOrigins []string
	TracingEnabled bool
}

// NewRouter builds a gin engine with the shared middleware chain and the
// standard not-found body. Route registration is per profile.
func NewRouter(logger *logrus.Logger, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.Listener))
	}
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestLogger(logger, cfg.Listener))
	router.NoRoute(func(c *gin.Context) {
		handlers.RespondError(c, utils.NewNotFoundError("Endpoint not found"))
	})
	return router
}

// SetupStockRoutes registers the stock API surface. History is a root-level
// route keyed by symbol; the static routes win lookup over the parameter.
func SetupStockRoutes(router *gin.Engine, stocks *handlers.StocksHandler, health *handlers.HealthHandler) {
	router.GET("/health", health.Health)
	router.GET("/stocks", stocks.GetStocks)
	router.GET("/:symbol/history", stocks.GetStockHistory)
}

// SetupMetricsRoutes registers the JSON metrics surface. The extended flag
// adds the composite, position, market, risk and timeseries routes on top
// of the portfolio/signals pair.
func SetupMetricsRoutes(router *gin.Engine, metrics *handlers.MetricsHandler, health *handlers.HealthHandler, extended bool) {
	router.GET("/health", health.Health)

	v1 := router.Group("/api/v1")
	{
		m := v1.Group("/metrics")
		{
			m.GET("/portfolio", metrics.GetPortfolio)
			m.GET("/signals", metrics.GetSignals)
			if extended {
				m.GET("/all", metrics.GetAllMetrics)
				m.GET("/positions", metrics.GetPositions)
				m.GET("/market", metrics.GetMarketData)
				m.GET("/risk", metrics.GetRisk)
			}
		}
		if extended {
			v1.GET("/timeseries/:metric", metrics.GetTimeseries)
		}
	}
}

// SetupPrometheusRoutes registers the scrape surface.
func SetupPrometheusRoutes(router *gin.Engine, prom *handlers.PrometheusHandler, health *handlers.HealthHandler) {
	router.GET("/health", health.Health)
	router.GET("/metrics", prom.GetMetrics)
}

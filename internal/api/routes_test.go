package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/api/handlers"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
	"github.com/Delfictus/neuromorphic-demo-feed/internal/testutil"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testGenerator() *synth.Generator {
	clock := &testutil.MockClock{CurrentTime: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)}
	return synth.NewGenerator(synth.NewRand(42), clock)
}

func testClock() *testutil.MockClock {
	return &testutil.MockClock{CurrentTime: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)}
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewRouter_NotFoundBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{Listener: "stock_api", AllowedOrigins: []string{"*"}})

	w := serve(router, "GET", "/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response handlers.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Endpoint not found", response.Error)
	assert.Equal(t, http.StatusNotFound, response.Code)
}

func TestNewRouter_CORSHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{Listener: "stock_api", AllowedOrigins: []string{"*"}})
	SetupStockRoutes(router,
		handlers.NewStocksHandler(testGenerator(), 24, 8760),
		handlers.NewHealthHandler("demo-stock-api", testClock()))

	w := serve(router, "GET", "/stocks")

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))

	w = serve(router, "OPTIONS", "/stocks")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNewRouter_TracingEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{
		Listener:       "stock_api",
		AllowedOrigins: []string{"*"},
		TracingEnabled: true,
	})
	SetupStockRoutes(router,
		handlers.NewStocksHandler(testGenerator(), 24, 8760),
		handlers.NewHealthHandler("demo-stock-api", testClock()))

	w := serve(router, "GET", "/stocks")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupStockRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{Listener: "stock_api", AllowedOrigins: []string{"*"}})
	SetupStockRoutes(router,
		handlers.NewStocksHandler(testGenerator(), 24, 8760),
		handlers.NewHealthHandler("demo-stock-api", testClock()))

	assert.Equal(t, http.StatusOK, serve(router, "GET", "/health").Code)
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/stocks").Code)
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/AAPL/history").Code)
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/UNLISTED/history?hours=2").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, "GET", "/api/v1/metrics/portfolio").Code)
}

func TestSetupMetricsRoutes_Extended(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{Listener: "metrics_api", AllowedOrigins: []string{"*"}})
	SetupMetricsRoutes(router,
		handlers.NewMetricsHandler(testGenerator(), synth.StrategyIndependent),
		handlers.NewHealthHandler("neuromorphic-trading-metrics", testClock()),
		true)

	for _, path := range []string{
		"/health",
		"/api/v1/metrics/portfolio",
		"/api/v1/metrics/signals",
		"/api/v1/metrics/all",
		"/api/v1/metrics/positions",
		"/api/v1/metrics/market",
		"/api/v1/metrics/risk",
		"/api/v1/timeseries/portfolio_pnl",
	} {
		assert.Equal(t, http.StatusOK, serve(router, "GET", path).Code, path)
	}
}

func TestSetupMetricsRoutes_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{Listener: "metrics_static", AllowedOrigins: []string{"*"}})
	SetupMetricsRoutes(router,
		handlers.NewMetricsHandler(testGenerator(), synth.StrategyNone),
		handlers.NewHealthHandler("neuromorphic-trading-metrics", testClock()),
		false)

	assert.Equal(t, http.StatusOK, serve(router, "GET", "/health").Code)
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/api/v1/metrics/portfolio").Code)
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/api/v1/metrics/signals").Code)

	// Extended routes stay unmounted on the static profile.
	for _, path := range []string{
		"/api/v1/metrics/all",
		"/api/v1/metrics/positions",
		"/api/v1/metrics/market",
		"/api/v1/metrics/risk",
		"/api/v1/timeseries/portfolio_pnl",
	} {
		assert.Equal(t, http.StatusNotFound, serve(router, "GET", path).Code, path)
	}
}

func TestSetupMetricsRoutes_StaticServesBaselines(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{Listener: "metrics_static", AllowedOrigins: []string{"*"}})
	SetupMetricsRoutes(router,
		handlers.NewMetricsHandler(testGenerator(), synth.StrategyNone),
		handlers.NewHealthHandler("neuromorphic-trading-metrics", testClock()),
		false)

	first := serve(router, "GET", "/api/v1/metrics/portfolio")
	second := serve(router, "GET", "/api/v1/metrics/portfolio")

	// Without jitter, consecutive snapshots are identical.
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestSetupPrometheusRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testLogger(), RouterConfig{Listener: "prometheus", AllowedOrigins: []string{"*"}})
	SetupPrometheusRoutes(router,
		handlers.NewPrometheusHandler(testGenerator(), synth.StrategyCorrelated),
		handlers.NewHealthHandler("neuromorphic-prometheus-metrics", testClock()))

	assert.Equal(t, http.StatusOK, serve(router, "GET", "/health").Code)

	w := serve(router, "GET", "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; version=0.0.4", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "# HELP neuromorphic_portfolio_capital_total")
}

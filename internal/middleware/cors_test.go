package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(origins))
	router.GET("/stocks", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORS_Wildcard(t *testing.T) {
	router := corsRouter([]string{"*"})

	req, _ := http.NewRequest("GET", "/stocks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_ExplicitOrigins(t *testing.T) {
	router := corsRouter([]string{"https://dash.example.com", "https://grafana.example.com"})

	req, _ := http.NewRequest("GET", "/stocks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://dash.example.com, https://grafana.example.com",
		w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_EmptyListFallsBackToWildcard(t *testing.T) {
	router := corsRouter(nil)

	req, _ := http.NewRequest("GET", "/stocks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	router := corsRouter([]string{"*"})

	req, _ := http.NewRequest("OPTIONS", "/stocks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Body.String())
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddlewareCountsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/course/:code", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, code := range []string{"CS101", "CS102"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/course/"+code, nil))
	}

	// Both requests land on the same pattern label, not two raw paths
	count := testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/course/:code", "200"))
	assert.Equal(t, 2.0, count)
}

func TestMetricsMiddlewareUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	router := gin.New()
	router.Use(m.Middleware())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	count := testutil.ToFloat64(m.Requests.WithLabelValues("GET", "unmatched", "404"))
	assert.Equal(t, 1.0, count)
}

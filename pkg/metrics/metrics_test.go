package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics_Singleton(t *testing.T) {
	m := InitMetrics()
	require.NotNil(t, m)
	assert.Same(t, m, InitMetrics())
}

func TestRecordAction(t *testing.T) {
	m := InitMetrics()
	ok := testutil.ToFloat64(m.ActionsTotal.WithLabelValues("test_kill", "success"))
	failed := testutil.ToFloat64(m.ActionsTotal.WithLabelValues("test_kill", "error"))

	m.RecordAction("test_kill", nil)
	m.RecordAction("test_kill", errors.New("ORA-00031"))
	m.RecordAction("test_kill", errors.New("ORA-00031"))

	assert.Equal(t, ok+1, testutil.ToFloat64(m.ActionsTotal.WithLabelValues("test_kill", "success")))
	assert.Equal(t, failed+2, testutil.ToFloat64(m.ActionsTotal.WithLabelValues("test_kill", "error")))
}

func TestSetPollerFailures(t *testing.T) {
	m := InitMetrics()
	m.SetPollerFailures("test_sessions", 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PollerFailures.WithLabelValues("test_sessions")))
	m.SetPollerFailures("test_sessions", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PollerFailures.WithLabelValues("test_sessions")))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordAction("x", nil)
		m.RecordError("x")
		m.ObserveQuery("x", time.Now())
		m.SetPollerFailures("x", 1)
	})
}

func TestMiddleware_LabelsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := InitMetrics()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/test/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/test/:id", "204"))
	for _, path := range []string{"/api/test/1", "/api/test/2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	assert.Equal(t, before+2, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/test/:id", "204")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")), 1.0)
}

package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetricsApp(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	// fresh registry per test to avoid duplicate registration
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	return app, m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	app, m, _ := newTestMetricsApp(t)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/test", "200")))

	_, err = app.Test(httptest.NewRequest("DELETE", "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("DELETE", "/test", "200")))

	_, err = app.Test(httptest.NewRequest("GET", "/error", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/error", "400")))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	app, _, reg := newTestMetricsApp(t)

	app.Get(MetricsPath, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", MetricsPath, nil))
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		assert.Empty(t, mf.GetMetric(), "metric %s", mf.GetName())
	}
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	app, m, _ := newTestMetricsApp(t)

	app.Get("/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, id := range []string{"123", "abc", "healthz"} {
		_, err := app.Test(httptest.NewRequest("GET", "/"+id, nil))
		require.NoError(t, err)
	}

	// one series for every id
	assert.Equal(t, float64(3), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/:id", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestCount))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestPrometheusMiddleware_Unmatched(t *testing.T) {
	app, m, _ := newTestMetricsApp(t)

	app.Get("/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for _, p := range []string{"/a/b", "/c/d/e"} {
		resp, err := app.Test(httptest.NewRequest("GET", p, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestCount.WithLabelValues("GET", unmatchedRoute, "404")))
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}

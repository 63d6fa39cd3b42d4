package benchmark

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-studio/internal/adapters/catalog"
	"github.com/jsamuelsen/quote-studio/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-studio/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-studio/internal/ports"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r

	return c
}

func setupHealthHandler(b *testing.B, checkers ...ports.HealthChecker) *handlers.HealthHandler {
	b.Helper()

	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		if err := registry.Register(c); err != nil {
			b.Fatal(err)
		}
	}

	return handlers.NewHealthHandler(registry, handlers.NewBuildInfo("quote-studio", "1.0.0", "abc123", "2026-01-01T00:00:00Z"))
}

// BenchmarkLivenessHandler is on the probe path and should not allocate much.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler(b)
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		handler.Liveness(createGinContext(w, req))
	}
}

// BenchmarkReadinessHandler_WithCatalog runs the catalog check on every probe.
func BenchmarkReadinessHandler_WithCatalog(b *testing.B) {
	cat, err := catalog.New(catalog.Options{})
	if err != nil {
		b.Fatal(err)
	}

	handler := setupHealthHandler(b, cat, &staticChecker{name: "history"})
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		handler.Readiness(createGinContext(w, req))
	}
}

func BenchmarkMiddlewareChain(b *testing.B) {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.CorrelationID(), middleware.Session())
	router.GET("/api/v1/themes", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/themes", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
}

type staticChecker struct {
	name string
}

func (s *staticChecker) Name() string { return s.name }

func (s *staticChecker) Check(_ context.Context) error { return nil }

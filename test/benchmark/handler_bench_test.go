package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/quotebook-service/internal/adapters/http"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage/sqlitestore"
	"github.com/jsamuelsen/quotebook-service/internal/app"
	"github.com/jsamuelsen/quotebook-service/internal/domain"
	"github.com/jsamuelsen/quotebook-service/internal/platform/config"
	"github.com/jsamuelsen/quotebook-service/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// openStore opens a SQLite store in a temporary directory and seeds it.
func openStore(b *testing.B, seed int) *sqlitestore.Store {
	b.Helper()

	ctx := context.Background()

	store, err := sqlitestore.Open(ctx, filepath.Join(b.TempDir(), "bench.db"), discardLogger())
	if err != nil {
		b.Fatalf("opening store: %v", err)
	}
	b.Cleanup(func() { _ = store.Close(ctx) })

	for i := range seed {
		category := "wisdom"
		if i%2 == 1 {
			category = "humor"
		}

		if _, err := store.Insert(ctx, domain.QuoteDraft{Category: category, Text: "Know thyself", Author: "Socrates"}); err != nil {
			b.Fatalf("seeding store: %v", err)
		}
	}

	return store
}

// setupRouter wires the full production middleware chain over store.
func setupRouter(store ports.QuoteRepository) *gin.Engine {
	logger := discardLogger()

	registry := ports.NewHealthRegistry()
	_ = registry.Register(store)

	appCfg := &config.AppConfig{Name: "quotebook-bench", Environment: "test", Version: "bench", Greeting: "hi"}

	cfg := httpadapter.NewDefaultRouterConfig(logger, appCfg,
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")))
	cfg.QuoteHandler = handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
		Repository: store,
		Logger:     logger,
	}))

	engine := gin.New()
	httpadapter.SetupRouter(engine, cfg)

	return engine
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{})
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithStore measures readiness with the quote
// store registered as a health check.
func BenchmarkReadinessHandler_WithStore(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(openStore(b, 0))

	handler := handlers.NewHealthHandler(registry, handlers.BuildInfo{})
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkPowerHandler measures a stateless math endpoint through the
// full middleware chain.
func BenchmarkPowerHandler(b *testing.B) {
	router := setupRouter(openStore(b, 0))
	req := httptest.NewRequest(http.MethodGet, "/math/power/2/10?root=true", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkCircleHandler_Direct measures the circle handler without middleware.
func BenchmarkCircleHandler_Direct(b *testing.B) {
	handler := handlers.NewMathHandler()
	req := httptest.NewRequest(http.MethodGet, "/math/circle/2.5", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		c.Params = gin.Params{{Key: "r", Value: "2.5"}}
		handler.Circle(c)
	}
}

// BenchmarkListCategories measures the distinct-categories query.
func BenchmarkListCategories(b *testing.B) {
	router := setupRouter(openStore(b, 200))
	req := httptest.NewRequest(http.MethodGet, "/quotebook/categories", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkRandomQuote measures sampling one quote from a category.
func BenchmarkRandomQuote(b *testing.B) {
	router := setupRouter(openStore(b, 200))
	req := httptest.NewRequest(http.MethodGet, "/quotebook/quote/Wisdom", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkCreateQuote measures inserting quotes through the full chain.
func BenchmarkCreateQuote(b *testing.B) {
	router := setupRouter(openStore(b, 0))
	body := `{"category":"Wisdom ","quote":"Know thyself","author":"Socrates"}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/quotebook/quote/new", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkMiddlewareChain_NoRoute measures the middleware overhead on a
// request that matches no route.
func BenchmarkMiddlewareChain_NoRoute(b *testing.B) {
	router := setupRouter(openStore(b, 0))
	req := httptest.NewRequest(http.MethodGet, "/missing", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

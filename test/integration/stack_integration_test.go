//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/jsamuelsen/quotebook-service/internal/adapters/http"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage/mongostore"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage/sqlitestore"
	"github.com/jsamuelsen/quotebook-service/internal/app"
	"github.com/jsamuelsen/quotebook-service/internal/platform/config"
	"github.com/jsamuelsen/quotebook-service/internal/ports"
)

// newStackServer serves the full router over repo, the same way the binary
// wires it.
func newStackServer(t *testing.T, repo ports.QuoteRepository) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	collectors, err := storage.NewCollectors(prometheus.NewRegistry())
	require.NoError(t, err)

	instrumented := storage.NewInstrumented(repo, collectors)

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(instrumented))

	appCfg := &config.AppConfig{
		Name:        "quotebook-integration",
		Environment: "test",
		Version:     "test",
		Greeting:    "Welcome to the quotebook API",
	}

	routerCfg := httpadapter.NewDefaultRouterConfig(logger, appCfg, handlers.NewHealthHandler(registry, handlers.BuildInfo{}))
	routerCfg.QuoteHandler = handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
		Repository: instrumented,
		Logger:     logger,
	}))
	routerCfg.Timeout = 5 * time.Second

	engine := gin.New()
	httpadapter.SetupRouter(engine, routerCfg)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return server
}

func call(t *testing.T, server *httptest.Server, method, path, body string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, server.URL+path, reader)
	require.NoError(t, err)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

// runQuoteLifecycle exercises every quotebook route against a live store.
func runQuoteLifecycle(t *testing.T, server *httptest.Server) {
	t.Helper()

	var created dto.QuoteResponse
	status := call(t, server, http.MethodPost, "/quotebook/quote/new",
		`{"category":"Wisdom ","quote":"Know thyself","author":"Socrates"}`, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "wisdom", created.Category)
	assert.Equal(t, "Know thyself", created.Quote)
	require.NotEmpty(t, created.ID)

	var categories dto.CategoriesResponse
	status = call(t, server, http.MethodGet, "/quotebook/categories", "", &categories)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, categories.Categories, "wisdom")

	var sampled dto.QuoteResponse
	status = call(t, server, http.MethodGet, "/quotebook/quote/WISDOM", "", &sampled)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Socrates", sampled.Author)

	var updated dto.QuoteResponse
	status = call(t, server, http.MethodPut, "/quotebook/quote/"+created.ID, `{"author":"Plato"}`, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Plato", updated.Author)
	assert.Equal(t, "wisdom", updated.Category)
	assert.Equal(t, "Know thyself", updated.Quote)

	var deleted dto.QuoteResponse
	status = call(t, server, http.MethodDelete, "/quotebook/quote/"+created.ID, "", &deleted)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, updated, deleted)

	var errResp dto.ErrorResponse
	status = call(t, server, http.MethodDelete, "/quotebook/quote/"+created.ID, "", &errResp)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.ErrorCodeNotFound, errResp.Error.Code)

	errResp = dto.ErrorResponse{}
	status = call(t, server, http.MethodPut, "/quotebook/quote/"+created.ID, `{"author":"Aristotle"}`, &errResp)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.ErrorCodeNotFound, errResp.Error.Code)

	status = call(t, server, http.MethodGet, "/quotebook/quote/wisdom", "", &errResp)
	assert.Equal(t, http.StatusNotFound, status)

	status = call(t, server, http.MethodGet, "/quotebook/categories", "", &categories)
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, categories.Categories, "wisdom")

	status = call(t, server, http.MethodGet, "/-/ready", "", nil)
	assert.Equal(t, http.StatusOK, status)
}

// TestStack_SQLite runs the quote lifecycle against an on-disk SQLite file.
func TestStack_SQLite(t *testing.T) {
	ctx := context.Background()

	store, err := sqlitestore.Open(ctx, filepath.Join(t.TempDir(), "quotebook.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	runQuoteLifecycle(t, newStackServer(t, store))
}

// TestStack_Mongo runs the quote lifecycle against a real MongoDB server.
// It is skipped unless MONGO_URI is set.
func TestStack_Mongo(t *testing.T) {
	uri := os.Getenv(config.EnvMongoURI)
	if uri == "" {
		t.Skip(config.EnvMongoURI + " not set")
	}

	ctx := context.Background()

	store, err := mongostore.Open(ctx, mongostore.Config{
		URI:            uri,
		Database:       "quotebook_integration",
		Collection:     "quotes_" + strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_")),
		ConnectTimeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	runQuoteLifecycle(t, newStackServer(t, store))
}

// TestStack_MongoUnreachable verifies an unreachable server fails at startup.
func TestStack_MongoUnreachable(t *testing.T) {
	_, err := mongostore.Open(context.Background(), mongostore.Config{
		URI:            "mongodb://127.0.0.1:1",
		Database:       "quotebook",
		Collection:     "quotes",
		ConnectTimeout: 300 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.ErrorIs(t, err, storage.ErrStartup)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/dto"
)

// RootHandler serves the service banner and the plain-text health probe.
type RootHandler struct {
	name     string
	greeting string
}

// NewRootHandler creates a root handler reporting the given service name.
func NewRootHandler(name, greeting string) *RootHandler {
	return &RootHandler{name: name, greeting: greeting}
}

// Index handles GET /.
func (h *RootHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		OK:      true,
		Message: h.greeting,
		Name:    h.name,
	})
}

// Health handles GET /health. It reports process liveness only; store
// reachability is reported by /-/ready.
func (h *RootHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "healthy")
}

// RegisterRootRoutes registers GET / and GET /health.
func (h *RootHandler) RegisterRootRoutes(engine *gin.Engine) {
	engine.GET("/", h.Index)
	engine.GET("/health", h.Health)
}

package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook-service/internal/domain"
)

// MathHandler serves the stateless arithmetic endpoints.
type MathHandler struct{}

// NewMathHandler creates a math handler.
func NewMathHandler() *MathHandler {
	return &MathHandler{}
}

// Circle handles GET /math/circle/:r.
func (h *MathHandler) Circle(c *gin.Context) {
	r, ok := numericParam(c, "r")
	if !ok {
		return
	}

	m, err := domain.Circle(r)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CircleResponse{Area: m.Area, Circumference: m.Circumference})
}

// Rectangle handles GET /math/rectangle/:width/:height.
func (h *MathHandler) Rectangle(c *gin.Context) {
	width, ok := numericParam(c, "width")
	if !ok {
		return
	}

	height, ok := numericParam(c, "height")
	if !ok {
		return
	}

	m, err := domain.Rectangle(width, height)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RectangleResponse{Area: m.Area, Perimeter: m.Perimeter})
}

// Power handles GET /math/power/:base/:exponent[?root=true].
func (h *MathHandler) Power(c *gin.Context) {
	base, ok := numericParam(c, "base")
	if !ok {
		return
	}

	exponent, ok := numericParam(c, "exponent")
	if !ok {
		return
	}

	var query dto.PowerQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	p, err := domain.Power(base, exponent, query.WithRoot())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PowerResponse{Result: p.Result, Root: p.Root})
}

// RegisterMathRoutes registers the arithmetic routes under /math.
func (h *MathHandler) RegisterMathRoutes(rg gin.IRouter) {
	m := rg.Group("/math")
	m.GET("/circle/:r", h.Circle)
	m.GET("/rectangle/:width/:height", h.Rectangle)
	m.GET("/power/:base/:exponent", h.Power)
}

// numericParam parses a finite decimal path parameter. Trailing garbage such
// as "12abc" is rejected. On failure the 400 response is already written.
func numericParam(c *gin.Context, name string) (float64, bool) {
	raw := strings.TrimSpace(c.Param(name))

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		dto.RespondWithValidationErrors(c, map[string]string{name: "must be a number"})
		return 0, false
	}

	return v, true
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook-service/internal/app"
	"github.com/jsamuelsen/quotebook-service/internal/domain"
)

// QuoteHandler serves the /quotebook endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListCategories handles GET /quotebook/categories.
func (h *QuoteHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// GetRandomQuote handles GET /quotebook/quote/:category.
// An empty category is a 404, never a 500.
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	category := c.Param("category")

	quote, found, err := h.service.GetRandomQuote(c.Request.Context(), category)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if !found {
		dto.HandleError(c, domain.NewNotFoundError("quotes in category "+domain.NormalizeCategory(category), ""))
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// CreateQuote handles POST /quotebook/quote/new.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quote, err := h.service.AddQuote(c.Request.Context(), req.Category, req.Quote, req.Author)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// UpdateQuote handles PUT /quotebook/quote/:id.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var req dto.UpdateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quote, err := h.service.UpdateQuote(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// DeleteQuote handles DELETE /quotebook/quote/:id.
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	quote, err := h.service.DeleteQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// RegisterQuoteRoutes registers the quotebook routes under /quotebook.
func (h *QuoteHandler) RegisterQuoteRoutes(rg gin.IRouter) {
	qb := rg.Group("/quotebook")
	qb.GET("/categories", h.ListCategories)
	qb.GET("/quote/:category", h.GetRandomQuote)
	qb.POST("/quote/new", h.CreateQuote)
	qb.PUT("/quote/:id", h.UpdateQuote)
	qb.DELETE("/quote/:id", h.DeleteQuote)
}

package dto

import (
	"errors"

	"github.com/jsamuelsen/quotebook-service/internal/domain"
)

// CreateQuoteRequest is the body of POST /quotebook/quote/new.
type CreateQuoteRequest struct {
	Category string `json:"category" validate:"required,notempty"`
	Quote    string `json:"quote"    validate:"required,notempty"`
	Author   string `json:"author"   validate:"required,notempty"`
}

// UpdateQuoteRequest is the body of PUT /quotebook/quote/:id. Absent fields
// are left unchanged.
type UpdateQuoteRequest struct {
	Category *string `json:"category,omitempty" validate:"omitempty,notempty"`
	Quote    *string `json:"quote,omitempty"    validate:"omitempty,notempty"`
	Author   *string `json:"author,omitempty"   validate:"omitempty,notempty"`
}

// errEmptyUpdate is returned by UpdateQuoteRequest.Validate.
var errEmptyUpdate = errors.New("at least one of category, quote or author is required")

// Validate implements Validatable.
func (r *UpdateQuoteRequest) Validate() error {
	if r.Category == nil && r.Quote == nil && r.Author == nil {
		return errEmptyUpdate
	}

	return nil
}

// Patch converts the request to a domain patch.
func (r *UpdateQuoteRequest) Patch() domain.QuotePatch {
	return domain.QuotePatch{
		Category: r.Category,
		Text:     r.Quote,
		Author:   r.Author,
	}
}

// QuoteResponse is the JSON form of a stored quote.
type QuoteResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Quote    string `json:"quote"`
	Author   string `json:"author"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:       q.ID,
		Category: q.Category,
		Quote:    q.Text,
		Author:   q.Author,
	}
}

// CategoriesResponse is the body of GET /quotebook/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// CircleResponse is the body of GET /math/circle/:r.
type CircleResponse struct {
	Area          float64 `json:"area"`
	Circumference float64 `json:"circumference"`
}

// RectangleResponse is the body of GET /math/rectangle/:width/:height.
type RectangleResponse struct {
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
}

// PowerQuery holds the query parameters of GET /math/power/:base/:exponent.
type PowerQuery struct {
	Root string `form:"root"`
}

// WithRoot reports whether the square root was requested. Only the exact
// value "true" asks for it; anything else is ignored.
func (q *PowerQuery) WithRoot() bool {
	return q.Root == "true"
}

// PowerResponse is the body of GET /math/power/:base/:exponent. Root is only
// present when requested.
type PowerResponse struct {
	Result float64  `json:"result"`
	Root   *float64 `json:"root,omitempty"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"msg"`
	Name    string `json:"name"`
}

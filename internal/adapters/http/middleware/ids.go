// Package middleware provides the gin middleware chain of the quotebook API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook-service/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request identifier.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID carries an identifier shared by every request of one
	// client-side transaction.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin key holding the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

type idConfig struct {
	header string
	key    string
	enrich func(ctx context.Context, id string) context.Context
}

// propagateID takes the ID from the request header or mints a UUIDv4, then
// exposes it on the gin context, the response header and the request logger.
func propagateID(cfg idConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(cfg.key, id)
		c.Header(cfg.header, id)
		c.Request = c.Request.WithContext(cfg.enrich(c.Request.Context(), id))

		c.Next()
	}
}

// RequestID propagates X-Request-ID.
func RequestID() gin.HandlerFunc {
	return propagateID(idConfig{
		header: HeaderRequestID,
		key:    ContextKeyRequestID,
		enrich: logging.WithRequestID,
	})
}

// CorrelationID propagates X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return propagateID(idConfig{
		header: HeaderCorrelationID,
		key:    ContextKeyCorrelationID,
		enrich: logging.WithCorrelationID,
	})
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

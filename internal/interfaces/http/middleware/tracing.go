package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fredonbytes/backend/internal/infrastructure/logger"
)

// MaxRequestIDLength is the maximum length of a client supplied request id
const MaxRequestIDLength = 128

// MaxUserIDLength bounds the user id copied from the X-User-ID header into spans
const MaxUserIDLength = 128

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
}

// TracingWithConfig returns the otelgin middleware. The span name is
// "METHOD route", e.g. "GET /api/v1/orders/:code".
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return otelgin.Middleware(cfg.ServiceName)
}

// SpanEnricher copies request_id and user_id onto the active span and marks
// it as failed for 4xx/5xx responses. Place it right after TracingWithConfig.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if requestID := c.GetString(logger.GinRequestIDKey); requestID != "" {
				span.SetAttributes(attribute.String("request_id", requestID))
			}
			if userID := c.GetHeader("X-User-ID"); userID != "" && len(userID) <= MaxUserIDLength {
				span.SetAttributes(attribute.String("user_id", userID))
			}
		}

		c.Next()

		if !span.IsRecording() {
			return
		}
		status := c.Writer.Status()
		if status >= http.StatusBadRequest {
			span.SetStatus(codes.Error, http.StatusText(status))
			span.SetAttributes(attribute.Int("http.status_code", status))
		}
	}
}

package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"StockDashboard/internal/trace"
)

// RequestID accepts a well-formed incoming X-Request-ID or mints one, stores it in the
// request context and echoes it back. It also writes the access log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := trace.FromHeader(c.GetHeader(trace.Header))
		ctx := trace.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(trace.Header, id)

		start := time.Now()
		c.Next()

		trace.Logger(ctx).Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}

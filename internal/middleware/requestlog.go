package middleware

import (
	"time"

	"github.com/carelink-dev/carelink/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestLogger tags each request with an id and emits one structured log
// line when it completes.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		rid := uuid.NewString()
		ctx.Set(types.ContextRequestIDKey, rid)
		ctx.Writer.Header().Set("X-Request-ID", rid)

		ctx.Next()

		status := ctx.Writer.Status()

		evt := logger.Info()
		if status >= 500 || len(ctx.Errors) > 0 {
			evt = logger.Error()
		}

		evt.
			Str("request_id", rid).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("remote_ip", ctx.ClientIP()).
			Msg("request")
	}
}

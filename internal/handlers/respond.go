package handlers

import (
	"net/http"

	"github.com/carelink-dev/carelink/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError translates service errors into the JSON shapes the API
// exposes: field-keyed maps for validation failures, {"error": ...} for the
// rest. Unexpected errors are logged and surface as a generic 500.
func respondError(ctx *gin.Context, err error) {
	if appErr, ok := apperrors.From(err); ok {
		if len(appErr.Fields) > 0 {
			ctx.JSON(apperrors.Status(err), appErr.Fields)
			return
		}
		ctx.JSON(apperrors.Status(err), gin.H{"error": appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("request failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

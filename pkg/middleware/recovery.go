package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legendscr/pkg/utils"
)

// Recovery turns a panic into a 500 envelope instead of gin's bare status.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))
		utils.RespondError(c, http.StatusInternalServerError, "Error inesperado del servidor")
	})
}

// NotFound answers unknown routes with the envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Recurso no encontrado")
	}
}

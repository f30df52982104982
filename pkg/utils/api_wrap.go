package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the envelope returned by every endpoint, on success and failure.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

func RespondSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		StatusCode: code,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, APIResponse{
		StatusCode: code,
		Success:    false,
		Message:    message,
		Data:       nil,
	})
}

// HandleServiceError relays a ServiceError as-is and downgrades anything else
// to a 500 whose message carries the redacted failure text.
func HandleServiceError(c *gin.Context, err error) {
	if se, ok := AsServiceError(err); ok {
		if se.Status >= http.StatusInternalServerError {
			zap.L().Error("service failure",
				zap.String("trace_id", c.GetString("trace_id")),
				zap.String("path", c.FullPath()),
				zap.Error(err))
		}
		RespondError(c, se.Status, se.Message)
		return
	}

	zap.L().Error("unexpected error",
		zap.String("trace_id", c.GetString("trace_id")),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	RespondError(c, http.StatusInternalServerError, "Error inesperado: "+Redact(err.Error()))
}

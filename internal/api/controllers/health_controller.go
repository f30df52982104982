package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"legendscr/internal/infra"
	"legendscr/pkg/utils"
)

const healthTimeout = 2 * time.Second

type HealthController struct {
	ping func(ctx context.Context) error
	log  *zap.Logger
}

func NewHealthController(db *gorm.DB, log *zap.Logger) *HealthController {
	return &HealthController{
		ping: func(ctx context.Context) error { return infra.PingPostgres(ctx, db) },
		log:  log,
	}
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Warn("database ping failed",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Base de datos no disponible")
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"database": "up"}, "Servicio disponible")
}

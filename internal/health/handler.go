// Package health serves the liveness endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/database"
)

// Handler answers health probes.
type Handler struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// New builds a health handler.
func New(db *gorm.DB, log *zap.SugaredLogger) *Handler {
	return &Handler{db: db, log: log}
}

// Response is the health payload.
type Response struct {
	Status string `json:"status"`
}

// Check handles GET /health: 200 when the database answers, 503 otherwise.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.log.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "ok"})
}

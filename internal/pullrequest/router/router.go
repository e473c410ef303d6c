// Package router wires the pullrequest module into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/handler"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/service"
)

// RegisterRoutes mounts the pull request endpoints.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.SugaredLogger) {
	svc := service.New(db, log)
	h := handler.New(svc, log)

	r.POST("/pullRequest/create", h.Create)
	r.POST("/pullRequest/merge", h.Merge)
	r.POST("/pullRequest/reassign", h.Reassign)
}

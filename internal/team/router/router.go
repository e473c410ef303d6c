// Package router wires the team module into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/team/handler"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/team/repository"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/team/service"
)

// RegisterRoutes mounts the team endpoints.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.SugaredLogger) {
	repo := repository.New(db, log)
	svc := service.New(repo, db, log)
	h := handler.New(svc, log)

	r.POST("/team/add", h.AddTeam)
	r.GET("/team/get", h.GetTeam)
}

// Package router wires the user module into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/handler"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/repository"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/service"
)

// RegisterRoutes mounts the user endpoints.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.SugaredLogger) {
	repo := repository.New(db, log)
	svc := service.New(repo, log)
	h := handler.New(svc, log)

	r.POST("/users/setIsActive", h.SetIsActive)
	r.GET("/users/getReview", h.GetReview)
}

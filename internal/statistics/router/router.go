// Package router wires the statistics module into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/handler"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/repository"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/service"
)

// RegisterRoutes mounts the statistics endpoints.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.SugaredLogger) {
	repo := repository.New(db, log)
	svc := service.New(repo, log)
	h := handler.New(svc, log)

	r.GET("/statistics/reviewers", h.Reviewers)
	r.GET("/statistics/pullrequests", h.PullRequests)
}

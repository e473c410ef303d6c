// Package handler serves the statistics HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/service"
)

// Handler serves statistics endpoints.
type Handler struct {
	svc service.Service
	log *zap.SugaredLogger
}

// New builds a statistics handler.
func New(svc service.Service, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Reviewers handles GET /statistics/reviewers.
func (h *Handler) Reviewers(c *gin.Context) {
	resp, err := h.svc.Reviewers(c.Request.Context())
	if err != nil {
		h.log.Errorw("reviewer statistics failed", "error", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PullRequests handles GET /statistics/pullrequests.
func (h *Handler) PullRequests(c *gin.Context) {
	resp, err := h.svc.PullRequests(c.Request.Context())
	if err != nil {
		h.log.Errorw("pull request statistics failed", "error", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	c.JSON(http.StatusOK, resp)
}

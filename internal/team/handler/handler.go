// Package handler serves the team HTTP endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/team/model"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/team/service"
)

// Handler serves team endpoints.
type Handler struct {
	svc service.Service
	log *zap.SugaredLogger
}

// New builds a team handler.
func New(svc service.Service, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// AddTeam handles POST /team/add.
func (h *Handler) AddTeam(c *gin.Context) {
	var req model.AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.svc.AddTeam(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTeamExists):
			errorResponse(c, http.StatusBadRequest, "TEAM_EXISTS", "team_name already exists")
		case errors.Is(err, model.ErrInvalidTeamName):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.log.Errorw("add team failed", "team_name", req.TeamName, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": resp})
}

// GetTeam handles GET /team/get.
func (h *Handler) GetTeam(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "team_name parameter is required")
		return
	}

	resp, err := h.svc.GetTeam(c.Request.Context(), teamName)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.log.Errorw("get team failed", "team_name", teamName, "error", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

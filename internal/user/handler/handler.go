// Package handler serves the user HTTP endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/model"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/service"
)

// Handler serves user endpoints.
type Handler struct {
	svc service.Service
	log *zap.SugaredLogger
}

// New builds a user handler.
func New(svc service.Service, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// SetIsActive handles POST /users/setIsActive.
func (h *Handler) SetIsActive(c *gin.Context) {
	var req model.SetIsActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.svc.SetIsActive(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			notFoundResponse(c, "user not found")
		case errors.Is(err, model.ErrInvalidUserID):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.log.Errorw("set is_active failed", "user_id", req.UserID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetReview handles GET /users/getReview. Unknown users yield an empty list
// rather than 404.
func (h *Handler) GetReview(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "user_id parameter is required")
		return
	}

	resp, err := h.svc.GetReview(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrInvalidUserID) {
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		h.log.Errorw("get review failed", "user_id", userID, "error", err)
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}

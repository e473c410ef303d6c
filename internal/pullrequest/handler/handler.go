// Package handler serves the pull request HTTP endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/model"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/service"
)

// Handler serves pull request endpoints.
type Handler struct {
	svc service.Service
	log *zap.SugaredLogger
}

// New builds a pullrequest handler.
func New(svc service.Service, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Create handles POST /pullRequest/create.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPullRequestExists):
			errorResponse(c, http.StatusConflict, "PR_EXISTS", "PR id already exists")
		case errors.Is(err, model.ErrAuthorNotFound):
			notFoundResponse(c, "author not found")
		case isValidation(err):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.log.Errorw("create PR failed", "pull_request_id", req.PullRequestID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pr": resp})
}

// Merge handles POST /pullRequest/merge.
func (h *Handler) Merge(c *gin.Context) {
	var req model.MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.svc.Merge(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPullRequestNotFound):
			notFoundResponse(c, "pull request not found")
		case isValidation(err):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.log.Errorw("merge PR failed", "pull_request_id", req.PullRequestID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"pr": resp})
}

// Reassign handles POST /pullRequest/reassign.
func (h *Handler) Reassign(c *gin.Context) {
	var req model.ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	resp, err := h.svc.Reassign(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPullRequestNotFound):
			notFoundResponse(c, "pull request not found")
		case errors.Is(err, model.ErrPullRequestMerged):
			errorResponse(c, http.StatusConflict, "PR_MERGED", "cannot reassign reviewers on a merged PR")
		case errors.Is(err, model.ErrNotAssigned):
			errorResponse(c, http.StatusConflict, "NOT_ASSIGNED", "reviewer is not assigned to this PR")
		case errors.Is(err, model.ErrNoCandidate):
			errorResponse(c, http.StatusConflict, "NO_CANDIDATE", "no active replacement candidate in team")
		case isValidation(err):
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		default:
			h.log.Errorw("reassign reviewer failed", "pull_request_id", req.PullRequestID, "error", err)
			errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func isValidation(err error) bool {
	return errors.Is(err, model.ErrInvalidPullRequestID) ||
		errors.Is(err, model.ErrInvalidPullRequestName) ||
		errors.Is(err, model.ErrInvalidAuthorID) ||
		errors.Is(err, model.ErrInvalidUserID)
}

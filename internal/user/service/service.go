// Package service is the business logic layer of the user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/model"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/repository"
)

// Service exposes user operations.
type Service interface {
	// SetIsActive flips a user's eligibility flag.
	SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error)

	// GetReview lists the PRs the user currently reviews. Unknown users get
	// an empty list, not an error.
	GetReview(ctx context.Context, userID string) (*model.GetReviewResponse, error)
}

type service struct {
	repo repository.Repository
	log  *zap.SugaredLogger
}

// New builds a user service.
func New(repo repository.Repository, log *zap.SugaredLogger) Service {
	return &service{repo: repo, log: log}
}

// SetIsActive only affects future reviewer selection; assignments that
// already exist stay in place.
func (s *service) SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error) {
	if req.UserID == "" || len(req.UserID) > 255 {
		return nil, model.ErrInvalidUserID
	}

	user, err := s.repo.SetIsActive(ctx, req.UserID, *req.IsActive)
	if err != nil {
		return nil, err
	}

	s.log.Infow("user activity updated", "user_id", req.UserID, "is_active", *req.IsActive)
	return &model.SetIsActiveResponse{User: *user}, nil
}

func (s *service) GetReview(ctx context.Context, userID string) (*model.GetReviewResponse, error) {
	if userID == "" || len(userID) > 255 {
		return nil, model.ErrInvalidUserID
	}

	prs, err := s.repo.AssignedPullRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.GetReviewResponse{UserID: userID, PullRequests: prs}, nil
}

// Package service is the business logic layer of the statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/model"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/repository"
)

// Service exposes the statistics operations.
type Service interface {
	Reviewers(ctx context.Context) (*model.ReviewersResponse, error)
	PullRequests(ctx context.Context) (*model.PullRequestsResponse, error)
}

type service struct {
	repo repository.Repository
	log  *zap.SugaredLogger
}

// New builds a statistics service.
func New(repo repository.Repository, log *zap.SugaredLogger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Reviewers(ctx context.Context) (*model.ReviewersResponse, error) {
	reviewers, err := s.repo.ReviewerStats(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ReviewersResponse{Reviewers: reviewers, Total: len(reviewers)}, nil
}

func (s *service) PullRequests(ctx context.Context) (*model.PullRequestsResponse, error) {
	stats, err := s.repo.PullRequestStats(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PullRequestsResponse{Statistics: *stats}, nil
}

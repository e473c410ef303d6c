// Package repository is the data access layer of the user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/user/model"
)

// Repository provides access to users and their review assignments.
type Repository interface {
	// GetByID finds a user by id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// SetIsActive flips the is_active flag and returns the updated user.
	SetIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error)

	// AssignedPullRequests returns the PRs the user currently reviews.
	AssignedPullRequests(ctx context.Context, userID string) ([]model.PullRequestShort, error)
}

type repo struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// New builds a user repository over db.
func New(db *gorm.DB, log *zap.SugaredLogger) Repository {
	return &repo{db: db, log: log}
}

func (r *repo) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		r.log.Errorw("get user failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *repo) SetIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("is_active", isActive)
	if result.Error != nil {
		r.log.Errorw("set is_active failed", "user_id", userID, "error", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, model.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}

func (r *repo) AssignedPullRequests(ctx context.Context, userID string) ([]model.PullRequestShort, error) {
	var prs []model.PullRequestShort
	err := r.db.WithContext(ctx).
		Table("pull_requests").
		Select("pull_requests.pull_request_id, pull_requests.pull_request_name, pull_requests.author_id, pull_requests.status").
		Joins("JOIN pull_request_reviewers ON pull_request_reviewers.pull_request_id = pull_requests.pull_request_id").
		Where("pull_request_reviewers.user_id = ?", userID).
		Order("pull_requests.created_at DESC").
		Scan(&prs).Error
	if err != nil {
		r.log.Errorw("list assigned PRs failed", "user_id", userID, "error", err)
		return nil, err
	}
	if prs == nil {
		prs = []model.PullRequestShort{}
	}
	return prs, nil
}

// Package repository is the data access layer of the pullrequest module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	pullrequestmodel "github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/model"
	usermodel "github.com/DragonCaesar2004/Code-review-assigner/internal/user/model"
)

// Repository provides access to pull requests and reviewer assignments.
type Repository interface {
	// Create inserts a new PR with status OPEN.
	Create(ctx context.Context, prID, prName, authorID string) (*pullrequestmodel.PullRequest, error)

	// GetByID finds a PR by id.
	GetByID(ctx context.Context, prID string) (*pullrequestmodel.PullRequest, error)

	// MarkMerged sets status MERGED and the merge timestamp.
	MarkMerged(ctx context.Context, prID string, mergedAt time.Time) error

	// AddReviewer inserts one assignment row.
	AddReviewer(ctx context.Context, prID, userID string) error

	// RemoveReviewer deletes one assignment row.
	RemoveReviewer(ctx context.Context, prID, userID string) error

	// ReviewerIDs lists the current reviewer ids of a PR in assignment order.
	ReviewerIDs(ctx context.Context, prID string) ([]string, error)

	// ActiveTeamMembers lists active users of a team, optionally excluding one id.
	ActiveTeamMembers(ctx context.Context, teamName, excludeUserID string) ([]usermodel.User, error)

	// UserTeam resolves the team of a user.
	UserTeam(ctx context.Context, userID string) (string, error)
}

type repo struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// New builds a pullrequest repository over db.
func New(db *gorm.DB, log *zap.SugaredLogger) Repository {
	return &repo{db: db, log: log}
}

func (r *repo) Create(ctx context.Context, prID, prName, authorID string) (*pullrequestmodel.PullRequest, error) {
	pr := &pullrequestmodel.PullRequest{
		PullRequestID:   prID,
		PullRequestName: prName,
		AuthorID:        authorID,
		Status:          pullrequestmodel.StatusOpen,
		CreatedAt:       time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(pr).Error; err != nil {
		if isDuplicate(err) {
			return nil, pullrequestmodel.ErrPullRequestExists
		}
		r.log.Errorw("create PR failed", "pull_request_id", prID, "error", err)
		return nil, err
	}
	return pr, nil
}

func (r *repo) GetByID(ctx context.Context, prID string) (*pullrequestmodel.PullRequest, error) {
	var pr pullrequestmodel.PullRequest
	err := r.db.WithContext(ctx).
		Where("pull_request_id = ?", prID).
		First(&pr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pullrequestmodel.ErrPullRequestNotFound
		}
		return nil, err
	}
	return &pr, nil
}

// MarkMerged only touches OPEN rows, so a concurrent second merge cannot
// overwrite the original timestamp.
func (r *repo) MarkMerged(ctx context.Context, prID string, mergedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&pullrequestmodel.PullRequest{}).
		Where("pull_request_id = ? AND status = ?", prID, pullrequestmodel.StatusOpen).
		Updates(map[string]interface{}{
			"status":    pullrequestmodel.StatusMerged,
			"merged_at": mergedAt,
		})
	if result.Error != nil {
		r.log.Errorw("mark merged failed", "pull_request_id", prID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pullrequestmodel.ErrPullRequestNotFound
	}
	return nil
}

func (r *repo) AddReviewer(ctx context.Context, prID, userID string) error {
	current, err := r.ReviewerIDs(ctx, prID)
	if err != nil {
		return err
	}
	for _, id := range current {
		if id == userID {
			return pullrequestmodel.ErrReviewerAlreadyAssigned
		}
	}
	if len(current) >= pullrequestmodel.MaxReviewers {
		return pullrequestmodel.ErrMaxReviewersExceeded
	}

	row := &pullrequestmodel.Reviewer{
		PullRequestID: prID,
		UserID:        userID,
		AssignedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		// The composite unique key is the arbiter under concurrent writers.
		if isDuplicate(err) {
			return pullrequestmodel.ErrReviewerAlreadyAssigned
		}
		r.log.Errorw("add reviewer failed", "pull_request_id", prID, "user_id", userID, "error", err)
		return err
	}
	return nil
}

func (r *repo) RemoveReviewer(ctx context.Context, prID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("pull_request_id = ? AND user_id = ?", prID, userID).
		Delete(&pullrequestmodel.Reviewer{})
	if result.Error != nil {
		r.log.Errorw("remove reviewer failed", "pull_request_id", prID, "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pullrequestmodel.ErrNotAssigned
	}
	return nil
}

func (r *repo) ReviewerIDs(ctx context.Context, prID string) ([]string, error) {
	var rows []pullrequestmodel.Reviewer
	err := r.db.WithContext(ctx).
		Where("pull_request_id = ?", prID).
		Order("assigned_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	return ids, nil
}

func (r *repo) ActiveTeamMembers(ctx context.Context, teamName, excludeUserID string) ([]usermodel.User, error) {
	query := r.db.WithContext(ctx).
		Where("team_name = ? AND is_active = ?", teamName, true)
	if excludeUserID != "" {
		query = query.Where("user_id <> ?", excludeUserID)
	}

	var users []usermodel.User
	if err := query.Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	if users == nil {
		users = []usermodel.User{}
	}
	return users, nil
}

func (r *repo) UserTeam(ctx context.Context, userID string) (string, error) {
	var user usermodel.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pullrequestmodel.ErrAuthorNotFound
		}
		return "", err
	}
	return user.TeamName, nil
}

// isDuplicate recognizes unique constraint violations across the postgres and
// sqlite drivers.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

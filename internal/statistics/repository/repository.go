// Package repository runs the read-only aggregation queries for statistics.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/model"
)

// Repository provides the statistics queries.
type Repository interface {
	// ReviewerStats returns assignment counts per user, busiest first.
	ReviewerStats(ctx context.Context) ([]model.ReviewerStats, error)

	// PullRequestStats returns PR totals and the reviewer-count distribution.
	PullRequestStats(ctx context.Context) (*model.PullRequestStats, error)
}

type repo struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// New builds a statistics repository over db.
func New(db *gorm.DB, log *zap.SugaredLogger) Repository {
	return &repo{db: db, log: log}
}

func (r *repo) ReviewerStats(ctx context.Context) ([]model.ReviewerStats, error) {
	var stats []model.ReviewerStats
	err := r.db.WithContext(ctx).
		Table("users").
		Select(`users.user_id,
			users.username,
			users.team_name,
			users.is_active,
			COUNT(pull_request_reviewers.user_id) AS assignment_count`).
		Joins("LEFT JOIN pull_request_reviewers ON pull_request_reviewers.user_id = users.user_id").
		Group("users.user_id, users.username, users.team_name, users.is_active").
		Order("assignment_count DESC, users.user_id ASC").
		Scan(&stats).Error
	if err != nil {
		r.log.Errorw("reviewer stats query failed", "error", err)
		return nil, err
	}
	if stats == nil {
		stats = []model.ReviewerStats{}
	}
	return stats, nil
}

func (r *repo) PullRequestStats(ctx context.Context) (*model.PullRequestStats, error) {
	var row struct {
		TotalPRs     int64   `gorm:"column:total_prs"`
		OpenPRs      int64   `gorm:"column:open_prs"`
		MergedPRs    int64   `gorm:"column:merged_prs"`
		AvgReviewers float64 `gorm:"column:avg_reviewers"`
		ZeroReviewer int64   `gorm:"column:prs_0"`
		OneReviewer  int64   `gorm:"column:prs_1"`
		TwoReviewers int64   `gorm:"column:prs_2"`
	}

	err := r.db.WithContext(ctx).
		Table("pull_requests").
		Select(`COUNT(*) AS total_prs,
			COALESCE(SUM(CASE WHEN status = 'OPEN' THEN 1 ELSE 0 END), 0) AS open_prs,
			COALESCE(SUM(CASE WHEN status = 'MERGED' THEN 1 ELSE 0 END), 0) AS merged_prs,
			COALESCE(AVG(COALESCE(rc.reviewer_count, 0)), 0) AS avg_reviewers,
			COALESCE(SUM(CASE WHEN COALESCE(rc.reviewer_count, 0) = 0 THEN 1 ELSE 0 END), 0) AS prs_0,
			COALESCE(SUM(CASE WHEN COALESCE(rc.reviewer_count, 0) = 1 THEN 1 ELSE 0 END), 0) AS prs_1,
			COALESCE(SUM(CASE WHEN COALESCE(rc.reviewer_count, 0) = 2 THEN 1 ELSE 0 END), 0) AS prs_2`).
		Joins(`LEFT JOIN (
			SELECT pull_request_id, CAST(COUNT(*) AS REAL) AS reviewer_count
			FROM pull_request_reviewers
			GROUP BY pull_request_id
		) rc ON rc.pull_request_id = pull_requests.pull_request_id`).
		Scan(&row).Error
	if err != nil {
		r.log.Errorw("pull request stats query failed", "error", err)
		return nil, err
	}

	return &model.PullRequestStats{
		TotalPRs:              int(row.TotalPRs),
		OpenPRs:               int(row.OpenPRs),
		MergedPRs:             int(row.MergedPRs),
		AverageReviewersPerPR: row.AvgReviewers,
		PRsWithoutReviewers:   int(row.ZeroReviewer),
		PRsWithOneReviewer:    int(row.OneReviewer),
		PRsWithTwoReviewers:   int(row.TwoReviewers),
	}, nil
}

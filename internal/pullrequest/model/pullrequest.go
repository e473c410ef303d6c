package model

import "time"

// Pull request status values. MERGED is terminal.
const (
	StatusOpen   = "OPEN"
	StatusMerged = "MERGED"
)

// MaxReviewers caps how many reviewers a PR may hold at once.
const MaxReviewers = 2

// PullRequest is a row of the pull_requests table.
type PullRequest struct {
	PullRequestID   string     `gorm:"primaryKey;column:pull_request_id;type:varchar(255)" json:"pull_request_id"`
	PullRequestName string     `gorm:"column:pull_request_name;type:varchar(255);not null" json:"pull_request_name"`
	AuthorID        string     `gorm:"column:author_id;type:varchar(255);not null;index:idx_pull_requests_author_id" json:"author_id"`
	Status          string     `gorm:"column:status;type:varchar(16);not null;index:idx_pull_requests_status" json:"status"`
	CreatedAt       time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`
	MergedAt        *time.Time `gorm:"column:merged_at;type:timestamptz" json:"mergedAt,omitempty"`
}

// TableName maps the struct to the pull_requests table.
func (PullRequest) TableName() string {
	return "pull_requests"
}

// Merged reports whether the PR reached its terminal state.
func (pr *PullRequest) Merged() bool {
	return pr.Status == StatusMerged
}

// Reviewer is a row of the pull_request_reviewers table. The pair
// (pull_request_id, user_id) is unique, so double assignment is impossible
// by construction.
type Reviewer struct {
	ID            int64     `gorm:"primaryKey;column:id" json:"id"`
	PullRequestID string    `gorm:"column:pull_request_id;type:varchar(255);not null;uniqueIndex:uq_reviewer_per_pr" json:"pull_request_id"`
	UserID        string    `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:uq_reviewer_per_pr;index:idx_reviewers_user_id" json:"user_id"`
	AssignedAt    time.Time `gorm:"column:assigned_at;type:timestamptz;not null;default:now()" json:"assigned_at"`
}

// TableName maps the struct to the pull_request_reviewers table.
func (Reviewer) TableName() string {
	return "pull_request_reviewers"
}

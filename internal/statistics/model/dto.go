// Package model holds the statistics DTOs.
package model

// ReviewerStats is the per-user assignment load.
type ReviewerStats struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	TeamName        string `json:"team_name"`
	IsActive        bool   `json:"is_active"`
	AssignmentCount int    `json:"assignment_count"`
}

// ReviewersResponse lists assignment load for every user.
type ReviewersResponse struct {
	Reviewers []ReviewerStats `json:"reviewers"`
	Total     int             `json:"total"`
}

// PullRequestStats aggregates PR counts and the reviewer distribution.
type PullRequestStats struct {
	TotalPRs              int     `json:"total_prs"`
	OpenPRs               int     `json:"open_prs"`
	MergedPRs             int     `json:"merged_prs"`
	AverageReviewersPerPR float64 `json:"average_reviewers_per_pr"`
	PRsWithoutReviewers   int     `json:"prs_with_0_reviewers"`
	PRsWithOneReviewer    int     `json:"prs_with_1_reviewer"`
	PRsWithTwoReviewers   int     `json:"prs_with_2_reviewers"`
}

// PullRequestsResponse wraps the PR statistics.
type PullRequestsResponse struct {
	Statistics PullRequestStats `json:"statistics"`
}

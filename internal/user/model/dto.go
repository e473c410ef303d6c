// Package model holds the user entity, DTOs and domain errors.
package model

// SetIsActiveRequest is the body of POST /users/setIsActive.
// IsActive is a pointer so that a missing field is distinguishable from false.
type SetIsActiveRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// SetIsActiveResponse wraps the updated user.
type SetIsActiveResponse struct {
	User User `json:"user"`
}

// PullRequestShort is the short PR form used in review listings.
type PullRequestShort struct {
	PullRequestID   string `json:"pull_request_id"`
	PullRequestName string `json:"pull_request_name"`
	AuthorID        string `json:"author_id"`
	Status          string `json:"status"`
}

// GetReviewResponse lists the PRs a user currently reviews.
type GetReviewResponse struct {
	UserID       string             `json:"user_id"`
	PullRequests []PullRequestShort `json:"pull_requests"`
}

// Package model holds the pull request entities, DTOs and domain errors.
package model

import "time"

// CreateRequest is the body of POST /pullRequest/create.
type CreateRequest struct {
	PullRequestID   string `json:"pull_request_id" binding:"required"`
	PullRequestName string `json:"pull_request_name" binding:"required"`
	AuthorID        string `json:"author_id" binding:"required"`
}

// MergeRequest is the body of POST /pullRequest/merge.
type MergeRequest struct {
	PullRequestID string `json:"pull_request_id" binding:"required"`
}

// ReassignRequest is the body of POST /pullRequest/reassign.
type ReassignRequest struct {
	PullRequestID string `json:"pull_request_id" binding:"required"`
	OldUserID     string `json:"old_user_id" binding:"required"`
}

// Response is the full PR payload with its current reviewer set.
type Response struct {
	PullRequestID     string   `json:"pull_request_id"`
	PullRequestName   string   `json:"pull_request_name"`
	AuthorID          string   `json:"author_id"`
	Status            string   `json:"status"`
	AssignedReviewers []string `json:"assigned_reviewers"`
	CreatedAt         string   `json:"createdAt,omitempty"`
	MergedAt          string   `json:"mergedAt,omitempty"`
}

// ReassignResponse pairs the updated PR with the incoming reviewer id.
type ReassignResponse struct {
	PR         *Response `json:"pr"`
	ReplacedBy string    `json:"replaced_by"`
}

// NewResponse builds a Response from the entity and its reviewer ids.
func NewResponse(pr *PullRequest, reviewerIDs []string) *Response {
	resp := &Response{
		PullRequestID:     pr.PullRequestID,
		PullRequestName:   pr.PullRequestName,
		AuthorID:          pr.AuthorID,
		Status:            pr.Status,
		AssignedReviewers: reviewerIDs,
		CreatedAt:         pr.CreatedAt.Format(time.RFC3339),
	}
	if pr.MergedAt != nil {
		resp.MergedAt = pr.MergedAt.Format(time.RFC3339)
	}
	return resp
}

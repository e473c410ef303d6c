package model

import "errors"

var (
	// ErrPullRequestExists reports a create on an already taken PR id.
	ErrPullRequestExists = errors.New("pull request already exists")
	// ErrPullRequestNotFound reports a lookup of a missing PR.
	ErrPullRequestNotFound = errors.New("pull request not found")
	// ErrPullRequestMerged reports a reviewer mutation on a merged PR.
	ErrPullRequestMerged = errors.New("pull request is already merged")
	// ErrNotAssigned reports a reassignment of a user who does not review the PR.
	ErrNotAssigned = errors.New("reviewer is not assigned to this pull request")
	// ErrNoCandidate reports an empty replacement pool.
	ErrNoCandidate = errors.New("no active replacement candidate in team")
	// ErrAuthorNotFound reports an unknown PR author.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrReviewerAlreadyAssigned reports a duplicate assignment attempt.
	ErrReviewerAlreadyAssigned = errors.New("reviewer already assigned to this pull request")
	// ErrMaxReviewersExceeded reports an assignment beyond the reviewer cap.
	ErrMaxReviewersExceeded = errors.New("maximum number of reviewers exceeded")
	// ErrInvalidPullRequestID reports an empty or oversized PR id.
	ErrInvalidPullRequestID = errors.New("pull_request_id must be between 1 and 255 characters")
	// ErrInvalidPullRequestName reports an empty or oversized PR name.
	ErrInvalidPullRequestName = errors.New("pull_request_name must be between 1 and 255 characters")
	// ErrInvalidAuthorID reports an empty or oversized author id.
	ErrInvalidAuthorID = errors.New("author_id must be between 1 and 255 characters")
	// ErrInvalidUserID reports an empty or oversized user id.
	ErrInvalidUserID = errors.New("old_user_id must be between 1 and 255 characters")
)

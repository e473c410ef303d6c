package model

import "errors"

var (
	// ErrUserNotFound reports a lookup of a missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID reports an empty or oversized user id.
	ErrInvalidUserID = errors.New("user_id must be between 1 and 255 characters")
)

package model

import "errors"

var (
	// ErrTeamExists reports a create on an already taken team name.
	ErrTeamExists = errors.New("team already exists")
	// ErrTeamNotFound reports a lookup of a missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName reports an empty or oversized team name.
	ErrInvalidTeamName = errors.New("team_name must be between 1 and 255 characters")
)

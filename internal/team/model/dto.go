// Package model holds the team entity, DTOs and domain errors.
package model

// Member is a team member as it appears in requests and responses.
type Member struct {
	UserID   string `json:"user_id" binding:"required"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

// AddTeamRequest is the body of POST /team/add. An empty member list is
// valid: the team is created without users.
type AddTeamRequest struct {
	TeamName string   `json:"team_name" binding:"required"`
	Members  []Member `json:"members" binding:"dive"`
}

// TeamResponse is the payload returned for a team with its members.
type TeamResponse struct {
	TeamName string   `json:"team_name"`
	Members  []Member `json:"members"`
}

// Package repository is the data access layer of the team module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teammodel "github.com/DragonCaesar2004/Code-review-assigner/internal/team/model"
	usermodel "github.com/DragonCaesar2004/Code-review-assigner/internal/user/model"
)

// Repository provides access to teams and their membership.
type Repository interface {
	// Create inserts a new team row.
	Create(ctx context.Context, teamName string) (*teammodel.Team, error)

	// GetByName finds a team by its name.
	GetByName(ctx context.Context, teamName string) (*teammodel.Team, error)

	// UpsertMember creates the user or moves an existing user into the team,
	// overwriting username and is_active.
	UpsertMember(ctx context.Context, teamName string, m teammodel.Member) (*usermodel.User, error)

	// Members returns every user of the team ordered by user_id.
	Members(ctx context.Context, teamName string) ([]teammodel.Member, error)
}

type repo struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// New builds a team repository over db.
func New(db *gorm.DB, log *zap.SugaredLogger) Repository {
	return &repo{db: db, log: log}
}

func (r *repo) Create(ctx context.Context, teamName string) (*teammodel.Team, error) {
	now := time.Now()
	team := &teammodel.Team{TeamName: teamName, CreatedAt: now, UpdatedAt: now}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if isDuplicate(err) {
			return nil, teammodel.ErrTeamExists
		}
		r.log.Errorw("create team failed", "team_name", teamName, "error", err)
		return nil, err
	}
	return team, nil
}

func (r *repo) GetByName(ctx context.Context, teamName string) (*teammodel.Team, error) {
	var team teammodel.Team
	err := r.db.WithContext(ctx).
		Where("team_name = ?", teamName).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teammodel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repo) UpsertMember(ctx context.Context, teamName string, m teammodel.Member) (*usermodel.User, error) {
	user := &usermodel.User{
		UserID:   m.UserID,
		Username: m.Username,
		TeamName: teamName,
		IsActive: m.IsActive,
	}

	// Save upserts by primary key: a user listed under a new team is moved
	// into it, which is the documented side effect of team creation.
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		r.log.Errorw("upsert member failed", "user_id", m.UserID, "team_name", teamName, "error", err)
		return nil, err
	}
	return user, nil
}

func (r *repo) Members(ctx context.Context, teamName string) ([]teammodel.Member, error) {
	var members []teammodel.Member
	err := r.db.WithContext(ctx).
		Table("users").
		Select("user_id, username, is_active").
		Where("team_name = ?", teamName).
		Order("user_id ASC").
		Scan(&members).Error
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []teammodel.Member{}
	}
	return members, nil
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

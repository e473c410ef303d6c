// Package service is the business logic layer of the team module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/team/model"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/team/repository"
)

// Service exposes team operations.
type Service interface {
	// AddTeam creates a team and upserts all listed members.
	AddTeam(ctx context.Context, req *model.AddTeamRequest) (*model.TeamResponse, error)

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, teamName string) (*model.TeamResponse, error)
}

type service struct {
	repo repository.Repository
	db   *gorm.DB
	log  *zap.SugaredLogger
}

// New builds a team service.
func New(repo repository.Repository, db *gorm.DB, log *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, log: log}
}

// AddTeam creates the team row and upserts every member as one transaction,
// so a duplicate team name leaves no partial membership behind.
func (s *service) AddTeam(ctx context.Context, req *model.AddTeamRequest) (*model.TeamResponse, error) {
	if req.TeamName == "" || len(req.TeamName) > 255 {
		return nil, model.ErrInvalidTeamName
	}

	var resp *model.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.log)

		if _, err := txRepo.Create(ctx, req.TeamName); err != nil {
			return err
		}

		for _, m := range req.Members {
			if m.UserID == "" {
				continue
			}
			if _, err := txRepo.UpsertMember(ctx, req.TeamName, m); err != nil {
				return err
			}
		}

		members, err := txRepo.Members(ctx, req.TeamName)
		if err != nil {
			return err
		}
		resp = &model.TeamResponse{TeamName: req.TeamName, Members: members}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("team created", "team_name", req.TeamName, "members", len(resp.Members))
	return resp, nil
}

func (s *service) GetTeam(ctx context.Context, teamName string) (*model.TeamResponse, error) {
	if teamName == "" {
		return nil, model.ErrInvalidTeamName
	}

	if _, err := s.repo.GetByName(ctx, teamName); err != nil {
		return nil, err
	}

	members, err := s.repo.Members(ctx, teamName)
	if err != nil {
		return nil, err
	}
	return &model.TeamResponse{TeamName: teamName, Members: members}, nil
}

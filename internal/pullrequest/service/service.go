// Package service is the business logic layer of the pullrequest module:
// PR lifecycle (create, merge, reassign) on top of the assignment policy.
package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/assignment"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/model"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/repository"
)

// Service exposes the PR lifecycle operations.
type Service interface {
	// Create persists a new PR and assigns up to two reviewers from the
	// author's team.
	Create(ctx context.Context, req *model.CreateRequest) (*model.Response, error)

	// Merge marks a PR as MERGED. Idempotent: a second call returns the PR
	// unchanged with the original merge timestamp.
	Merge(ctx context.Context, req *model.MergeRequest) (*model.Response, error)

	// Reassign swaps one assigned reviewer for another from the departing
	// reviewer's team.
	Reassign(ctx context.Context, req *model.ReassignRequest) (*model.ReassignResponse, error)
}

type service struct {
	db     *gorm.DB
	picker *assignment.Picker
	log    *zap.SugaredLogger
}

// New builds a pullrequest service. Every operation runs on a tx-scoped
// repository, so the service only holds the database handle.
func New(db *gorm.DB, log *zap.SugaredLogger) Service {
	return &service{
		db:     db,
		picker: assignment.NewPicker(),
		log:    log,
	}
}

func (s *service) Create(ctx context.Context, req *model.CreateRequest) (*model.Response, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	// Everything runs in one transaction so the existence checks still hold
	// at write time under concurrent callers.
	var resp *model.Response
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.log)

		// A taken PR id wins over any other failure, author errors included.
		switch _, err := txRepo.GetByID(ctx, req.PullRequestID); {
		case err == nil:
			return model.ErrPullRequestExists
		case !errors.Is(err, model.ErrPullRequestNotFound):
			return err
		}

		teamName, err := txRepo.UserTeam(ctx, req.AuthorID)
		if err != nil {
			return err
		}

		pr, err := txRepo.Create(ctx, req.PullRequestID, req.PullRequestName, req.AuthorID)
		if err != nil {
			return err
		}

		candidates, err := txRepo.ActiveTeamMembers(ctx, teamName, req.AuthorID)
		if err != nil {
			return err
		}

		// Zero candidates is a valid outcome: the PR is created unreviewed.
		for _, reviewerID := range s.picker.SelectReviewers(candidates, model.MaxReviewers) {
			if err := txRepo.AddReviewer(ctx, pr.PullRequestID, reviewerID); err != nil {
				return err
			}
		}

		// Read the reviewer set back from storage rather than trusting the
		// in-memory selection.
		reviewerIDs, err := txRepo.ReviewerIDs(ctx, pr.PullRequestID)
		if err != nil {
			return err
		}

		resp = model.NewResponse(pr, reviewerIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("pull request created",
		"pull_request_id", resp.PullRequestID,
		"author_id", resp.AuthorID,
		"reviewers", resp.AssignedReviewers,
	)
	return resp, nil
}

func (s *service) Merge(ctx context.Context, req *model.MergeRequest) (*model.Response, error) {
	if req.PullRequestID == "" || len(req.PullRequestID) > 255 {
		return nil, model.ErrInvalidPullRequestID
	}

	var resp *model.Response
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.log)

		pr, err := txRepo.GetByID(ctx, req.PullRequestID)
		if err != nil {
			return err
		}

		if !pr.Merged() {
			err := txRepo.MarkMerged(ctx, req.PullRequestID, time.Now())
			if err != nil && !errors.Is(err, model.ErrPullRequestNotFound) {
				// A concurrent merge makes the guarded update touch zero rows;
				// that is fine, the reload below returns the winner's state.
				return err
			}

			if pr, err = txRepo.GetByID(ctx, req.PullRequestID); err != nil {
				return err
			}
			s.log.Infow("pull request merged", "pull_request_id", pr.PullRequestID)
		}

		reviewerIDs, err := txRepo.ReviewerIDs(ctx, req.PullRequestID)
		if err != nil {
			return err
		}
		resp = model.NewResponse(pr, reviewerIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) Reassign(ctx context.Context, req *model.ReassignRequest) (*model.ReassignResponse, error) {
	if err := validateReassign(req); err != nil {
		return nil, err
	}

	var resp *model.ReassignResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		resp, err = s.reassignTx(ctx, repository.New(tx, s.log), req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("reviewer reassigned",
		"pull_request_id", req.PullRequestID,
		"old_user_id", req.OldUserID,
		"replaced_by", resp.ReplacedBy,
	)
	return resp, nil
}

// reassignTx performs the checks of the reassignment state machine in order:
// PR existence, terminal status, assignment presence, candidate availability.
func (s *service) reassignTx(ctx context.Context, txRepo repository.Repository, req *model.ReassignRequest) (*model.ReassignResponse, error) {
	pr, err := txRepo.GetByID(ctx, req.PullRequestID)
	if err != nil {
		return nil, err
	}
	if pr.Merged() {
		return nil, model.ErrPullRequestMerged
	}

	reviewerIDs, err := txRepo.ReviewerIDs(ctx, req.PullRequestID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(reviewerIDs, req.OldUserID) {
		return nil, model.ErrNotAssigned
	}

	newReviewerID, err := s.findReplacement(ctx, txRepo, pr, req.OldUserID, reviewerIDs)
	if err != nil {
		return nil, err
	}

	// Delete plus insert is one unit of work; the surrounding transaction
	// guarantees no PR is left with a removed-but-unreplaced reviewer.
	if err := txRepo.RemoveReviewer(ctx, req.PullRequestID, req.OldUserID); err != nil {
		return nil, err
	}
	if err := txRepo.AddReviewer(ctx, req.PullRequestID, newReviewerID); err != nil {
		return nil, err
	}

	updated, err := txRepo.ReviewerIDs(ctx, req.PullRequestID)
	if err != nil {
		return nil, err
	}

	return &model.ReassignResponse{
		PR:         model.NewResponse(pr, updated),
		ReplacedBy: newReviewerID,
	}, nil
}

// findReplacement draws the new reviewer from the departing reviewer's own
// team, which may differ from the author's team. Excluded: the PR author and
// every currently assigned reviewer, the departing one included.
func (s *service) findReplacement(ctx context.Context, txRepo repository.Repository, pr *model.PullRequest, oldUserID string, reviewerIDs []string) (string, error) {
	teamName, err := txRepo.UserTeam(ctx, oldUserID)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return "", model.ErrNoCandidate
		}
		return "", err
	}

	pool, err := txRepo.ActiveTeamMembers(ctx, teamName, "")
	if err != nil {
		return "", err
	}

	exclude := map[string]struct{}{pr.AuthorID: {}}
	for _, id := range reviewerIDs {
		exclude[id] = struct{}{}
	}

	return s.picker.PickReplacement(assignment.FilterCandidates(pool, exclude))
}

func validateCreate(req *model.CreateRequest) error {
	if req.PullRequestID == "" || len(req.PullRequestID) > 255 {
		return model.ErrInvalidPullRequestID
	}
	if req.PullRequestName == "" || len(req.PullRequestName) > 255 {
		return model.ErrInvalidPullRequestName
	}
	if req.AuthorID == "" || len(req.AuthorID) > 255 {
		return model.ErrInvalidAuthorID
	}
	return nil
}

func validateReassign(req *model.ReassignRequest) error {
	if req.PullRequestID == "" || len(req.PullRequestID) > 255 {
		return model.ErrInvalidPullRequestID
	}
	if req.OldUserID == "" || len(req.OldUserID) > 255 {
		return model.ErrInvalidUserID
	}
	return nil
}

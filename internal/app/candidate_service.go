package app

import (
	"context"

	"talentrank/internal/common"
	"talentrank/internal/domain/analytics"
	"talentrank/internal/domain/candidate"
	"talentrank/internal/domain/position"
)

type CandidateService struct {
	repo      candidate.Repository
	positions position.Repository
	analytics analytics.Repository
}

func NewCandidateService(repo candidate.Repository, positions position.Repository, analytics analytics.Repository) *CandidateService {
	return &CandidateService{repo: repo, positions: positions, analytics: analytics}
}

func (s *CandidateService) ListByPosition(ctx context.Context, positionID common.UUID) ([]candidate.Candidate, error) {
	if _, err := s.positions.GetByID(ctx, positionID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListRanked(ctx, positionID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []candidate.Candidate{}
	}
	return items, nil
}

// Delete removes one candidate from its pool. Remaining scores are left as
// they are; the operator re-triggers ranking explicitly.
func (s *CandidateService) Delete(ctx context.Context, id common.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "candidate.deleted", Payload: map[string]string{"candidate_id": id.String(), "position_id": existing.PositionID.String()}})
	return nil
}

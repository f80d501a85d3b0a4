package app

import (
	"context"
	"strings"

	"talentrank/internal/common"
	"talentrank/internal/domain/analytics"
	"talentrank/internal/domain/position"
)

type PositionService struct {
	repo      position.Repository
	analytics analytics.Repository
}

func NewPositionService(repo position.Repository, analytics analytics.Repository) *PositionService {
	return &PositionService{repo: repo, analytics: analytics}
}

func (s *PositionService) Create(ctx context.Context, p position.Position) (*position.Position, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if p.Status == "" {
		p.Status = position.StatusDraft
	}
	normalized, err := normalizePositionStatus(p.Status)
	if err != nil {
		return nil, err
	}
	p.Status = normalized
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "position.created", Payload: map[string]string{"position_id": created.ID.String()}})
	return created, nil
}

func (s *PositionService) Get(ctx context.Context, id common.UUID) (*position.Position, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PositionService) List(ctx context.Context, limit, offset int, status position.Status) ([]position.Position, error) {
	if status != "" {
		normalized, err := normalizePositionStatus(status)
		if err != nil {
			return nil, err
		}
		status = normalized
	}
	return s.repo.List(ctx, limit, offset, status)
}

func (s *PositionService) UpdateStatus(ctx context.Context, id common.UUID, status position.Status) (*position.Position, error) {
	normalized, err := normalizePositionStatus(status)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateStatus(ctx, id, normalized)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "position.status_changed", Payload: map[string]string{"position_id": id.String(), "status": string(normalized)}})
	return updated, nil
}

func normalizePositionStatus(status position.Status) (position.Status, error) {
	normalized := position.Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch normalized {
	case position.StatusDraft, position.StatusOpen, position.StatusClosed:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid position status", map[string]string{"status": "status must be draft, open, or closed"})
	}
}

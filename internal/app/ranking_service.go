package app

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"talentrank/internal/common"
	"talentrank/internal/domain/analytics"
	"talentrank/internal/domain/candidate"
	"talentrank/internal/domain/position"
	"talentrank/internal/ranking"
)

type RankingService struct {
	candidates candidate.Repository
	positions  position.Repository
	analytics  analytics.Repository
	logger     *slog.Logger
}

func NewRankingService(candidates candidate.Repository, positions position.Repository, analytics analytics.Repository, logger *slog.Logger) *RankingService {
	return &RankingService{candidates: candidates, positions: positions, analytics: analytics, logger: logger}
}

// Rank recomputes the final score of every candidate in the position pool and
// persists all of them atomically, then returns the pool ordered by score
// descending with ties kept in import order. An empty pool is not an error:
// nothing is written and an empty list comes back.
func (s *RankingService) Rank(ctx context.Context, positionID common.UUID) ([]candidate.Candidate, error) {
	if _, err := s.positions.GetByID(ctx, positionID); err != nil {
		return nil, err
	}
	pool, err := s.candidates.ListByPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		s.logger.Info("nothing to rank", "position_id", positionID.String())
		return []candidate.Candidate{}, nil
	}

	scores := ranking.ScorePool(pool)
	updates := make([]candidate.ScoreUpdate, len(pool))
	for i := range pool {
		updates[i] = candidate.ScoreUpdate{ID: pool[i].ID, FinalScore: scores[i]}
		pool[i].FinalScore = &scores[i]
	}
	if err := s.candidates.UpdateScores(ctx, positionID, updates); err != nil {
		return nil, err
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return *pool[i].FinalScore > *pool[j].FinalScore
	})

	_ = s.analytics.Create(ctx, analytics.Event{Name: "ranking.completed", Payload: map[string]string{"position_id": positionID.String(), "count": strconv.Itoa(len(pool))}})
	s.logger.Info("ranking completed", "position_id", positionID.String(), "candidates", len(pool))
	return pool, nil
}

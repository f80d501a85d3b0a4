package candidate

import (
	"context"

	"talentrank/internal/common"
)

// ScoreUpdate pairs a candidate with its recomputed final score. Updates are
// applied in slice order so concurrent runs over the same pool take row locks
// in the same sequence.
type ScoreUpdate struct {
	ID         common.UUID
	FinalScore float64
}

type Repository interface {
	CreateBatch(ctx context.Context, candidates []Candidate) ([]Candidate, error)
	GetByID(ctx context.Context, id common.UUID) (*Candidate, error)
	// ListByPosition returns the pool in import order (import_seq ascending).
	ListByPosition(ctx context.Context, positionID common.UUID) ([]Candidate, error)
	// ListRanked orders by final_score descending with unscored candidates
	// last, ties and unscored rows in import order.
	ListRanked(ctx context.Context, positionID common.UUID) ([]Candidate, error)
	// UpdateScores applies all updates in one transaction; a failure leaves
	// every previous score untouched.
	UpdateScores(ctx context.Context, positionID common.UUID, updates []ScoreUpdate) error
	Delete(ctx context.Context, id common.UUID) error
}

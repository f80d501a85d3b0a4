package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"talentrank/internal/common"
	"talentrank/internal/domain/analytics"
	"talentrank/internal/domain/candidate"
	"talentrank/internal/domain/position"
)

type fakePositionRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*position.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{items: make(map[common.UUID]*position.Position)}
}

func (r *fakePositionRepo) Create(ctx context.Context, p position.Position) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = common.NewUUID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	stored := p
	r.items[p.ID] = &stored
	return &p, nil
}

func (r *fakePositionRepo) GetByID(ctx context.Context, id common.UUID) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakePositionRepo) List(ctx context.Context, limit, offset int, status position.Status) ([]position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []position.Position
	for _, stored := range r.items {
		if status != "" && stored.Status != status {
			continue
		}
		items = append(items, *stored)
	}
	return items, nil
}

func (r *fakePositionRepo) UpdateStatus(ctx context.Context, id common.UUID, status position.Status) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "position not found", nil)
	}
	stored.Status = status
	stored.UpdatedAt = time.Now().UTC()
	copied := *stored
	return &copied, nil
}

type fakeCandidateRepo struct {
	mu          sync.Mutex
	seq         int64
	items       []candidate.Candidate
	updateCalls int
	failUpdate  bool
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{}
}

func (r *fakeCandidateRepo) CreateBatch(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	created := make([]candidate.Candidate, 0, len(candidates))
	for _, c := range candidates {
		r.seq++
		c.ID = common.NewUUID()
		c.Seq = r.seq
		c.CreatedAt = now
		r.items = append(r.items, c)
		created = append(created, c)
	}
	return created, nil
}

func (r *fakeCandidateRepo) GetByID(ctx context.Context, id common.UUID) (*candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate not found", nil)
}

func (r *fakeCandidateRepo) ListByPosition(ctx context.Context, positionID common.UUID) ([]candidate.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []candidate.Candidate
	for _, c := range r.items {
		if c.PositionID == positionID {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *fakeCandidateRepo) ListRanked(ctx context.Context, positionID common.UUID) ([]candidate.Candidate, error) {
	items, err := r.ListByPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i].FinalScore, items[j].FinalScore
		if left == nil {
			return false
		}
		if right == nil {
			return true
		}
		return *left > *right
	})
	return items, nil
}

func (r *fakeCandidateRepo) UpdateScores(ctx context.Context, positionID common.UUID, updates []candidate.ScoreUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate {
		return common.NewError(common.CodeInternal, "failed to commit score update", errors.New("boom"))
	}
	r.updateCalls++
	for _, update := range updates {
		for i := range r.items {
			if r.items[i].ID == update.ID && r.items[i].PositionID == positionID {
				value := update.FinalScore
				r.items[i].FinalScore = &value
			}
		}
	}
	return nil
}

func (r *fakeCandidateRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "candidate not found", nil)
}

type fakeAnalyticsRepo struct {
	mu     sync.Mutex
	events []analytics.Event
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{}
}

func (r *fakeAnalyticsRepo) Create(ctx context.Context, event analytics.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"talentrank/internal/common"
	"talentrank/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event analytics.Event) error {
	if event.ID == "" {
		event.ID = common.NewUUID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	payload := event.Payload
	if payload == nil {
		payload = map[string]string{}
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode event payload", err)
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO events (id, name, payload, created_at) VALUES ($1, $2, $3, $4)`,
		event.ID, event.Name, encoded, event.CreatedAt); err != nil {
		return common.NewError(common.CodeInternal, "failed to create event", err)
	}
	return nil
}

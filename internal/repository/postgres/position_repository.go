package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"talentrank/internal/common"
	"talentrank/internal/domain/position"
)

type PositionRepository struct {
	db *sql.DB
}

func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) Create(ctx context.Context, p position.Position) (*position.Position, error) {
	p.ID = common.NewUUID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO positions (id, title, department, description, requirements, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Title, p.Department, p.Description, pq.Array(p.Requirements), p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create position", err)
	}
	return &p, nil
}

func (r *PositionRepository) GetByID(ctx context.Context, id common.UUID) (*position.Position, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, department, description, requirements, status, created_at, updated_at FROM positions WHERE id = $1`, id)
	var p position.Position
	if err := row.Scan(&p.ID, &p.Title, &p.Department, &p.Description, pq.Array(&p.Requirements), &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "position not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load position", err)
	}
	return &p, nil
}

func (r *PositionRepository) List(ctx context.Context, limit, offset int, status position.Status) ([]position.Position, error) {
	query := `SELECT id, title, department, description, requirements, status, created_at, updated_at
		FROM positions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	args := []any{limit, offset}
	if status != "" {
		query = `SELECT id, title, department, description, requirements, status, created_at, updated_at
			FROM positions WHERE status = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, status)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list positions", err)
	}
	defer rows.Close()
	var items []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Title, &p.Department, &p.Description, pq.Array(&p.Requirements), &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan position", err)
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *PositionRepository) UpdateStatus(ctx context.Context, id common.UUID, status position.Status) (*position.Position, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE positions SET status = $1, updated_at = $2 WHERE id = $3`, status, updatedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update position", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "position not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

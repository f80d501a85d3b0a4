package position

import (
	"context"

	"talentrank/internal/common"
)

type Repository interface {
	Create(ctx context.Context, position Position) (*Position, error)
	GetByID(ctx context.Context, id common.UUID) (*Position, error)
	List(ctx context.Context, limit, offset int, status Status) ([]Position, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Position, error)
}

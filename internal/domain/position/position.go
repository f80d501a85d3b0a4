package position

import (
	"time"

	"talentrank/internal/common"
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Position struct {
	ID           common.UUID `json:"id"`
	Title        string      `json:"title"`
	Department   string      `json:"department"`
	Description  string      `json:"description"`
	Requirements []string    `json:"requirements"`
	Status       Status      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

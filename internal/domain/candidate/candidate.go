package candidate

import (
	"time"

	"talentrank/internal/common"
)

// Candidate is one applicant inside a position pool. The four raw scores are
// benefit criteria (higher is better) fixed at import time; FinalScore is
// recomputed from scratch on every ranking run and is nil until the first one.
type Candidate struct {
	ID              common.UUID `json:"id"`
	PositionID      common.UUID `json:"position_id"`
	Seq             int64       `json:"-"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	ScoreAdmin      float64     `json:"score_admin"`
	ScoreInterview  float64     `json:"score_interview"`
	ScoreTest       float64     `json:"score_test"`
	ExperienceYears float64     `json:"experience_years"`
	FinalScore      *float64    `json:"final_score"`
	CreatedAt       time.Time   `json:"created_at"`
}

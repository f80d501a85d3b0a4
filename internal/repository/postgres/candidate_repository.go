package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talentrank/internal/common"
	"talentrank/internal/domain/candidate"
)

const candidateColumns = `id, position_id, import_seq, name, email, phone, score_admin, score_interview, score_test, experience_years, final_score, created_at`

type CandidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) CreateBatch(ctx context.Context, candidates []candidate.Candidate) ([]candidate.Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to begin import", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	created := make([]candidate.Candidate, 0, len(candidates))
	for _, c := range candidates {
		c.ID = common.NewUUID()
		c.CreatedAt = now
		row := tx.QueryRowContext(ctx, `INSERT INTO candidates (id, position_id, name, email, phone, score_admin, score_interview, score_test, experience_years, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING import_seq`,
			c.ID, c.PositionID, c.Name, c.Email, c.Phone, c.ScoreAdmin, c.ScoreInterview, c.ScoreTest, c.ExperienceYears, c.CreatedAt)
		if err := row.Scan(&c.Seq); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to insert candidate", err)
		}
		created = append(created, c)
	}
	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit import", err)
	}
	return created, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id common.UUID) (*candidate.Candidate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	var c candidate.Candidate
	if err := scanCandidate(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "candidate not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load candidate", err)
	}
	return &c, nil
}

func (r *CandidateRepository) ListByPosition(ctx context.Context, positionID common.UUID) ([]candidate.Candidate, error) {
	return r.list(ctx, positionID, `ORDER BY import_seq ASC`)
}

func (r *CandidateRepository) ListRanked(ctx context.Context, positionID common.UUID) ([]candidate.Candidate, error) {
	return r.list(ctx, positionID, `ORDER BY final_score DESC NULLS LAST, import_seq ASC`)
}

func (r *CandidateRepository) list(ctx context.Context, positionID common.UUID, orderBy string) ([]candidate.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE position_id = $1 `+orderBy, positionID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list candidates", err)
	}
	defer rows.Close()
	var items []candidate.Candidate
	for rows.Next() {
		var c candidate.Candidate
		if err := scanCandidate(rows, &c); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan candidate", err)
		}
		items = append(items, c)
	}
	return items, nil
}

// UpdateScores writes the whole batch in one transaction so a ranking run is
// all-or-nothing: concurrent runs over the same pool serialize on the row
// locks and the stored state always matches one complete run.
func (r *CandidateRepository) UpdateScores(ctx context.Context, positionID common.UUID, updates []candidate.ScoreUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to begin score update", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, update := range updates {
		if _, err := tx.ExecContext(ctx, `UPDATE candidates SET final_score = $1 WHERE id = $2 AND position_id = $3`,
			update.FinalScore, update.ID, positionID); err != nil {
			return common.NewError(common.CodeInternal, "failed to update score", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit score update", err)
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete candidate", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "candidate not found", sql.ErrNoRows)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner, c *candidate.Candidate) error {
	var finalScore sql.NullFloat64
	if err := row.Scan(&c.ID, &c.PositionID, &c.Seq, &c.Name, &c.Email, &c.Phone,
		&c.ScoreAdmin, &c.ScoreInterview, &c.ScoreTest, &c.ExperienceYears, &finalScore, &c.CreatedAt); err != nil {
		return err
	}
	if finalScore.Valid {
		value := finalScore.Float64
		c.FinalScore = &value
	}
	return nil
}

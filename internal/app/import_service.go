package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"talentrank/internal/common"
	"talentrank/internal/domain/analytics"
	"talentrank/internal/domain/candidate"
	"talentrank/internal/domain/position"
)

// importColumns is the expected row shape after the header:
// name, email, phone, score_admin, score_interview, score_test, experience_years.
const importColumns = 7

type ImportService struct {
	candidates candidate.Repository
	positions  position.Repository
	analytics  analytics.Repository
}

func NewImportService(candidates candidate.Repository, positions position.Repository, analytics analytics.Repository) *ImportService {
	return &ImportService{candidates: candidates, positions: positions, analytics: analytics}
}

// ImportCSV parses the upload and stores one candidate per well-formed data
// row. Rows with fewer than importColumns fields are skipped; the batch never
// fails because of them. Zero imported rows is a valid outcome, distinct from
// input that cannot be read at all.
func (s *ImportService) ImportCSV(ctx context.Context, positionID common.UUID, input io.Reader) (int, error) {
	if _, err := s.positions.GetByID(ctx, positionID); err != nil {
		return 0, err
	}
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, common.NewError(common.CodeValidation, "failed to read upload", err)
	}
	if !utf8.Valid(data) {
		return 0, common.NewError(common.CodeValidation, "file is not valid utf-8", nil)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, common.NewError(common.CodeValidation, "malformed csv", err)
	}

	var batch []candidate.Candidate
	for i, row := range rows {
		if i == 0 {
			// header row
			continue
		}
		record, ok := parseImportRow(row)
		if !ok {
			continue
		}
		record.PositionID = positionID
		batch = append(batch, record)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	created, err := s.candidates.CreateBatch(ctx, batch)
	if err != nil {
		return 0, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "candidates.imported", Payload: map[string]string{"position_id": positionID.String(), "count": strconv.Itoa(len(created))}})
	return len(created), nil
}

func parseImportRow(row []string) (candidate.Candidate, bool) {
	if len(row) < importColumns {
		return candidate.Candidate{}, false
	}
	return candidate.Candidate{
		Name:            strings.TrimSpace(row[0]),
		Email:           strings.TrimSpace(row[1]),
		Phone:           strings.TrimSpace(row[2]),
		ScoreAdmin:      parseScore(row[3]),
		ScoreInterview:  parseScore(row[4]),
		ScoreTest:       parseScore(row[5]),
		ExperienceYears: parseScore(row[6]),
	}, true
}

// parseScore keeps the loose coercion the import format has always had: a
// score cell that is not a non-negative number counts as zero instead of
// rejecting the row.
func parseScore(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

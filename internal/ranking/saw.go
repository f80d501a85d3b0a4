// Package ranking implements Simple Additive Weighting over a position's
// candidate pool: every criterion is normalized against the pool maximum and
// the weighted normalized values are summed into one composite score.
package ranking

import "talentrank/internal/domain/candidate"

// Criterion weights. They sum to 1.0 and are policy constants of the system,
// not configuration.
const (
	WeightAdmin      = 0.20
	WeightInterview  = 0.30
	WeightTest       = 0.30
	WeightExperience = 0.20
)

// ScorePool computes the final score for every candidate in the pool,
// returned index-aligned with the input. The score is a pure function of the
// pool snapshot: same input, bit-identical output. A criterion whose pool
// maximum is zero contributes zero to every score (divisor treated as 1).
func ScorePool(pool []candidate.Candidate) []float64 {
	if len(pool) == 0 {
		return nil
	}
	maxAdmin, maxInterview, maxTest, maxExperience := poolMaxima(pool)
	scores := make([]float64, len(pool))
	for i, c := range pool {
		scores[i] = WeightAdmin*(c.ScoreAdmin/maxAdmin) +
			WeightInterview*(c.ScoreInterview/maxInterview) +
			WeightTest*(c.ScoreTest/maxTest) +
			WeightExperience*(c.ExperienceYears/maxExperience)
	}
	return scores
}

func poolMaxima(pool []candidate.Candidate) (admin, interview, test, experience float64) {
	for _, c := range pool {
		if c.ScoreAdmin > admin {
			admin = c.ScoreAdmin
		}
		if c.ScoreInterview > interview {
			interview = c.ScoreInterview
		}
		if c.ScoreTest > test {
			test = c.ScoreTest
		}
		if c.ExperienceYears > experience {
			experience = c.ExperienceYears
		}
	}
	if admin == 0 {
		admin = 1
	}
	if interview == 0 {
		interview = 1
	}
	if test == 0 {
		test = 1
	}
	if experience == 0 {
		experience = 1
	}
	return admin, interview, test, experience
}

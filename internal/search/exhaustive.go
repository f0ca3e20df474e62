package search

import (
	"context"
	"math"
	"time"

	"github.com/cipherkit/go-columnar-solver/internal/errors"
	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
)

// Exhaustive enumerates all period! permutations in lexicographic order
// and returns the best-scoring one. The result is optimal within the
// enumerated space.
//
// Periods above the configured ceiling fail fast with a
// PeriodTooLargeError before any computation: factorial growth makes
// larger searches effectively unbounded.
//
// When settings carry a TargetScore, the search returns as soon as a
// permutation meets or exceeds it, trading completeness for latency.
//
// Exact score ties go to the lexicographically smallest permutation.
// The tie-break is deterministic and documented for reproducibility but
// carries no semantic meaning.
func (s *Service) Exhaustive(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	startTime := time.Now()
	if err := checkPeriod(period); err != nil {
		return services.SolveResult{}, err
	}
	if period > s.settings.MaxExhaustivePeriod {
		return services.SolveResult{}, errors.NewPeriodTooLargeError(period, s.settings.MaxExhaustivePeriod)
	}

	perm := model.Identity(period)
	best := model.Candidate{Score: math.Inf(-1)}
	evaluated := 0
	var searchErr error

	for {
		if err := ctx.Err(); err != nil {
			searchErr = err
			break
		}

		plain, score := s.scoreCandidate(ciphertext, period, perm)
		evaluated++
		if score > best.Score {
			best = model.Candidate{Plaintext: plain, Permutation: perm.Clone(), Score: score}
		}

		if s.settings.TargetScore != nil && best.Score >= *s.settings.TargetScore {
			break
		}
		if !perm.Next() {
			break
		}
	}

	return newResult(best, evaluated, 1, startTime), searchErr
}

// Package search implements the permutation search engine: exhaustive,
// hill-climbing, and simulated-annealing strategies (each with
// single-run and multi-restart variants) that explore column
// permutation space, using the scoring engine as the objective
// function.
//
// Every strategy is stateless from the caller's perspective: a call
// returns a final result and no resumable state. Randomness is explicit
// — a fixed Seed in the settings makes every search fully reproducible,
// including the multi-restart variants regardless of parallelism
// degree.
package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cipherkit/go-columnar-solver/config"
	"github.com/cipherkit/go-columnar-solver/internal/columnar"
	"github.com/cipherkit/go-columnar-solver/internal/errors"
	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
)

// Service runs permutation searches over one scorer and one settings
// value. It is immutable after construction and safe for concurrent
// use; each search invocation owns its mutable state exclusively.
type Service struct {
	scorer   services.Scorer
	settings config.SolverSettings
}

// NewService creates a search service. Settings are validated up front
// so that every later search call can assume they are well-formed.
func NewService(scorer services.Scorer, settings config.SolverSettings) (*Service, error) {
	if scorer == nil {
		return nil, fmt.Errorf("scorer cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Service{scorer: scorer, settings: settings}, nil
}

// Settings returns the settings the service was built with.
func (s *Service) Settings() config.SolverSettings { return s.settings }

// baseSeed resolves the RNG seed for one search invocation. A zero
// configured seed means "not reproducible": each invocation draws a
// fresh time-based seed.
func (s *Service) baseSeed() int64 {
	if s.settings.Seed != 0 {
		return s.settings.Seed
	}
	return time.Now().UnixNano()
}

// scoreCandidate reverse-transforms the ciphertext under perm and
// scores the resulting text.
func (s *Service) scoreCandidate(ciphertext string, period int, perm model.Permutation) (string, float64) {
	// Permutations inside the search loops are bijections by
	// construction (identity, shuffles, swaps, lexicographic successors),
	// so Reverse cannot fail here.
	plain, _ := columnar.Reverse(ciphertext, period, perm)
	return plain, s.scorer.CombinedScore(plain)
}

func checkPeriod(period int) error {
	if period < 2 {
		return errors.NewInvalidPeriodError(period)
	}
	return nil
}

func (s *Service) checkStart(period int, start model.Permutation) error {
	if len(start) != period {
		return errors.NewInvalidPermutationError(period, "size does not match period")
	}
	if err := start.Validate(); err != nil {
		return errors.NewInvalidPermutationError(period, err.Error())
	}
	return nil
}

func newResult(best model.Candidate, evaluated, restarts int, start time.Time) services.SolveResult {
	return services.SolveResult{
		Best:      best,
		Evaluated: evaluated,
		Restarts:  restarts,
		Took:      time.Since(start).Milliseconds(),
		RunID:     uuid.New().String(),
	}
}

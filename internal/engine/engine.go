// Package engine wires the solver components together: frequency
// tables, the scoring service, the permutation search service, and the
// period detector, behind one facade plus named hypothesis workspaces
// for callers juggling several ciphertexts at once.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cipherkit/go-columnar-solver/config"
	"github.com/cipherkit/go-columnar-solver/internal/errors"
	"github.com/cipherkit/go-columnar-solver/internal/period"
	"github.com/cipherkit/go-columnar-solver/internal/scoring"
	"github.com/cipherkit/go-columnar-solver/internal/search"
	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
	"github.com/cipherkit/go-columnar-solver/tables"
)

// Solver is the top-level entry point. It owns one set of frequency
// tables and one settings value, and exposes every solve strategy plus
// period detection. Safe for concurrent use.
type Solver struct {
	mu         sync.RWMutex
	tables     *tables.Tables
	scorer     *scoring.Service
	searcher   *search.Service
	detector   *period.Detector
	settings   config.SolverSettings
	hypotheses map[string]*Hypothesis
}

// NewSolver creates a solver over the given tables. Nil tables fall
// back to the embedded defaults.
func NewSolver(tbl *tables.Tables, settings config.SolverSettings) (*Solver, error) {
	if tbl == nil {
		var err error
		tbl, err = tables.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load default tables: %w", err)
		}
	}

	scorer, err := scoring.NewService(tbl)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring service: %w", err)
	}
	searcher, err := search.NewService(scorer, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}
	detector, err := period.NewDetector(scorer, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create period detector: %w", err)
	}

	return &Solver{
		tables:     tbl,
		scorer:     scorer,
		searcher:   searcher,
		detector:   detector,
		settings:   settings,
		hypotheses: make(map[string]*Hypothesis),
	}, nil
}

// NewSolverFromSnapshot loads tables from a gob snapshot, falling back
// to the embedded defaults when the snapshot cannot be read.
func NewSolverFromSnapshot(path string, settings config.SolverSettings) (*Solver, error) {
	tbl, err := tables.LoadSnapshot(path)
	if err != nil {
		log.Printf("Warning: Failed to load table snapshot from %s: %v. Using embedded default tables.", path, err)
		tbl = nil
	}
	return NewSolver(tbl, settings)
}

// Scorer exposes the underlying scoring service for diagnostics.
func (s *Solver) Scorer() services.Scorer { return s.scorer }

// Tables returns the frequency tables the solver was built with.
func (s *Solver) Tables() *tables.Tables { return s.tables }

// Settings returns the settings the solver was built with.
func (s *Solver) Settings() config.SolverSettings { return s.settings }

// DetectPeriods ranks candidate periods within the configured
// [MinPeriod, MaxPeriod] range, best first.
func (s *Solver) DetectPeriods(ctx context.Context, ciphertext string, topN int) ([]model.PeriodCandidate, error) {
	return s.detector.RankPeriods(ctx, ciphertext, s.settings.MinPeriod, s.settings.MaxPeriod, topN)
}

// SolveExhaustive enumerates every permutation of the given period.
func (s *Solver) SolveExhaustive(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	return s.searcher.Exhaustive(ctx, ciphertext, period)
}

// SolveHillClimb runs a multi-restart hill-climbing search.
func (s *Solver) SolveHillClimb(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	return s.searcher.HillClimbMultiStart(ctx, ciphertext, period)
}

// SolveAnneal runs a multi-restart simulated-annealing search.
func (s *Solver) SolveAnneal(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	return s.searcher.AnnealMultiStart(ctx, ciphertext, period)
}

// Solve picks a strategy for the period: exhaustive enumeration when
// the period is within the configured ceiling (the result is then
// optimal), multi-restart annealing otherwise.
func (s *Solver) Solve(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	if period >= 2 && period <= s.settings.MaxExhaustivePeriod {
		return s.searcher.Exhaustive(ctx, ciphertext, period)
	}
	return s.searcher.AnnealMultiStart(ctx, ciphertext, period)
}

// CreateHypothesis registers a named ciphertext/period workspace using
// the given strategy. The name must be unused.
func (s *Solver) CreateHypothesis(name, ciphertext string, periodGuess int, strategy Strategy) (*Hypothesis, error) {
	generator, err := s.generatorFor(strategy, periodGuess)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.hypotheses[name]; exists {
		return nil, errors.NewHypothesisExistsError(name)
	}

	h := &Hypothesis{
		name:       name,
		ciphertext: ciphertext,
		period:     periodGuess,
		strategy:   strategy,
		generator:  generator,
	}
	s.hypotheses[name] = h
	log.Printf("Created hypothesis '%s' (period %d, strategy %s)", name, periodGuess, strategy)
	return h, nil
}

// GetHypothesis returns a previously created hypothesis.
func (s *Solver) GetHypothesis(name string) (*Hypothesis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, exists := s.hypotheses[name]
	if !exists {
		return nil, errors.NewHypothesisNotFoundError(name)
	}
	return h, nil
}

// DeleteHypothesis removes a hypothesis by name.
func (s *Solver) DeleteHypothesis(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.hypotheses[name]; !exists {
		return errors.NewHypothesisNotFoundError(name)
	}
	delete(s.hypotheses, name)
	return nil
}

// ListHypotheses returns the names of all registered hypotheses.
func (s *Solver) ListHypotheses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.hypotheses))
	for name := range s.hypotheses {
		names = append(names, name)
	}
	return names
}

func (s *Solver) generatorFor(strategy Strategy, periodGuess int) (services.CandidateGenerator, error) {
	switch strategy {
	case StrategyExhaustive:
		return search.NewExhaustiveGenerator(s.searcher, periodGuess), nil
	case StrategyHillClimb:
		return search.NewHillClimbGenerator(s.searcher, periodGuess), nil
	case StrategyAnneal:
		return search.NewAnnealGenerator(s.searcher, periodGuess), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// Package services defines the in-process interfaces between the
// solver core and its callers. The core exposes no file format, wire
// protocol, or CLI; orchestration layers call these interfaces directly
// and consume the result types.
package services

import (
	"context"

	"github.com/cipherkit/go-columnar-solver/model"
)

// SolveResult is the outcome of one search invocation: the best
// candidate found plus bookkeeping for reporting callers.
type SolveResult struct {
	Best      model.Candidate `json:"best"`
	Evaluated int             `json:"evaluated"` // Number of permutations scored
	Restarts  int             `json:"restarts"`  // Independent runs contributing to Best
	Took      int64           `json:"took"`      // milliseconds
	RunID     string          `json:"run_id"`    // unique UUID for this search invocation
}

// Scorer turns candidate plaintext into a single comparable fitness
// value. All methods are pure and total: they never panic and always
// return a finite number, whatever the input. Higher is better.
type Scorer interface {
	CombinedScore(text string) float64

	// CombinedScoreWithCribs scores with a caller-supplied crib list in
	// place of the built-in one.
	CombinedScoreWithCribs(text string, cribs []string) float64

	// CombinedScoreWithPositionalCribs additionally restricts each crib to
	// a window around its expected position.
	CombinedScoreWithPositionalCribs(text string, hints []model.CribHint, window int) float64

	// BaselineStats bundles every component statistic for diagnostics.
	BaselineStats(text string) model.BaselineStats
}

// CandidateGenerator produces ranked decryption candidates for a
// ciphertext. Concrete strategies (exhaustive, hill-climbing, simulated
// annealing) implement it; orchestration layers treat them uniformly.
type CandidateGenerator interface {
	// GenerateCandidates returns up to limit candidates in descending
	// score order. A limit of 0 or less means "the strategy's natural
	// maximum". Cancelling ctx aborts the search; the candidates found so
	// far are returned alongside ctx.Err().
	GenerateCandidates(ctx context.Context, ciphertext string, limit int) ([]model.Candidate, error)
}

// PeriodRanker ranks candidate period values by likelihood without
// fully solving each one. The ranking is heuristic: the true period is
// only expected within the top candidates, not necessarily first.
type PeriodRanker interface {
	RankPeriods(ctx context.Context, ciphertext string, minPeriod, maxPeriod, topN int) ([]model.PeriodCandidate, error)
}

package engine

import (
	"context"

	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
)

// Strategy selects the search algorithm a hypothesis uses.
type Strategy string

const (
	StrategyExhaustive Strategy = "exhaustive"
	StrategyHillClimb  Strategy = "hill_climb"
	StrategyAnneal     Strategy = "anneal"
)

// Hypothesis pairs one ciphertext with one period guess and a chosen
// strategy. It implements services.CandidateGenerator over its own
// ciphertext, so orchestration layers can fan candidate generation out
// across several hypotheses uniformly.
type Hypothesis struct {
	name       string
	ciphertext string
	period     int
	strategy   Strategy
	generator  services.CandidateGenerator
}

// Name returns the hypothesis name.
func (h *Hypothesis) Name() string { return h.name }

// Ciphertext returns the ciphertext under investigation.
func (h *Hypothesis) Ciphertext() string { return h.ciphertext }

// Period returns the period guess.
func (h *Hypothesis) Period() int { return h.period }

// Strategy returns the search strategy in use.
func (h *Hypothesis) Strategy() Strategy { return h.strategy }

// Candidates runs the hypothesis' strategy and returns up to limit
// candidates in descending score order.
func (h *Hypothesis) Candidates(ctx context.Context, limit int) ([]model.Candidate, error) {
	return h.generator.GenerateCandidates(ctx, h.ciphertext, limit)
}

// GenerateCandidates implements services.CandidateGenerator. The
// ciphertext argument is ignored: a hypothesis is bound to its own.
func (h *Hypothesis) GenerateCandidates(ctx context.Context, _ string, limit int) ([]model.Candidate, error) {
	return h.Candidates(ctx, limit)
}

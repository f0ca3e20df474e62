package search

import (
	"context"
	"sort"

	"github.com/cipherkit/go-columnar-solver/internal/errors"
	"github.com/cipherkit/go-columnar-solver/model"
)

// defaultCandidateLimit caps how many candidates a generator returns
// when the caller passes no limit.
const defaultCandidateLimit = 10

// ExhaustiveGenerator, HillClimbGenerator, and AnnealGenerator adapt
// the search strategies to the services.CandidateGenerator interface so
// orchestration layers can treat them uniformly.

// ExhaustiveGenerator enumerates every permutation of a fixed period
// and returns the top candidates.
type ExhaustiveGenerator struct {
	svc    *Service
	period int
}

// NewExhaustiveGenerator creates an exhaustive candidate generator.
func NewExhaustiveGenerator(svc *Service, period int) *ExhaustiveGenerator {
	return &ExhaustiveGenerator{svc: svc, period: period}
}

// GenerateCandidates returns up to limit candidates in descending score
// order. Ties keep enumeration (lexicographic) order.
func (g *ExhaustiveGenerator) GenerateCandidates(ctx context.Context, ciphertext string, limit int) ([]model.Candidate, error) {
	if err := checkPeriod(g.period); err != nil {
		return nil, err
	}
	if g.period > g.svc.settings.MaxExhaustivePeriod {
		return nil, errors.NewPeriodTooLargeError(g.period, g.svc.settings.MaxExhaustivePeriod)
	}
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	top := newTopList(limit)
	perm := model.Identity(g.period)
	var searchErr error
	for {
		if err := ctx.Err(); err != nil {
			searchErr = err
			break
		}

		plain, score := g.svc.scoreCandidate(ciphertext, g.period, perm)
		top.add(model.Candidate{Plaintext: plain, Permutation: perm.Clone(), Score: score})
		if !perm.Next() {
			break
		}
	}
	return top.items, searchErr
}

// HillClimbGenerator runs NumRestarts hill-climbing restarts and
// returns their per-restart bests, ranked.
type HillClimbGenerator struct {
	svc    *Service
	period int
}

// NewHillClimbGenerator creates a hill-climbing candidate generator.
func NewHillClimbGenerator(svc *Service, period int) *HillClimbGenerator {
	return &HillClimbGenerator{svc: svc, period: period}
}

func (g *HillClimbGenerator) GenerateCandidates(ctx context.Context, ciphertext string, limit int) ([]model.Candidate, error) {
	return generateFromRestarts(ctx, g.svc, ciphertext, g.period, limit, g.svc.hillClimbRun)
}

// AnnealGenerator runs NumRestarts annealing restarts and returns their
// per-restart bests, ranked.
type AnnealGenerator struct {
	svc    *Service
	period int
}

// NewAnnealGenerator creates a simulated-annealing candidate generator.
func NewAnnealGenerator(svc *Service, period int) *AnnealGenerator {
	return &AnnealGenerator{svc: svc, period: period}
}

func (g *AnnealGenerator) GenerateCandidates(ctx context.Context, ciphertext string, limit int) ([]model.Candidate, error) {
	return generateFromRestarts(ctx, g.svc, ciphertext, g.period, limit, g.svc.annealRun)
}

func generateFromRestarts(ctx context.Context, svc *Service, ciphertext string, period, limit int, run runFunc) ([]model.Candidate, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultCandidateLimit
	}

	candidates, _, err := svc.runRestarts(ctx, ciphertext, period, run)

	// Restarts can converge to the same optimum; collapse duplicates so
	// the ranking carries distinct hypotheses.
	seen := make(map[string]bool, len(candidates))
	distinct := candidates[:0]
	for _, c := range candidates {
		key := c.Permutation.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, c)
	}

	sort.SliceStable(distinct, func(i, j int) bool { return distinct[i].Score > distinct[j].Score })
	if len(distinct) > limit {
		distinct = distinct[:limit]
	}
	return distinct, err
}

// topList keeps the best N candidates seen, in descending score order.
// On exact ties the earlier-added candidate ranks first.
type topList struct {
	limit int
	items []model.Candidate
}

func newTopList(limit int) *topList {
	return &topList{limit: limit, items: make([]model.Candidate, 0, limit)}
}

func (t *topList) add(c model.Candidate) {
	pos := len(t.items)
	for pos > 0 && t.items[pos-1].Score < c.Score {
		pos--
	}
	if pos >= t.limit {
		return
	}

	t.items = append(t.items, model.Candidate{})
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = c
	if len(t.items) > t.limit {
		t.items = t.items[:t.limit]
	}
}

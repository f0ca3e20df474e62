package search

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
)

// Multi-restart searches are embarrassingly parallel: every restart
// reads only shared immutable inputs (ciphertext, frequency tables) and
// owns its mutable state, so restarts fan out across a bounded worker
// pool with no locking. The reduction — best score wins, ties go to the
// lowest restart index — is commutative, so the result is independent
// of scheduling order and parallelism degree.

// runFunc executes one restart from the given start permutation.
type runFunc func(ctx context.Context, ciphertext string, period int, start model.Permutation, rng *rand.Rand) (model.Candidate, int, error)

// HillClimbMultiStart runs NumRestarts independent hill-climbing
// searches, each from an independently randomized starting permutation,
// and returns the single best result across all of them.
func (s *Service) HillClimbMultiStart(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	startTime := time.Now()
	if err := checkPeriod(period); err != nil {
		return services.SolveResult{}, err
	}

	candidates, evals, err := s.runRestarts(ctx, ciphertext, period, s.hillClimbRun)
	return reduceRestarts(candidates, evals, startTime), err
}

// AnnealMultiStart runs NumRestarts independent annealing searches and
// returns the single best result.
func (s *Service) AnnealMultiStart(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	startTime := time.Now()
	if err := checkPeriod(period); err != nil {
		return services.SolveResult{}, err
	}

	candidates, evals, err := s.runRestarts(ctx, ciphertext, period, s.annealRun)
	return reduceRestarts(candidates, evals, startTime), err
}

// runRestarts fans NumRestarts runs out over at most MaxWorkers
// goroutines. Each restart derives its RNG from the base seed and its
// own index, so a fixed seed reproduces every restart exactly no matter
// how they are scheduled.
func (s *Service) runRestarts(ctx context.Context, ciphertext string, period int, run runFunc) ([]model.Candidate, []int, error) {
	restarts := s.settings.NumRestarts
	seed := s.baseSeed()

	candidates := make([]model.Candidate, restarts)
	evals := make([]int, restarts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.settings.MaxWorkers)
	for i := 0; i < restarts; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))
			cand, n, err := run(gctx, ciphertext, period, model.Shuffled(period, rng), rng)
			candidates[i] = cand
			evals[i] = n
			return err
		})
	}
	err := g.Wait()
	return candidates, evals, err
}

func reduceRestarts(candidates []model.Candidate, evals []int, startTime time.Time) services.SolveResult {
	best := candidates[0]
	evaluated := evals[0]
	for i := 1; i < len(candidates); i++ {
		evaluated += evals[i]
		if candidates[i].Score > best.Score {
			best = candidates[i]
		}
	}
	return newResult(best, evaluated, len(candidates), startTime)
}

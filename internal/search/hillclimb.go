package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
)

// maxStaleProposals bounds the inner attempt count: a hill-climbing run
// stops early once this many consecutive proposals fail to improve, on
// the assumption that a local optimum has been reached.
const maxStaleProposals = 500

// HillClimb runs a single hill-climbing search from the identity
// permutation: repeatedly propose a neighbor by swapping two random
// positions and accept it only on strict improvement. The run stops
// after MaxIterations proposals (not accepted moves) or once proposals
// go stale. May converge to a local optimum; use HillClimbMultiStart to
// reduce that risk.
func (s *Service) HillClimb(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	startTime := time.Now()
	if err := checkPeriod(period); err != nil {
		return services.SolveResult{}, err
	}

	rng := rand.New(rand.NewSource(s.baseSeed()))
	best, evaluated, err := s.hillClimbRun(ctx, ciphertext, period, model.Identity(period), rng)
	return newResult(best, evaluated, 1, startTime), err
}

// HillClimbFrom is HillClimb with a caller-supplied starting
// permutation.
func (s *Service) HillClimbFrom(ctx context.Context, ciphertext string, period int, start model.Permutation) (services.SolveResult, error) {
	startTime := time.Now()
	if err := checkPeriod(period); err != nil {
		return services.SolveResult{}, err
	}
	if err := s.checkStart(period, start); err != nil {
		return services.SolveResult{}, err
	}

	rng := rand.New(rand.NewSource(s.baseSeed()))
	best, evaluated, err := s.hillClimbRun(ctx, ciphertext, period, start, rng)
	return newResult(best, evaluated, 1, startTime), err
}

func (s *Service) hillClimbRun(ctx context.Context, ciphertext string, period int, start model.Permutation, rng *rand.Rand) (model.Candidate, int, error) {
	cur := start.Clone()
	plain, curScore := s.scoreCandidate(ciphertext, period, cur)
	best := model.Candidate{Plaintext: plain, Permutation: cur.Clone(), Score: curScore}
	evaluated := 1
	stale := 0

	for iter := 0; iter < s.settings.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return best, evaluated, err
		}

		i, j := randomSwapPair(rng, period)
		cur[i], cur[j] = cur[j], cur[i]

		plain, score := s.scoreCandidate(ciphertext, period, cur)
		evaluated++
		if score > curScore {
			curScore = score
			best = model.Candidate{Plaintext: plain, Permutation: cur.Clone(), Score: score}
			stale = 0
		} else {
			cur[i], cur[j] = cur[j], cur[i] // revert
			stale++
			if stale >= maxStaleProposals {
				break
			}
		}
	}

	return best, evaluated, nil
}

// randomSwapPair draws two distinct positions in [0, period).
func randomSwapPair(rng *rand.Rand, period int) (int, int) {
	i := rng.Intn(period)
	j := rng.Intn(period - 1)
	if j >= i {
		j++
	}
	return i, j
}

package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
)

// temperatureFloor ends an annealing run once the temperature decays
// below it; acceptance of worsening moves is negligible by then.
const temperatureFloor = 0.01

// Anneal runs a single simulated-annealing search from the identity
// permutation. Neighbors are proposed exactly as in hill climbing, but
// a worse neighbor is accepted with probability exp(delta/temperature),
// where delta is the (negative) score change. The temperature decays
// geometrically by CoolingRate each iteration; the run ends at
// MaxIterations or the temperature floor, whichever comes first.
//
// The best candidate seen anywhere in the walk is returned, not the
// final position: annealing deliberately moves downhill and may end
// somewhere worse than it has been.
func (s *Service) Anneal(ctx context.Context, ciphertext string, period int) (services.SolveResult, error) {
	startTime := time.Now()
	if err := checkPeriod(period); err != nil {
		return services.SolveResult{}, err
	}

	rng := rand.New(rand.NewSource(s.baseSeed()))
	best, evaluated, err := s.annealRun(ctx, ciphertext, period, model.Identity(period), rng)
	return newResult(best, evaluated, 1, startTime), err
}

// AnnealFrom is Anneal with a caller-supplied starting permutation.
func (s *Service) AnnealFrom(ctx context.Context, ciphertext string, period int, start model.Permutation) (services.SolveResult, error) {
	startTime := time.Now()
	if err := checkPeriod(period); err != nil {
		return services.SolveResult{}, err
	}
	if err := s.checkStart(period, start); err != nil {
		return services.SolveResult{}, err
	}

	rng := rand.New(rand.NewSource(s.baseSeed()))
	best, evaluated, err := s.annealRun(ctx, ciphertext, period, start, rng)
	return newResult(best, evaluated, 1, startTime), err
}

func (s *Service) annealRun(ctx context.Context, ciphertext string, period int, start model.Permutation, rng *rand.Rand) (model.Candidate, int, error) {
	cur := start.Clone()
	plain, curScore := s.scoreCandidate(ciphertext, period, cur)
	best := model.Candidate{Plaintext: plain, Permutation: cur.Clone(), Score: curScore}
	evaluated := 1
	temp := s.settings.InitialTemp

	for iter := 0; iter < s.settings.MaxIterations && temp >= temperatureFloor; iter++ {
		if err := ctx.Err(); err != nil {
			return best, evaluated, err
		}

		i, j := randomSwapPair(rng, period)
		cur[i], cur[j] = cur[j], cur[i]

		plain, score := s.scoreCandidate(ciphertext, period, cur)
		evaluated++
		delta := score - curScore

		if delta > 0 || rng.Float64() < math.Exp(delta/temp) {
			curScore = score
			if score > best.Score {
				best = model.Candidate{Plaintext: plain, Permutation: cur.Clone(), Score: score}
			}
		} else {
			cur[i], cur[j] = cur[j], cur[i] // revert
		}

		temp *= s.settings.CoolingRate
	}

	return best, evaluated, nil
}

// Package period implements heuristic period detection for columnar
// transposition ciphertext: it ranks candidate column counts by running
// a cheap probe search at each one and comparing length-normalized best
// scores.
package period

import (
	"context"
	"fmt"
	"sort"

	"github.com/cipherkit/go-columnar-solver/config"
	"github.com/cipherkit/go-columnar-solver/internal/errors"
	"github.com/cipherkit/go-columnar-solver/internal/search"
	"github.com/cipherkit/go-columnar-solver/internal/textutil"
	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/services"
)

const (
	// Probe searches are deliberately shallow: the goal is a ranking
	// signal, not a solution.
	probeMaxIterations = 600
	probeMaxRestarts   = 4

	previewLength = 40
)

// Detector ranks candidate periods with short multi-restart
// hill-climbing probes. It implements services.PeriodRanker.
type Detector struct {
	probe *search.Service
}

// NewDetector creates a detector. The probe searches reuse the caller's
// settings with iteration and restart counts capped, so detection stays
// cheap even under solve-grade settings.
func NewDetector(scorer services.Scorer, settings config.SolverSettings) (*Detector, error) {
	if scorer == nil {
		return nil, fmt.Errorf("scorer cannot be nil")
	}

	probeSettings := settings
	probeSettings.TargetScore = nil
	if probeSettings.MaxIterations > probeMaxIterations {
		probeSettings.MaxIterations = probeMaxIterations
	}
	if probeSettings.NumRestarts > probeMaxRestarts {
		probeSettings.NumRestarts = probeMaxRestarts
	}

	probe, err := search.NewService(scorer, probeSettings)
	if err != nil {
		return nil, err
	}
	return &Detector{probe: probe}, nil
}

// RankPeriods probes every period in [minPeriod, maxPeriod] and returns
// the topN most promising, best first. Scores are normalized by text
// length so periods of different column counts stay comparable. Ties
// rank the smaller period first.
//
// Periods longer than the normalized ciphertext are skipped: every
// column would hold at most one character and any permutation of them
// scores identically. Cancelling ctx stops probing; the ranking built
// so far is returned alongside ctx.Err().
func (d *Detector) RankPeriods(ctx context.Context, ciphertext string, minPeriod, maxPeriod, topN int) ([]model.PeriodCandidate, error) {
	if minPeriod < 2 {
		return nil, errors.NewInvalidPeriodError(minPeriod)
	}
	if maxPeriod < minPeriod {
		return nil, errors.NewInvalidSettingsError("MaxPeriod", fmt.Sprintf("must be >= MinPeriod, got %d < %d", maxPeriod, minPeriod))
	}

	normalized := textutil.Normalize(ciphertext)
	if len(normalized) == 0 {
		return nil, nil
	}

	ranking := make([]model.PeriodCandidate, 0, maxPeriod-minPeriod+1)
	var probeErr error
	for period := minPeriod; period <= maxPeriod; period++ {
		if period > len(normalized) {
			break
		}
		if err := ctx.Err(); err != nil {
			probeErr = err
			break
		}

		result, err := d.probe.HillClimbMultiStart(ctx, normalized, period)
		if err != nil {
			probeErr = err
			break
		}
		ranking = append(ranking, model.PeriodCandidate{
			Period:  period,
			Score:   result.Best.Score / float64(len(normalized)),
			Preview: preview(result.Best.Plaintext),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Score > ranking[j].Score })
	if topN > 0 && len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking, probeErr
}

func preview(text string) string {
	if len(text) > previewLength {
		return text[:previewLength]
	}
	return text
}

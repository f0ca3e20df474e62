// Package scoring implements the statistical fitness engine: pure
// functions mapping candidate plaintext to component diagnostics and a
// single combined score usable as an optimization objective.
//
// Every operation is total. The permutation search engine calls these
// functions on thousands of transient, often nonsensical strings per
// search, so empty, short, or non-alphabetic input always resolves to a
// defined sentinel value instead of an error.
package scoring

import (
	"fmt"

	"github.com/cipherkit/go-columnar-solver/internal/textutil"
	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/tables"
)

// defaultCribWindow is the positional tolerance, in characters, applied
// to the built-in crib hints during combined scoring.
const defaultCribWindow = 10

// Weights combines the component statistics into one score. The n-gram
// weights must be non-decreasing with n-gram order: longer n-gram
// agreement is stronger evidence of English, so longer-range structure
// has to dominate short-range noise.
type Weights struct {
	ChiSquare float64 // Applied negatively: chi-square measures deviation from English
	Bigram    float64
	Trigram   float64
	Quadgram  float64
	Crib      float64
}

// DefaultWeights returns the standard combination policy.
func DefaultWeights() Weights {
	return Weights{
		ChiSquare: 0.1,
		Bigram:    1.0,
		Trigram:   2.0,
		Quadgram:  3.0,
		Crib:      1.0,
	}
}

// Service scores candidate plaintext against a set of frequency tables.
// It implements services.Scorer. A Service is immutable after
// construction and safe for concurrent use.
type Service struct {
	tables  *tables.Tables
	weights Weights
}

// NewService creates a scorer over the given tables with the default
// weights.
func NewService(t *tables.Tables) (*Service, error) {
	return NewServiceWithWeights(t, DefaultWeights())
}

// NewServiceWithWeights creates a scorer with a custom combination
// policy. Weights must be non-negative and satisfy
// Quadgram >= Trigram >= Bigram.
func NewServiceWithWeights(t *tables.Tables, w Weights) (*Service, error) {
	if t == nil {
		return nil, fmt.Errorf("tables cannot be nil")
	}
	if w.ChiSquare < 0 || w.Bigram < 0 || w.Trigram < 0 || w.Quadgram < 0 || w.Crib < 0 {
		return nil, fmt.Errorf("scoring weights must be non-negative")
	}
	if w.Quadgram < w.Trigram || w.Trigram < w.Bigram {
		return nil, fmt.Errorf("n-gram weights must satisfy quadgram >= trigram >= bigram")
	}
	return &Service{tables: t, weights: w}, nil
}

// Tables returns the frequency tables the scorer reads.
func (s *Service) Tables() *tables.Tables { return s.tables }

// CombinedScore computes the weighted fitness of text using the
// built-in crib list. Higher is better; the result is typically
// negative because n-gram components are log likelihoods. Input with no
// letters scores 0.
func (s *Service) CombinedScore(text string) float64 {
	return s.combined(textutil.Normalize(text), s.tables.Cribs(), s.tables.CribHints(), defaultCribWindow)
}

// CombinedScoreWithCribs scores with a caller-supplied crib list
// replacing the built-in one.
func (s *Service) CombinedScoreWithCribs(text string, cribs []string) float64 {
	return s.combined(textutil.Normalize(text), cribs, nil, 0)
}

// CombinedScoreWithPositionalCribs scores with caller-supplied
// positional hints replacing the built-in cribs: each phrase is only
// rewarded when found within window characters of its expected
// position.
func (s *Service) CombinedScoreWithPositionalCribs(text string, hints []model.CribHint, window int) float64 {
	return s.combined(textutil.Normalize(text), nil, hints, window)
}

func (s *Service) combined(normalized string, cribs []string, hints []model.CribHint, window int) float64 {
	if normalized == "" {
		return 0.0
	}

	score := -s.weights.ChiSquare * s.chiSquare(normalized)
	score += s.weights.Bigram * s.ngramScore(normalized, s.tables.Bigrams())
	score += s.weights.Trigram * s.ngramScore(normalized, s.tables.Trigrams())
	score += s.weights.Quadgram * s.ngramScore(normalized, s.tables.Quadgrams())
	if len(cribs) > 0 {
		score += s.weights.Crib * s.cribBonus(normalized, cribs)
	}
	if len(hints) > 0 {
		score += s.weights.Crib * s.positionalCribBonus(normalized, hints, window)
	}
	return score
}

// BaselineStats bundles every component statistic for one text. It is
// the aggregator reporting callers use; searches only read Combined.
func (s *Service) BaselineStats(text string) model.BaselineStats {
	normalized := textutil.Normalize(text)
	return model.BaselineStats{
		Length:             len(normalized),
		IndexOfCoincidence: indexOfCoincidence(normalized),
		ChiSquare:          s.chiSquare(normalized),
		BigramScore:        s.ngramScore(normalized, s.tables.Bigrams()),
		TrigramScore:       s.ngramScore(normalized, s.tables.Trigrams()),
		QuadgramScore:      s.ngramScore(normalized, s.tables.Quadgrams()),
		WordHitRate:        s.wordHitRate(normalized),
		CribBonus:          s.cribBonus(normalized, s.tables.Cribs()),
		Combined:           s.combined(normalized, s.tables.Cribs(), s.tables.CribHints(), defaultCribWindow),
	}
}

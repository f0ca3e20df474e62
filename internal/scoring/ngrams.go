package scoring

import (
	"github.com/cipherkit/go-columnar-solver/internal/textutil"
	"github.com/cipherkit/go-columnar-solver/tables"
)

// emptyTableScorePerChar is the fallback n-gram score per character
// when a table is missing. Slightly positive so that a search over an
// incomplete table set still prefers longer coherent reconstructions
// instead of degenerating.
const emptyTableScorePerChar = 0.01

// BigramScore sums the log likelihoods of every overlapping bigram in
// text. Texts shorter than two letters score 0.
func (s *Service) BigramScore(text string) float64 {
	return s.ngramScore(textutil.Normalize(text), s.tables.Bigrams())
}

// TrigramScore sums the log likelihoods of every overlapping trigram in
// text. Texts shorter than three letters score 0.
func (s *Service) TrigramScore(text string) float64 {
	return s.ngramScore(textutil.Normalize(text), s.tables.Trigrams())
}

// QuadgramScore sums the log likelihoods of every overlapping quadgram
// in text. Texts shorter than four letters score 0.
func (s *Service) QuadgramScore(text string) float64 {
	return s.ngramScore(textutil.Normalize(text), s.tables.Quadgrams())
}

func (s *Service) ngramScore(normalized string, table *tables.NgramTable) float64 {
	if len(normalized) == 0 {
		return 0.0
	}
	if table.Empty() {
		return emptyTableScorePerChar * float64(len(normalized))
	}

	n := table.N()
	if len(normalized) < n {
		return 0.0
	}

	sum := 0.0
	for i := 0; i+n <= len(normalized); i++ {
		sum += table.LogProb(normalized[i : i+n])
	}
	return sum
}

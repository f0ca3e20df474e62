package scoring

import (
	"github.com/cipherkit/go-columnar-solver/internal/textutil"
)

// minMatchWordLen is the shortest word the coverage scan considers.
// One- and two-letter matches are too easy to hit by chance.
const minMatchWordLen = 3

// WordHitRate returns the fraction of text, in [0, 1], covered by a
// non-overlapping longest-match scan against the word list. Texts
// shorter than three letters, or an empty word list, score 0.
func (s *Service) WordHitRate(text string) float64 {
	return s.wordHitRate(textutil.Normalize(text))
}

func (s *Service) wordHitRate(normalized string) float64 {
	if len(normalized) < minMatchWordLen {
		return 0.0
	}
	words := s.tables.Words()
	if words.Empty() {
		return 0.0
	}

	maxLen := words.MaxLen()
	covered := 0
	for i := 0; i < len(normalized); {
		limit := maxLen
		if remaining := len(normalized) - i; remaining < limit {
			limit = remaining
		}

		matched := 0
		for l := limit; l >= minMatchWordLen; l-- {
			if words.Contains(normalized[i : i+l]) {
				matched = l
				break
			}
		}
		if matched > 0 {
			covered += matched
			i += matched
		} else {
			i++
		}
	}
	return float64(covered) / float64(len(normalized))
}

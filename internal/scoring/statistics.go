package scoring

import (
	"math"

	"github.com/cipherkit/go-columnar-solver/internal/textutil"
)

// IndexOfCoincidence computes the standard IC statistic of text:
// the probability that two randomly chosen letters are equal.
// English prose sits near 0.066, uniformly random letters near 0.0385.
// Texts with fewer than two letters score 0.
func (s *Service) IndexOfCoincidence(text string) float64 {
	return indexOfCoincidence(textutil.Normalize(text))
}

func indexOfCoincidence(normalized string) float64 {
	n := len(normalized)
	if n < 2 {
		return 0.0
	}

	counts := textutil.LetterCounts(normalized)
	sum := 0.0
	for _, c := range counts {
		sum += float64(c) * float64(c-1)
	}
	return sum / (float64(n) * float64(n-1))
}

// ChiSquare measures how far the letter distribution of text deviates
// from expected English frequencies: the sum over letters of
// (observed - expected)^2 / expected. Lower is more English-like.
// Input with no letters returns +Inf as the "worst possible" sentinel
// rather than an error; combined scoring guards against it.
func (s *Service) ChiSquare(text string) float64 {
	return s.chiSquare(textutil.Normalize(text))
}

func (s *Service) chiSquare(normalized string) float64 {
	n := len(normalized)
	if n == 0 {
		return math.Inf(1)
	}

	expected := s.tables.LetterFreq()
	if !s.tables.HasLetterFreq() {
		// No distribution loaded: fall back to uniform so the statistic
		// stays defined.
		for i := range expected {
			expected[i] = 1.0 / 26.0
		}
	}

	counts := textutil.LetterCounts(normalized)
	chi := 0.0
	for i := 0; i < 26; i++ {
		exp := expected[i] * float64(n)
		if exp == 0 {
			// A letter the corpus never uses: any occurrence is maximally
			// surprising, but keep the statistic finite.
			chi += float64(counts[i])
			continue
		}
		diff := float64(counts[i]) - exp
		chi += diff * diff / exp
	}
	return chi
}

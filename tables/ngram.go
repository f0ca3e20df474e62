package tables

import (
	"fmt"
	"math"
)

// missingMassFraction is the probability mass assigned to an n-gram
// absent from the table, expressed as a fraction of one observed count.
// Absent n-grams score a flat floor below every present n-gram.
const missingMassFraction = 0.01

// NgramTable maps fixed-length letter sequences to log10 likelihoods
// derived from corpus counts. Sequences absent from the corpus score a
// flat floor value so that gibberish is penalized but never infinitely.
type NgramTable struct {
	n       int
	logProb map[string]float64
	floor   float64
}

// NewNgramTable builds a table for n-grams of length n from raw corpus
// counts. Grams must be uppercase A-Z strings of length n; counts must
// be positive. Duplicate grams have their counts summed. An empty
// counts map yields a valid empty table.
func NewNgramTable(n int, counts map[string]float64) (*NgramTable, error) {
	if n < 1 {
		return nil, fmt.Errorf("n-gram length %d is invalid: must be at least 1", n)
	}

	clean := make(map[string]float64, len(counts))
	total := 0.0
	for gram, count := range counts {
		if len(gram) != n {
			return nil, fmt.Errorf("gram %q has length %d, want %d", gram, len(gram), n)
		}
		for i := 0; i < len(gram); i++ {
			if gram[i] < 'A' || gram[i] > 'Z' {
				return nil, fmt.Errorf("gram %q contains character outside A-Z", gram)
			}
		}
		if count <= 0 {
			return nil, fmt.Errorf("gram %q has non-positive count %g", gram, count)
		}
		clean[gram] += count
		total += count
	}

	t := &NgramTable{n: n, logProb: make(map[string]float64, len(clean))}
	if total > 0 {
		for gram, count := range clean {
			t.logProb[gram] = math.Log10(count / total)
		}
		t.floor = math.Log10(missingMassFraction / total)
	}
	return t, nil
}

// N returns the n-gram length.
func (t *NgramTable) N() int { return t.n }

// Size returns the number of distinct n-grams in the table.
func (t *NgramTable) Size() int {
	if t == nil {
		return 0
	}
	return len(t.logProb)
}

// Empty reports whether the table is nil or has no entries.
func (t *NgramTable) Empty() bool { return t.Size() == 0 }

// LogProb returns the log10 likelihood of gram, or the floor value when
// the gram is not in the table. The result is always finite for a
// non-empty table.
func (t *NgramTable) LogProb(gram string) float64 {
	if lp, ok := t.logProb[gram]; ok {
		return lp
	}
	return t.floor
}

// Contains reports whether gram is present in the table.
func (t *NgramTable) Contains(gram string) bool {
	if t == nil {
		return false
	}
	_, ok := t.logProb[gram]
	return ok
}

// Floor returns the log10 likelihood assigned to absent n-grams.
func (t *NgramTable) Floor() float64 { return t.floor }

// Package tables holds the statistical resources the scoring engine
// reads: the English letter distribution, bigram/trigram/quadgram
// log-likelihood tables, a word list, and a crib list. Tables are
// loaded once per process and never mutated afterwards, so they can be
// shared freely across concurrent searches.
package tables

import (
	"github.com/cipherkit/go-columnar-solver/model"
)

// Config carries the raw components used to build a Tables value.
// Any component may be left zero; the scoring engine degrades to a
// defined proportional heuristic for missing tables rather than fail.
type Config struct {
	LetterFreq [26]float64
	Bigrams    *NgramTable
	Trigrams   *NgramTable
	Quadgrams  *NgramTable
	Words      *WordList
	Cribs      []string
	CribHints  []model.CribHint
}

// Tables is the read-only bundle of frequency resources. All accessors
// are safe for concurrent use because nothing mutates a Tables after
// New returns.
type Tables struct {
	letterFreq [26]float64
	bigrams    *NgramTable
	trigrams   *NgramTable
	quadgrams  *NgramTable
	words      *WordList
	cribs      []string
	cribHints  []model.CribHint
}

// New builds a Tables from cfg. Slices are copied so later mutation of
// cfg cannot reach into the returned value.
func New(cfg Config) *Tables {
	t := &Tables{
		letterFreq: cfg.LetterFreq,
		bigrams:    cfg.Bigrams,
		trigrams:   cfg.Trigrams,
		quadgrams:  cfg.Quadgrams,
		words:      cfg.Words,
	}
	if len(cfg.Cribs) > 0 {
		t.cribs = make([]string, len(cfg.Cribs))
		copy(t.cribs, cfg.Cribs)
	}
	if len(cfg.CribHints) > 0 {
		t.cribHints = make([]model.CribHint, len(cfg.CribHints))
		copy(t.cribHints, cfg.CribHints)
	}
	return t
}

// WithCribs returns a derived Tables sharing every frequency table with
// t but carrying the supplied crib list and position hints instead of
// t's own. Used for hypothesis-specific scoring without rebuilding the
// n-gram tables.
func (t *Tables) WithCribs(cribs []string, hints []model.CribHint) *Tables {
	return New(Config{
		LetterFreq: t.letterFreq,
		Bigrams:    t.bigrams,
		Trigrams:   t.trigrams,
		Quadgrams:  t.quadgrams,
		Words:      t.words,
		Cribs:      cribs,
		CribHints:  hints,
	})
}

// LetterFreq returns the expected English letter distribution as
// fractions summing to 1. An all-zero array means no distribution was
// loaded.
func (t *Tables) LetterFreq() [26]float64 { return t.letterFreq }

// Bigrams returns the bigram table, which may be nil.
func (t *Tables) Bigrams() *NgramTable { return t.bigrams }

// Trigrams returns the trigram table, which may be nil.
func (t *Tables) Trigrams() *NgramTable { return t.trigrams }

// Quadgrams returns the quadgram table, which may be nil.
func (t *Tables) Quadgrams() *NgramTable { return t.quadgrams }

// Words returns the word list, which may be nil.
func (t *Tables) Words() *WordList { return t.words }

// Cribs returns a copy of the built-in crib list.
func (t *Tables) Cribs() []string {
	out := make([]string, len(t.cribs))
	copy(out, t.cribs)
	return out
}

// CribHints returns a copy of the built-in positional crib hints.
func (t *Tables) CribHints() []model.CribHint {
	out := make([]model.CribHint, len(t.cribHints))
	copy(out, t.cribHints)
	return out
}

// HasLetterFreq reports whether a letter distribution was loaded.
func (t *Tables) HasLetterFreq() bool {
	for _, f := range t.letterFreq {
		if f > 0 {
			return true
		}
	}
	return false
}

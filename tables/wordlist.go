package tables

import (
	"github.com/cipherkit/go-columnar-solver/internal/textutil"
)

// WordList is a set of known English words used by the scoring engine's
// coverage scan. Lookup is by exact normalized spelling.
type WordList struct {
	words  map[string]struct{}
	minLen int
	maxLen int
}

// NewWordList builds a word list, normalizing entries to A-Z and
// discarding empties and duplicates.
func NewWordList(words []string) *WordList {
	w := &WordList{words: make(map[string]struct{}, len(words))}
	for _, raw := range words {
		word := textutil.Normalize(raw)
		if word == "" {
			continue
		}
		if _, ok := w.words[word]; ok {
			continue
		}
		w.words[word] = struct{}{}
		if w.minLen == 0 || len(word) < w.minLen {
			w.minLen = len(word)
		}
		if len(word) > w.maxLen {
			w.maxLen = len(word)
		}
	}
	return w
}

// Contains reports whether the normalized word is in the list.
func (w *WordList) Contains(word string) bool {
	if w == nil {
		return false
	}
	_, ok := w.words[word]
	return ok
}

// Size returns the number of distinct words.
func (w *WordList) Size() int {
	if w == nil {
		return 0
	}
	return len(w.words)
}

// Empty reports whether the list is nil or has no words.
func (w *WordList) Empty() bool { return w.Size() == 0 }

// MinLen returns the length of the shortest word, or 0 when empty.
func (w *WordList) MinLen() int {
	if w == nil {
		return 0
	}
	return w.minLen
}

// MaxLen returns the length of the longest word, or 0 when empty.
func (w *WordList) MaxLen() int {
	if w == nil {
		return 0
	}
	return w.maxLen
}

// All returns the words in unspecified order. Used for snapshots.
func (w *WordList) All() []string {
	if w == nil {
		return nil
	}
	out := make([]string, 0, len(w.words))
	for word := range w.words {
		out = append(out, word)
	}
	return out
}

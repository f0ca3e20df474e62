package tables

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cipherkit/go-columnar-solver/model"
)

// Snapshots cache compiled tables on disk so processes that load large
// corpus files repeatedly can skip parsing on startup. Snapshots hold
// only frequency data — search results are never persisted.

type ngramSnapshot struct {
	N       int
	LogProb map[string]float64
	Floor   float64
}

type snapshot struct {
	LetterFreq [26]float64
	Bigrams    ngramSnapshot
	Trigrams   ngramSnapshot
	Quadgrams  ngramSnapshot
	Words      []string
	Cribs      []string
	CribHints  []model.CribHint
}

func snapshotNgrams(t *NgramTable) ngramSnapshot {
	if t == nil {
		return ngramSnapshot{}
	}
	return ngramSnapshot{N: t.n, LogProb: t.logProb, Floor: t.floor}
}

func restoreNgrams(s ngramSnapshot) *NgramTable {
	if s.N == 0 {
		return nil
	}
	if s.LogProb == nil {
		s.LogProb = make(map[string]float64)
	}
	return &NgramTable{n: s.N, logProb: s.LogProb, floor: s.Floor}
}

// SaveSnapshot gob-encodes the compiled tables to path, creating parent
// directories as needed.
func (t *Tables) SaveSnapshot(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(path) // #nosec G304 -- snapshot paths are supplied by the embedding application
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", path, err)
	}
	defer file.Close()

	snap := snapshot{
		LetterFreq: t.letterFreq,
		Bigrams:    snapshotNgrams(t.bigrams),
		Trigrams:   snapshotNgrams(t.trigrams),
		Quadgrams:  snapshotNgrams(t.quadgrams),
		Words:      t.words.All(),
		Cribs:      t.cribs,
		CribHints:  t.cribHints,
	}
	if err := gob.NewEncoder(file).Encode(snap); err != nil {
		return fmt.Errorf("failed to gob encode snapshot to %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot rebuilds tables from a gob snapshot written by
// SaveSnapshot. A missing file is reported as os.ErrNotExist so callers
// can fall back to parsing corpus files.
func LoadSnapshot(path string) (*Tables, error) {
	file, err := os.Open(path) // #nosec G304 -- snapshot paths are supplied by the embedding application
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", path, err)
	}
	defer file.Close()

	var snap snapshot
	if err := gob.NewDecoder(file).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to gob decode snapshot from %s: %w", path, err)
	}

	var words *WordList
	if len(snap.Words) > 0 {
		words = NewWordList(snap.Words)
	}
	return New(Config{
		LetterFreq: snap.LetterFreq,
		Bigrams:    restoreNgrams(snap.Bigrams),
		Trigrams:   restoreNgrams(snap.Trigrams),
		Quadgrams:  restoreNgrams(snap.Quadgrams),
		Words:      words,
		Cribs:      snap.Cribs,
		CribHints:  snap.CribHints,
	}), nil
}

package tables

import (
	"embed"
	"fmt"
	"log"
	"sync"
)

//go:embed data/*.txt
var defaultData embed.FS

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the process-wide default tables built from the
// embedded corpus data. Construction happens once; every caller shares
// the same read-only value. The embedded crib list is empty — cribs are
// puzzle-specific and supplied by callers.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = buildDefault()
		if defaultErr == nil {
			log.Printf("Loaded default frequency tables: %d bigrams, %d trigrams, %d quadgrams, %d words",
				defaultTables.Bigrams().Size(),
				defaultTables.Trigrams().Size(),
				defaultTables.Quadgrams().Size(),
				defaultTables.Words().Size())
		}
	})
	return defaultTables, defaultErr
}

func buildDefault() (*Tables, error) {
	letters, err := defaultData.Open("data/letters.txt")
	if err != nil {
		return nil, fmt.Errorf("embedded letters.txt: %w", err)
	}
	defer letters.Close()
	letterFreq, err := ParseLetterFrequencies(letters)
	if err != nil {
		return nil, fmt.Errorf("embedded letters.txt: %w", err)
	}

	embeddedNgrams := func(name string, n int) (*NgramTable, error) {
		f, err := defaultData.Open("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", name, err)
		}
		defer f.Close()
		counts, err := ParseNgramCounts(f)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", name, err)
		}
		table, err := NewNgramTable(n, counts)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", name, err)
		}
		return table, nil
	}

	bigrams, err := embeddedNgrams("bigrams.txt", 2)
	if err != nil {
		return nil, err
	}
	trigrams, err := embeddedNgrams("trigrams.txt", 3)
	if err != nil {
		return nil, err
	}
	quadgrams, err := embeddedNgrams("quadgrams.txt", 4)
	if err != nil {
		return nil, err
	}

	wordsFile, err := defaultData.Open("data/words.txt")
	if err != nil {
		return nil, fmt.Errorf("embedded words.txt: %w", err)
	}
	defer wordsFile.Close()
	words, err := ParseWordList(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("embedded words.txt: %w", err)
	}

	return New(Config{
		LetterFreq: letterFreq,
		Bigrams:    bigrams,
		Trigrams:   trigrams,
		Quadgrams:  quadgrams,
		Words:      NewWordList(words),
	}), nil
}

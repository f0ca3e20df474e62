package tables

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cipherkit/go-columnar-solver/internal/textutil"
	"github.com/cipherkit/go-columnar-solver/model"
)

// ParseNgramCounts reads "GRAM COUNT" lines from r. Blank lines and
// lines starting with '#' are ignored. Counts for duplicate grams are
// summed by NewNgramTable.
func ParseNgramCounts(r io.Reader) (map[string]float64, error) {
	counts := make(map[string]float64)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"GRAM COUNT\", got %q", lineNo, line)
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid count %q: %w", lineNo, fields[1], err)
		}
		counts[strings.ToUpper(fields[0])] += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading n-gram counts: %w", err)
	}
	return counts, nil
}

// LoadNgramTable reads an n-gram count file and builds a table for
// grams of length n.
func LoadNgramTable(path string, n int) (*NgramTable, error) {
	file, err := os.Open(path) // #nosec G304 -- table paths are supplied by the embedding application
	if err != nil {
		return nil, fmt.Errorf("failed to open n-gram file %s: %w", path, err)
	}
	defer file.Close()

	counts, err := ParseNgramCounts(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse n-gram file %s: %w", path, err)
	}
	table, err := NewNgramTable(n, counts)
	if err != nil {
		return nil, fmt.Errorf("failed to build n-gram table from %s: %w", path, err)
	}
	return table, nil
}

// ParseWordList reads one word per line from r. A trailing frequency
// column ("WORD 1234") is accepted and ignored; ordering and counts do
// not affect the coverage scan. Blank lines and '#' comments are
// skipped.
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		words = append(words, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// LoadWordList reads a word list file.
func LoadWordList(path string) (*WordList, error) {
	file, err := os.Open(path) // #nosec G304 -- table paths are supplied by the embedding application
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	words, err := ParseWordList(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse word list %s: %w", path, err)
	}
	return NewWordList(words), nil
}

// ParseLetterFrequencies reads "LETTER WEIGHT" lines from r and returns
// the distribution normalized to fractions summing to 1. Weights may be
// percentages or raw counts; only their ratios matter.
func ParseLetterFrequencies(r io.Reader) ([26]float64, error) {
	var freq [26]float64
	total := 0.0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return freq, fmt.Errorf("line %d: want \"LETTER WEIGHT\", got %q", lineNo, line)
		}
		letter := strings.ToUpper(fields[0])
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			return freq, fmt.Errorf("line %d: invalid letter %q", lineNo, fields[0])
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || weight < 0 {
			return freq, fmt.Errorf("line %d: invalid weight %q", lineNo, fields[1])
		}
		freq[letter[0]-'A'] += weight
		total += weight
	}
	if err := scanner.Err(); err != nil {
		return freq, fmt.Errorf("reading letter frequencies: %w", err)
	}

	if total > 0 {
		for i := range freq {
			freq[i] /= total
		}
	}
	return freq, nil
}

// LoadLetterFrequencies reads a letter frequency file.
func LoadLetterFrequencies(path string) ([26]float64, error) {
	file, err := os.Open(path) // #nosec G304 -- table paths are supplied by the embedding application
	if err != nil {
		return [26]float64{}, fmt.Errorf("failed to open letter frequencies %s: %w", path, err)
	}
	defer file.Close()

	freq, err := ParseLetterFrequencies(file)
	if err != nil {
		return [26]float64{}, fmt.Errorf("failed to parse letter frequencies %s: %w", path, err)
	}
	return freq, nil
}

// cribFile is the YAML schema for crib lists:
//
//	cribs:
//	  - BETWEEN
//	positional:
//	  - phrase: SHADING
//	    position: 14
type cribFile struct {
	Cribs      []string         `yaml:"cribs"`
	Positional []model.CribHint `yaml:"positional"`
}

// LoadCribFile reads a YAML crib file and returns the plain crib list
// and the positional hints, both normalized to A-Z.
func LoadCribFile(path string) ([]string, []model.CribHint, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- crib paths are supplied by the embedding application
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read crib file %s: %w", path, err)
	}

	var parsed cribFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, nil, fmt.Errorf("failed to parse crib file %s: %w", path, err)
	}

	cribs := make([]string, 0, len(parsed.Cribs))
	for _, c := range parsed.Cribs {
		if normalized := textutil.Normalize(c); normalized != "" {
			cribs = append(cribs, normalized)
		}
	}

	hints := make([]model.CribHint, 0, len(parsed.Positional))
	for _, h := range parsed.Positional {
		phrase := textutil.Normalize(h.Phrase)
		if phrase == "" || h.Position < 0 {
			continue
		}
		hints = append(hints, model.CribHint{Phrase: phrase, Position: h.Position})
	}

	return cribs, hints, nil
}

package tables

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherkit/go-columnar-solver/model"
)

func TestDefaultTables(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	assert.True(t, tbl.HasLetterFreq(), "default tables should carry a letter distribution")
	assert.Greater(t, tbl.Bigrams().Size(), 100)
	assert.Greater(t, tbl.Trigrams().Size(), 100)
	assert.Greater(t, tbl.Quadgrams().Size(), 100)
	assert.Greater(t, tbl.Words().Size(), 100)
	assert.Empty(t, tbl.Cribs(), "default crib list should be empty")

	// The distribution is normalized to fractions.
	sum := 0.0
	for _, f := range tbl.LetterFreq() {
		sum += f
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// E is the most common English letter.
	freq := tbl.LetterFreq()
	for i, f := range freq {
		if i != 'E'-'A' {
			assert.Less(t, f, freq['E'-'A'])
		}
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestNgramTable(t *testing.T) {
	t.Run("log probs and floor", func(t *testing.T) {
		table, err := NewNgramTable(2, map[string]float64{"TH": 90, "HE": 10})
		require.NoError(t, err)

		assert.Equal(t, 2, table.N())
		assert.Equal(t, 2, table.Size())
		assert.InDelta(t, math.Log10(0.9), table.LogProb("TH"), 1e-12)
		assert.InDelta(t, math.Log10(0.1), table.LogProb("HE"), 1e-12)

		// Absent grams score the floor, strictly below every present gram.
		assert.Equal(t, table.Floor(), table.LogProb("ZZ"))
		assert.Less(t, table.LogProb("ZZ"), table.LogProb("HE"))
		assert.False(t, table.Contains("ZZ"))
	})

	t.Run("duplicate counts are summed", func(t *testing.T) {
		counts, err := ParseNgramCounts(strings.NewReader("TH 40\nTH 50\nHE 10\n"))
		require.NoError(t, err)
		table, err := NewNgramTable(2, counts)
		require.NoError(t, err)
		assert.InDelta(t, math.Log10(0.9), table.LogProb("TH"), 1e-12)
	})

	t.Run("empty table", func(t *testing.T) {
		table, err := NewNgramTable(3, nil)
		require.NoError(t, err)
		assert.True(t, table.Empty())
	})

	t.Run("nil table is empty", func(t *testing.T) {
		var table *NgramTable
		assert.True(t, table.Empty())
		assert.Equal(t, 0, table.Size())
		assert.False(t, table.Contains("THE"))
	})

	t.Run("invalid grams rejected", func(t *testing.T) {
		_, err := NewNgramTable(2, map[string]float64{"THE": 1})
		assert.Error(t, err)

		_, err = NewNgramTable(2, map[string]float64{"T1": 1})
		assert.Error(t, err)

		_, err = NewNgramTable(2, map[string]float64{"TH": -1})
		assert.Error(t, err)

		_, err = NewNgramTable(0, nil)
		assert.Error(t, err)
	})
}

func TestParseNgramCounts(t *testing.T) {
	counts, err := ParseNgramCounts(strings.NewReader("# comment\n\nTH 356\nhe 307\n"))
	require.NoError(t, err)
	assert.Equal(t, 356.0, counts["TH"])
	assert.Equal(t, 307.0, counts["HE"], "grams should be uppercased")

	_, err = ParseNgramCounts(strings.NewReader("TH\n"))
	assert.Error(t, err)

	_, err = ParseNgramCounts(strings.NewReader("TH many\n"))
	assert.Error(t, err)
}

func TestWordList(t *testing.T) {
	list := NewWordList([]string{"the", "BETWEEN", "the", "", "a"})
	assert.Equal(t, 3, list.Size())
	assert.True(t, list.Contains("THE"))
	assert.True(t, list.Contains("BETWEEN"))
	assert.False(t, list.Contains("the"), "lookup is by normalized spelling")
	assert.Equal(t, 1, list.MinLen())
	assert.Equal(t, 7, list.MaxLen())

	var nilList *WordList
	assert.True(t, nilList.Empty())
	assert.False(t, nilList.Contains("THE"))
}

func TestParseLetterFrequencies(t *testing.T) {
	freq, err := ParseLetterFrequencies(strings.NewReader("A 75\nB 25\n"))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, freq[0], 1e-12)
	assert.InDelta(t, 0.25, freq[1], 1e-12)

	_, err = ParseLetterFrequencies(strings.NewReader("AB 10\n"))
	assert.Error(t, err)

	_, err = ParseLetterFrequencies(strings.NewReader("A ten\n"))
	assert.Error(t, err)
}

func TestWithCribs(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)

	hints := []model.CribHint{{Phrase: "SHADING", Position: 14}}
	derived := base.WithCribs([]string{"BETWEEN"}, hints)

	assert.Equal(t, []string{"BETWEEN"}, derived.Cribs())
	assert.Equal(t, hints, derived.CribHints())
	assert.Empty(t, base.Cribs(), "base tables must stay unchanged")
	assert.Same(t, base.Quadgrams(), derived.Quadgrams(), "frequency tables are shared, not copied")
}

func TestLoadCribFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cribs.yaml")
	content := `cribs:
  - between
  - "absence of light"
positional:
  - phrase: shading
    position: 14
  - phrase: ""
    position: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cribs, hints, err := LoadCribFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"BETWEEN", "ABSENCEOFLIGHT"}, cribs)
	require.Len(t, hints, 1, "empty phrases are dropped")
	assert.Equal(t, model.CribHint{Phrase: "SHADING", Position: 14}, hints[0])

	_, _, err = LoadCribFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)
	withCribs := base.WithCribs([]string{"BETWEEN"}, []model.CribHint{{Phrase: "LIGHT", Position: 35}})

	path := filepath.Join(t.TempDir(), "cache", "tables.gob")
	require.NoError(t, withCribs.SaveSnapshot(path))

	restored, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, withCribs.LetterFreq(), restored.LetterFreq())
	assert.Equal(t, withCribs.Bigrams().Size(), restored.Bigrams().Size())
	assert.Equal(t, withCribs.Quadgrams().LogProb("TION"), restored.Quadgrams().LogProb("TION"))
	assert.Equal(t, withCribs.Quadgrams().Floor(), restored.Quadgrams().Floor())
	assert.Equal(t, withCribs.Words().Size(), restored.Words().Size())
	assert.Equal(t, []string{"BETWEEN"}, restored.Cribs())
	assert.Equal(t, withCribs.CribHints(), restored.CribHints())
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.gob"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

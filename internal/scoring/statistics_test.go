package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherkit/go-columnar-solver/tables"
)

const englishSample = "BETWEENSUBTLESHADINGANDTHEABSENCEOFLIGHT"

func newTestService(t *testing.T) *Service {
	t.Helper()
	tbl, err := tables.Default()
	require.NoError(t, err)
	svc, err := NewService(tbl)
	require.NoError(t, err)
	return svc
}

func TestIndexOfCoincidence(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.0},
		{"single letter", "A", 0.0},
		{"two equal letters", "AA", 1.0},
		{"two distinct letters", "AB", 0.0},
		{"pair counts", "AABB", 4.0 / 12.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, svc.IndexOfCoincidence(tt.text), 1e-12)
		})
	}

	t.Run("english beats uniform", func(t *testing.T) {
		english := strings.Repeat(englishSample, 3)
		uniform := strings.Repeat("ABCDEFGHIJKLMNOPQRSTUVWXYZ", 4)
		assert.Greater(t, svc.IndexOfCoincidence(english), svc.IndexOfCoincidence(uniform))
	})

	t.Run("ignores non-letters", func(t *testing.T) {
		assert.Equal(t, svc.IndexOfCoincidence("AABB"), svc.IndexOfCoincidence("a a, b-b!"))
	})
}

func TestChiSquare(t *testing.T) {
	svc := newTestService(t)

	t.Run("empty input returns worst-possible sentinel", func(t *testing.T) {
		assert.True(t, math.IsInf(svc.ChiSquare(""), 1))
		assert.True(t, math.IsInf(svc.ChiSquare("123 !?"), 1))
	})

	t.Run("english scores lower than skewed text", func(t *testing.T) {
		skewed := strings.Repeat("Z", len(englishSample))
		assert.Less(t, svc.ChiSquare(englishSample), svc.ChiSquare(skewed))
	})

	t.Run("finite for any letter input", func(t *testing.T) {
		for _, text := range []string{"A", "QQQQ", englishSample} {
			chi := svc.ChiSquare(text)
			assert.False(t, math.IsInf(chi, 0), "ChiSquare(%q) = %v", text, chi)
			assert.False(t, math.IsNaN(chi))
		}
	})

	t.Run("uniform fallback without letter table", func(t *testing.T) {
		bare, err := NewService(tables.New(tables.Config{}))
		require.NoError(t, err)
		chi := bare.ChiSquare("HELLO")
		assert.False(t, math.IsInf(chi, 0))
		assert.Greater(t, chi, 0.0)
	})
}

// Package testing provides utilities and helpers for testing the
// solver against known plaintext/ciphertext fixtures.
package testing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherkit/go-columnar-solver/config"
	"github.com/cipherkit/go-columnar-solver/internal/columnar"
	"github.com/cipherkit/go-columnar-solver/internal/engine"
	"github.com/cipherkit/go-columnar-solver/model"
	"github.com/cipherkit/go-columnar-solver/tables"
)

// SamplePlaintext is a 40-letter English fixture whose n-grams and
// words are well covered by the embedded default tables.
const SamplePlaintext = "BETWEENSUBTLESHADINGANDTHEABSENCEOFLIGHT"

// SampleCribs are phrases known to occur in SamplePlaintext, used to
// sharpen scoring in fixtures where the search must be unambiguous.
var SampleCribs = []string{"BETWEEN", "ABSENCE"}

// CreateTestSolver builds a solver over the embedded default tables
// augmented with SampleCribs, with a fixed seed for reproducibility.
func CreateTestSolver(t *testing.T) *engine.Solver {
	t.Helper()
	tbl, err := tables.Default()
	require.NoError(t, err, "Failed to load default tables")

	settings := config.DefaultSettings()
	settings.Seed = 1

	solver, err := engine.NewSolver(tbl.WithCribs(SampleCribs, nil), settings)
	require.NoError(t, err, "Failed to create test solver")
	return solver
}

// Encrypt applies a columnar transposition, failing the test on
// invalid input.
func Encrypt(t *testing.T, plaintext string, period int, perm model.Permutation) string {
	t.Helper()
	ciphertext, err := columnar.Apply(plaintext, period, perm)
	require.NoError(t, err, "Failed to encrypt fixture")
	return ciphertext
}

// SolveFixture is one known-answer solve scenario.
type SolveFixture struct {
	Name      string
	Plaintext string
	Period    int
	Perm      model.Permutation
}

// RunSolveFixtures encrypts each fixture and asserts that the solver's
// exhaustive search recovers the original plaintext and permutation.
func RunSolveFixtures(t *testing.T, solver *engine.Solver, fixtures []SolveFixture) {
	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			ciphertext := Encrypt(t, fx.Plaintext, fx.Period, fx.Perm)

			result, err := solver.SolveExhaustive(context.Background(), ciphertext, fx.Period)
			require.NoError(t, err, "Solve should not fail")

			assert.Equal(t, len(ciphertext), len(result.Best.Plaintext), "Plaintext length should match ciphertext")
			assert.Equal(t, fx.Plaintext, result.Best.Plaintext, "Recovered plaintext should match")
			assert.True(t, result.Best.Permutation.Equal(fx.Perm),
				"Recovered permutation should match: want %v, got %v", fx.Perm, result.Best.Permutation)
		})
	}
}

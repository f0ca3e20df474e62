// Package config provides configuration structures for the solver.
// It defines search strategy parameters, period bounds, and worker
// limits for multi-restart searches.
package config

import (
	"runtime"

	"github.com/cipherkit/go-columnar-solver/internal/errors"
)

// Recognized defaults for solver parameters. Callers that need
// different trade-offs pass their own SolverSettings; these values suit
// ciphertexts in the tens-to-hundreds of characters.
const (
	DefaultMaxIterations       = 5000
	DefaultNumRestarts         = 8
	DefaultInitialTemp         = 10.0
	DefaultCoolingRate         = 0.995
	DefaultMaxExhaustivePeriod = 8
	DefaultMinPeriod           = 2
	DefaultMaxPeriod           = 10
)

// SolverSettings contains all tunable parameters for the permutation
// search engine and period detector. A zero value is not usable; start
// from DefaultSettings and override fields as needed.
//
// Every parameter is passed explicitly into search calls via this
// struct. There is no global mutable configuration: two concurrent
// searches with different settings never interfere.
type SolverSettings struct {
	MaxIterations       int      `json:"max_iterations"`        // Neighbor proposals per hill-climbing or annealing run (counts proposals, not accepted moves)
	NumRestarts         int      `json:"num_restarts"`          // Independent runs in multi-start variants
	InitialTemp         float64  `json:"initial_temp"`          // Starting temperature for simulated annealing
	CoolingRate         float64  `json:"cooling_rate"`          // Geometric temperature decay per iteration; must be in (0, 1)
	TargetScore         *float64 `json:"target_score,omitempty"` // Optional: exhaustive search stops early once a score meets or exceeds this
	MaxExhaustivePeriod int      `json:"max_exhaustive_period"` // Ceiling above which exhaustive search fails fast (factorial growth)
	MinPeriod           int      `json:"min_period"`            // Lower bound for period detection
	MaxPeriod           int      `json:"max_period"`            // Upper bound for period detection
	MaxWorkers          int      `json:"max_workers"`           // Concurrent restarts in multi-start searches
	Seed                int64    `json:"seed"`                  // Base RNG seed; 0 picks a time-based seed per search
}

// DefaultSettings returns the recognized default parameters.
func DefaultSettings() SolverSettings {
	return SolverSettings{
		MaxIterations:       DefaultMaxIterations,
		NumRestarts:         DefaultNumRestarts,
		InitialTemp:         DefaultInitialTemp,
		CoolingRate:         DefaultCoolingRate,
		MaxExhaustivePeriod: DefaultMaxExhaustivePeriod,
		MinPeriod:           DefaultMinPeriod,
		MaxPeriod:           DefaultMaxPeriod,
		MaxWorkers:          runtime.NumCPU(),
	}
}

// Validate checks every parameter and returns a typed error for the
// first violation found. Validation happens before any computation
// begins so that misconfigured searches fail fast.
func (s *SolverSettings) Validate() error {
	if s.MaxIterations < 1 {
		return errors.NewInvalidSettingsError("MaxIterations", "must be at least 1")
	}
	if s.NumRestarts < 1 {
		return errors.NewInvalidSettingsError("NumRestarts", "must be at least 1")
	}
	if s.InitialTemp <= 0 {
		return errors.NewInvalidSettingsError("InitialTemp", "must be positive")
	}
	if s.CoolingRate <= 0 || s.CoolingRate >= 1 {
		return errors.NewInvalidCoolingRateError(s.CoolingRate)
	}
	if s.MaxExhaustivePeriod < 2 {
		return errors.NewInvalidSettingsError("MaxExhaustivePeriod", "must be at least 2")
	}
	if s.MinPeriod < 2 {
		return errors.NewInvalidSettingsError("MinPeriod", "must be at least 2")
	}
	if s.MaxPeriod < s.MinPeriod {
		return errors.NewInvalidSettingsError("MaxPeriod", "must be at least MinPeriod")
	}
	if s.MaxWorkers < 1 {
		return errors.NewInvalidSettingsError("MaxWorkers", "must be at least 1")
	}
	return nil
}

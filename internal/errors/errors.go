package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver precondition violations. Preconditions are
// the only failures the core signals to callers; degraded scoring input
// never produces an error.
var (
	// ErrPeriodTooLarge is returned when an exhaustive search is requested
	// for a period above the tractability ceiling.
	ErrPeriodTooLarge = errors.New("period exceeds exhaustive search ceiling")

	// ErrInvalidPeriod is returned when a period is below 2.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidCoolingRate is returned when an annealing cooling rate is
	// outside the open interval (0, 1).
	ErrInvalidCoolingRate = errors.New("invalid cooling rate")

	// ErrInvalidPermutation is returned when a permutation is not a
	// bijection over [0, period).
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrInvalidSettings is returned when solver settings fail validation.
	ErrInvalidSettings = errors.New("invalid solver settings")

	// ErrHypothesisNotFound is returned when a named hypothesis does not
	// exist.
	ErrHypothesisNotFound = errors.New("hypothesis not found")

	// ErrHypothesisExists is returned when creating a hypothesis under a
	// name already in use.
	ErrHypothesisExists = errors.New("hypothesis already exists")
)

// PeriodTooLargeError reports an exhaustive search request above the
// configured ceiling.
type PeriodTooLargeError struct {
	Period  int
	Ceiling int
}

func (e *PeriodTooLargeError) Error() string {
	return fmt.Sprintf("period %d exceeds exhaustive search ceiling %d", e.Period, e.Ceiling)
}

func (e *PeriodTooLargeError) Is(target error) bool {
	return target == ErrPeriodTooLarge
}

// NewPeriodTooLargeError creates a new PeriodTooLargeError.
func NewPeriodTooLargeError(period, ceiling int) *PeriodTooLargeError {
	return &PeriodTooLargeError{Period: period, Ceiling: ceiling}
}

// InvalidPeriodError reports a period below the minimum of 2.
type InvalidPeriodError struct {
	Period int
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("period %d is invalid: must be at least 2", e.Period)
}

func (e *InvalidPeriodError) Is(target error) bool {
	return target == ErrInvalidPeriod
}

// NewInvalidPeriodError creates a new InvalidPeriodError.
func NewInvalidPeriodError(period int) *InvalidPeriodError {
	return &InvalidPeriodError{Period: period}
}

// InvalidCoolingRateError reports a cooling rate outside (0, 1).
type InvalidCoolingRateError struct {
	Rate float64
}

func (e *InvalidCoolingRateError) Error() string {
	return fmt.Sprintf("cooling rate %g is invalid: must be in (0, 1)", e.Rate)
}

func (e *InvalidCoolingRateError) Is(target error) bool {
	return target == ErrInvalidCoolingRate
}

// NewInvalidCoolingRateError creates a new InvalidCoolingRateError.
func NewInvalidCoolingRateError(rate float64) *InvalidCoolingRateError {
	return &InvalidCoolingRateError{Rate: rate}
}

// InvalidPermutationError reports a permutation that is not a bijection
// over [0, period), or whose size does not match the period.
type InvalidPermutationError struct {
	Period int
	Reason string
}

func (e *InvalidPermutationError) Error() string {
	return fmt.Sprintf("invalid permutation for period %d: %s", e.Period, e.Reason)
}

func (e *InvalidPermutationError) Is(target error) bool {
	return target == ErrInvalidPermutation
}

// NewInvalidPermutationError creates a new InvalidPermutationError.
func NewInvalidPermutationError(period int, reason string) *InvalidPermutationError {
	return &InvalidPermutationError{Period: period, Reason: reason}
}

// InvalidSettingsError reports a solver settings field that failed
// validation.
type InvalidSettingsError struct {
	Field  string
	Reason string
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid solver settings: %s %s", e.Field, e.Reason)
}

func (e *InvalidSettingsError) Is(target error) bool {
	return target == ErrInvalidSettings
}

// NewInvalidSettingsError creates a new InvalidSettingsError.
func NewInvalidSettingsError(field, reason string) *InvalidSettingsError {
	return &InvalidSettingsError{Field: field, Reason: reason}
}

// HypothesisNotFoundError reports a lookup of an unregistered
// hypothesis name.
type HypothesisNotFoundError struct {
	Name string
}

func (e *HypothesisNotFoundError) Error() string {
	return fmt.Sprintf("hypothesis '%s' not found", e.Name)
}

func (e *HypothesisNotFoundError) Is(target error) bool {
	return target == ErrHypothesisNotFound
}

// NewHypothesisNotFoundError creates a new HypothesisNotFoundError.
func NewHypothesisNotFoundError(name string) *HypothesisNotFoundError {
	return &HypothesisNotFoundError{Name: name}
}

// HypothesisExistsError reports a create under a name already in use.
type HypothesisExistsError struct {
	Name string
}

func (e *HypothesisExistsError) Error() string {
	return fmt.Sprintf("hypothesis '%s' already exists", e.Name)
}

func (e *HypothesisExistsError) Is(target error) bool {
	return target == ErrHypothesisExists
}

// NewHypothesisExistsError creates a new HypothesisExistsError.
func NewHypothesisExistsError(name string) *HypothesisExistsError {
	return &HypothesisExistsError{Name: name}
}

// Package model defines the estimator contracts shared by every regression
// variant in the benchmark, plus gob persistence helpers.
package model

// EstimatorState tracks whether an estimator has been fitted.
type EstimatorState int

const (
	// NotFitted is the zero state of a fresh estimator.
	NotFitted EstimatorState = iota
	// Fitted marks an estimator whose Fit completed successfully.
	Fitted
)

// BaseEstimator is embedded by every estimator and transformer. The state
// field is exported so a persisted model decodes back as fitted.
type BaseEstimator struct {
	State EstimatorState
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.State == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.State = Fitted
}

// Reset returns the estimator to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.State = NotFitted
}

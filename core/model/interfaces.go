package model

import (
	"gonum.org/v1/gonum/mat"
)

// Estimator is anything that can be fitted on a feature matrix and a target
// column vector.
type Estimator interface {
	Fit(X, y mat.Matrix) error
}

// Predictor produces a column vector of predictions for a feature matrix.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor is the capability every benchmark model satisfies: fit, then
// predict. The pipeline treats all three variants through this interface.
type Regressor interface {
	Estimator
	Predictor
}

// ParameterGetter exposes an estimator's hyperparameters for logging and
// bundle metadata.
type ParameterGetter interface {
	GetParams() map[string]interface{}
}

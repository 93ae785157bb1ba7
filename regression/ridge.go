package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// Ridge fits L2-regularized least squares by solving the regularized normal
// equations (XᵀX + αP)w = Xᵀy, where P is the identity with a zero in the
// intercept position so the bias is not penalized.
type Ridge struct {
	model.BaseEstimator

	// Alpha is the regularization strength. Zero reduces to ordinary least
	// squares.
	Alpha float64

	// Weights holds one coefficient per feature.
	Weights []float64

	// Intercept is the bias term.
	Intercept float64

	// NFeatures is the fitted feature count.
	NFeatures int
}

// NewRidge creates an unfitted ridge model with the given regularization
// strength.
func NewRidge(alpha float64) *Ridge {
	return &Ridge{Alpha: alpha}
}

// Fit estimates the coefficients from X and the column vector y.
func (rg *Ridge) Fit(X, y mat.Matrix) error {
	if rg.Alpha < 0 {
		return errors.NewValueError("Ridge.Fit", "alpha must be non-negative")
	}

	Xb, yVec, err := checkRegressionInput("Ridge.Fit", X, y)
	if err != nil {
		return err
	}

	_, cb := Xb.Dims()

	var xtx mat.Dense
	xtx.Mul(Xb.T(), Xb)
	// Penalize everything except the intercept column.
	for j := 1; j < cb; j++ {
		xtx.Set(j, j, xtx.At(j, j)+rg.Alpha)
	}

	var xty mat.VecDense
	xty.MulVec(Xb.T(), yVec)

	var sol mat.VecDense
	if err := sol.SolveVec(&xtx, &xty); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return errors.NewModelError("Ridge.Fit", "singular system", errors.ErrSingularMatrix)
		}
	}

	rg.NFeatures = cb - 1
	rg.Intercept = sol.AtVec(0)
	rg.Weights = make([]float64, rg.NFeatures)
	for j := 0; j < rg.NFeatures; j++ {
		rg.Weights[j] = sol.AtVec(j + 1)
	}

	rg.SetFitted()
	return nil
}

// Predict returns y = X·w + b as an n×1 matrix.
func (rg *Ridge) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !rg.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "Predict")
	}
	return linearPredict("Ridge.Predict", X, rg.Weights, rg.Intercept, rg.NFeatures)
}

// GetParams returns the hyperparameters.
func (rg *Ridge) GetParams() map[string]interface{} {
	return map[string]interface{}{"alpha": rg.Alpha}
}

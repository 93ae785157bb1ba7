// Package regression implements the three estimators compared by the
// benchmark: ordinary least squares, ridge regression and a random forest.
// All of them satisfy model.Regressor and are gob-encodable for bundling.
package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// LinearRegression fits ordinary least squares with an intercept, solved as
// the minimum-norm least squares solution via SVD. Full one-hot blocks are
// exactly collinear with the intercept column, so the design matrix is rank
// deficient by construction and a plain triangular solve would not do.
type LinearRegression struct {
	model.BaseEstimator

	// Weights holds one coefficient per feature.
	Weights []float64

	// Intercept is the bias term.
	Intercept float64

	// NFeatures is the fitted feature count.
	NFeatures int
}

// NewLinearRegression creates an unfitted ordinary least squares model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit estimates the coefficients from X and the column vector y.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	Xb, yVec, err := checkRegressionInput("LinearRegression.Fit", X, y)
	if err != nil {
		return err
	}

	r, c := Xb.Dims()
	var svd mat.SVD
	if ok := svd.Factorize(Xb, mat.SVDThin); !ok {
		return errors.NewModelError("LinearRegression.Fit", "SVD did not converge", errors.ErrSingularMatrix)
	}

	yDense := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		yDense.Set(i, 0, yVec.AtVec(i))
	}

	// Effective rank: singular values below the usual eps-scaled cutoff are
	// treated as zero so the solve returns the minimum-norm solution.
	values := svd.Values(nil)
	tol := float64(r) * values[0] * 2.22e-16
	rank := 0
	for _, v := range values {
		if v > tol {
			rank++
		}
	}
	if rank == 0 {
		return errors.NewModelError("LinearRegression.Fit", "rank-zero design matrix", errors.ErrSingularMatrix)
	}

	var sol mat.Dense
	svd.SolveTo(&sol, yDense, rank)

	lr.NFeatures = c - 1
	lr.Intercept = sol.At(0, 0)
	lr.Weights = make([]float64, lr.NFeatures)
	for j := 0; j < lr.NFeatures; j++ {
		lr.Weights[j] = sol.At(j+1, 0)
	}

	lr.SetFitted()
	return nil
}

// Predict returns y = X·w + b as an n×1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}
	return linearPredict("LinearRegression.Predict", X, lr.Weights, lr.Intercept, lr.NFeatures)
}

// GetParams returns the hyperparameters (none for plain least squares).
func (lr *LinearRegression) GetParams() map[string]interface{} {
	return map[string]interface{}{}
}

// checkRegressionInput validates X and y and returns the design matrix with
// a leading intercept column plus y as a vector.
func checkRegressionInput(op string, X, y mat.Matrix) (*mat.Dense, *mat.VecDense, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return nil, nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return nil, nil, errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return nil, nil, errors.NewValueError(op, "y must be a column vector")
	}

	Xb := mat.NewDense(r, c+1, nil)
	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		Xb.Set(i, 0, 1.0)
		for j := 0; j < c; j++ {
			Xb.Set(i, j+1, X.At(i, j))
		}
		yVec.SetVec(i, y.At(i, 0))
	}
	return Xb, yVec, nil
}

// linearPredict evaluates a linear model on X.
func linearPredict(op string, X mat.Matrix, weights []float64, intercept float64, nFeatures int) (mat.Matrix, error) {
	r, c := X.Dims()
	if c != nFeatures {
		return nil, errors.NewDimensionError(op, nFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * weights[j]
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

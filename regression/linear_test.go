package regression

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/metrics"
)

func TestLinearRegressionRecoversExactRelationship(t *testing.T) {
	// charges = 100*age with zero noise: OLS must recover the slope and
	// score R2 ~ 1 with MAE ~ 0.
	n := 10
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		age := float64(18 + i*4)
		X.Set(i, 0, age)
		y.Set(i, 0, 100*age)
	}

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if math.Abs(lr.Weights[0]-100) > 1e-6 {
		t.Errorf("slope = %v, want 100", lr.Weights[0])
	}
	if math.Abs(lr.Intercept) > 1e-6 {
		t.Errorf("intercept = %v, want 0", lr.Intercept)
	}

	pred, err := lr.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, pred.At(i, 0))
	}
	r2, err := metrics.R2Score(yTrue, yPred)
	if err != nil {
		t.Fatalf("R2Score() error = %v", err)
	}
	if math.Abs(r2-1) > 1e-9 {
		t.Errorf("R2 = %v, want ~1", r2)
	}
	mae, _ := metrics.MAE(yTrue, yPred)
	if mae > 1e-6 {
		t.Errorf("MAE = %v, want ~0", mae)
	}
}

func TestLinearRegressionMultiFeature(t *testing.T) {
	// y = 2*x0 - 3*x1 + 5
	X := mat.NewDense(6, 2, []float64{
		1, 1,
		2, 1,
		3, 2,
		4, 3,
		5, 5,
		6, 8,
	})
	y := mat.NewDense(6, 1, nil)
	for i := 0; i < 6; i++ {
		y.Set(i, 0, 2*X.At(i, 0)-3*X.At(i, 1)+5)
	}

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if math.Abs(lr.Weights[0]-2) > 1e-6 || math.Abs(lr.Weights[1]+3) > 1e-6 {
		t.Errorf("weights = %v, want [2 -3]", lr.Weights)
	}
	if math.Abs(lr.Intercept-5) > 1e-6 {
		t.Errorf("intercept = %v, want 5", lr.Intercept)
	}
}

func TestLinearRegressionValidation(t *testing.T) {
	lr := NewLinearRegression()
	if _, err := lr.Predict(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Predict() before Fit() should fail")
	}

	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	yBad := mat.NewDense(2, 1, []float64{1, 2})
	if err := lr.Fit(X, yBad); err == nil {
		t.Error("Fit() with mismatched rows should fail")
	}

	y := mat.NewDense(3, 1, []float64{1, 2, 3})
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, err := lr.Predict(mat.NewDense(1, 2, []float64{1, 2})); err == nil {
		t.Error("Predict() with the wrong feature count should fail")
	}
}

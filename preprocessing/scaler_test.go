package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	// Each column must come out with zero mean and unit variance.
	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		var sum, sumSq float64
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(r)
		for i := 0; i < r; i++ {
			d := scaled.At(i, j) - mean
			sumSq += d * d
		}
		if math.Abs(mean) > 1e-12 {
			t.Errorf("column %d mean = %v, want 0", j, mean)
		}
		if variance := sumSq / float64(r); math.Abs(variance-1) > 1e-12 {
			t.Errorf("column %d variance = %v, want 1", j, variance)
		}
	}
}

func TestStandardScalerReusesFittedStatistics(t *testing.T) {
	train := mat.NewDense(2, 1, []float64{0, 10})
	scaler := NewStandardScaler()
	if _, err := scaler.FitTransform(train); err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	// New data must be mapped with the training statistics (mean 5,
	// std 5), not refitted.
	other := mat.NewDense(1, 1, []float64{15})
	out, err := scaler.Transform(other)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got := out.At(0, 0); math.Abs(got-2) > 1e-12 {
		t.Errorf("Transform(15) = %v, want 2", got)
	}
}

func TestStandardScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})
	scaler := NewStandardScaler()
	out, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		if got := out.At(i, 0); got != 0 {
			t.Errorf("constant feature scaled to %v, want 0", got)
		}
	}
}

func TestStandardScalerErrors(t *testing.T) {
	scaler := NewStandardScaler()
	if _, err := scaler.Transform(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Transform() before Fit() should fail")
	}

	if err := scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, err := scaler.Transform(mat.NewDense(1, 3, []float64{1, 2, 3})); err == nil {
		t.Error("Transform() with the wrong width should fail")
	}
}

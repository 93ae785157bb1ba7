// Package evaluation partitions the data into train and holdout sets and
// scores fitted estimators against the holdout.
package evaluation

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// SplitIndices shuffles 0..n-1 with the given seed and cuts off a holdout of
// round(n*testSize) rows. The same seed always produces the same partition.
func SplitIndices(n int, testSize float64, seed int64) (train, test []int, err error) {
	if n == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "evaluation.SplitIndices")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, errors.NewValueError("evaluation.SplitIndices", "testSize must be in (0, 1)")
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	testCount := int(float64(n) * testSize)
	if testCount == 0 {
		testCount = 1
	}
	if testCount == n {
		testCount = n - 1
	}
	trainCount := n - testCount
	return indices[:trainCount], indices[trainCount:], nil
}

// TrainTestSplit partitions an aligned feature matrix and target vector into
// train and holdout sets. Row i of each returned matrix stays aligned with
// element i of its target vector.
func TrainTestSplit(X mat.Matrix, y *mat.VecDense, testSize float64, seed int64) (XTrain, XTest *mat.Dense, yTrain, yTest *mat.VecDense, err error) {
	r, c := X.Dims()
	if y.Len() != r {
		return nil, nil, nil, nil, errors.NewDimensionError("evaluation.TrainTestSplit", r, y.Len(), 0)
	}

	trainIdx, testIdx, err := SplitIndices(r, testSize, seed)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	gather := func(idx []int) (*mat.Dense, *mat.VecDense) {
		Xp := mat.NewDense(len(idx), c, nil)
		yp := mat.NewVecDense(len(idx), nil)
		for i, src := range idx {
			for j := 0; j < c; j++ {
				Xp.Set(i, j, X.At(src, j))
			}
			yp.SetVec(i, y.AtVec(src))
		}
		return Xp, yp
	}

	XTrain, yTrain = gather(trainIdx)
	XTest, yTest = gather(testIdx)
	return XTrain, XTest, yTrain, yTest, nil
}

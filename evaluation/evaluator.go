package evaluation

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/metrics"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// Metrics is one model's immutable score record against the holdout set.
type Metrics struct {
	Model string  `yaml:"model"`
	MAE   float64 `yaml:"mae"`
	MSE   float64 `yaml:"mse"`
	RMSE  float64 `yaml:"rmse"`
	R2    float64 `yaml:"r2"`
}

// Evaluate predicts the holdout set with a fitted regressor and computes the
// four benchmark metrics. The raw prediction vector is returned alongside
// the scores because the reporter plots it.
func Evaluate(name string, reg model.Regressor, XTest mat.Matrix, yTest *mat.VecDense) (Metrics, *mat.VecDense, error) {
	pred, err := reg.Predict(XTest)
	if err != nil {
		return Metrics{}, nil, errors.Wrap(err, "evaluation.Evaluate: "+name)
	}

	r, c := pred.Dims()
	if c != 1 {
		return Metrics{}, nil, errors.NewValueError("evaluation.Evaluate", "predictions must be a column vector")
	}
	yPred := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yPred.SetVec(i, pred.At(i, 0))
	}

	m := Metrics{Model: name}
	if m.MAE, err = metrics.MAE(yTest, yPred); err != nil {
		return Metrics{}, nil, err
	}
	if m.MSE, err = metrics.MSE(yTest, yPred); err != nil {
		return Metrics{}, nil, err
	}
	if m.RMSE, err = metrics.RMSE(yTest, yPred); err != nil {
		return Metrics{}, nil, err
	}
	if m.R2, err = metrics.R2Score(yTest, yPred); err != nil {
		return Metrics{}, nil, err
	}
	return m, yPred, nil
}

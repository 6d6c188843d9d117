package logistic

import (
	"context"

	"github.com/YuminosukeSato/survival/dataset"
	"github.com/YuminosukeSato/survival/pkg/errors"
	"github.com/YuminosukeSato/survival/pkg/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultLearningRate is the learning rate conventionally passed to GradientDescent.
const DefaultLearningRate = 0.01

// PredictProba returns sigmoid(z) for every row.
func (o *Objective) PredictProba(df *dataset.Frame, coefs []float64) (p *mat.VecDense, err error) {
	defer errors.Recover(&err, "PredictProba")

	z, err := o.LogOdds(df, coefs)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, errors.NewValueError("PredictProba", "log-odds function returned no values")
	}
	p = mat.NewVecDense(z.Len(), nil)
	for i := 0; i < z.Len(); i++ {
		p.SetVec(i, Expit(z.AtVec(i)))
	}
	return p, nil
}

// Gradient returns the mean gradient of the cross-entropy with respect to
// coefs, Xᵀ(sigmoid(z) - y) / n. It always has one entry per feature column.
func (o *Objective) Gradient(df *dataset.Frame, coefs []float64) (grad []float64, err error) {
	defer errors.Recover(&err, "Gradient")

	if len(coefs) != len(o.features) {
		return nil, errors.NewDimensionError("Gradient", len(o.features), len(coefs), 1)
	}
	x, err := df.Select(o.features...)
	if err != nil {
		return nil, err
	}
	y, z, err := o.labelsAndLogOdds("Gradient", df, coefs)
	if err != nil {
		return nil, err
	}

	n := y.Len()
	delta := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		delta.SetVec(i, Expit(z.AtVec(i))-y.AtVec(i))
	}

	var g mat.VecDense
	g.MulVec(x.T(), delta)
	g.ScaleVec(1/float64(n), &g)

	grad = make([]float64, g.Len())
	for j := range grad {
		grad[j] = g.AtVec(j)
	}

	if w := errors.CheckNumericalStability(log.OperationGradient, grad, 0); w != nil {
		errors.Warn(w)
	}

	logger := o.getLogger()
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("gradient computed",
			log.OperationKey, log.OperationGradient,
			log.SamplesKey, n,
			log.FeaturesKey, len(grad),
			log.GradNormKey, floats.Norm(grad, 2),
		)
	}
	return grad, nil
}

// GradientDescent returns grad - eta*grad, where grad is the mean gradient
// from Gradient.
//
// The result is the gradient scaled by (1-eta), not updated coefficients.
// Callers that want a descent step must compute coefs - eta*grad themselves
// from Gradient. With eta = 0 the raw gradient comes back; with eta = 1 the
// zero vector.
func (o *Objective) GradientDescent(df *dataset.Frame, coefs []float64, eta float64) ([]float64, error) {
	grad, err := o.Gradient(df, coefs)
	if err != nil {
		return nil, err
	}

	scaled := make([]float64, len(grad))
	floats.ScaleTo(scaled, eta, grad)
	step := make([]float64, len(grad))
	floats.SubTo(step, grad, scaled)

	logger := o.getLogger()
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("gradient step computed",
			log.OperationKey, log.OperationGradientDescent,
			log.SamplesKey, df.Rows(),
			log.FeaturesKey, len(grad),
			log.LearningRateKey, eta,
			log.GradNormKey, floats.Norm(grad, 2),
		)
	}
	return step, nil
}

// Gradient evaluates the mean gradient with the default Objective.
func Gradient(df *dataset.Frame, coefs []float64) ([]float64, error) {
	return defaultObjective.Gradient(df, coefs)
}

// GradientDescent evaluates grad - eta*grad with the default Objective.
// Use DefaultLearningRate for the conventional eta.
func GradientDescent(df *dataset.Frame, coefs []float64, eta float64) ([]float64, error) {
	return defaultObjective.GradientDescent(df, coefs, eta)
}

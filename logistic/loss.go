package logistic

import (
	"context"
	"math"

	"github.com/YuminosukeSato/survival/dataset"
	"github.com/YuminosukeSato/survival/pkg/errors"
	"github.com/YuminosukeSato/survival/pkg/log"
	"gonum.org/v1/gonum/stat"
)

// Expit is the logistic sigmoid 1/(1+exp(-z)).
func Expit(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// CrossEntropy returns the mean negative log-likelihood of the labels:
//
//	ll_i = -z_i*(1-y_i) - log(1+exp(-z_i))
//	loss = -mean(ll)
//
// exp(-z) is not clipped. A row with very negative z makes the loss +Inf; a
// row with y=0 and very positive z contributes exactly z.
func (o *Objective) CrossEntropy(df *dataset.Frame, coefs []float64) (loss float64, err error) {
	defer errors.Recover(&err, "CrossEntropy")

	y, z, err := o.labelsAndLogOdds("CrossEntropy", df, coefs)
	if err != nil {
		return 0, err
	}

	n := y.Len()
	logliks := make([]float64, n)
	for i := range logliks {
		zi, yi := z.AtVec(i), y.AtVec(i)
		logliks[i] = -zi*(1-yi) - math.Log(1+math.Exp(-zi))
	}
	loss = -stat.Mean(logliks, nil)

	if w := errors.CheckScalar(log.OperationCrossEntropy, loss, 0); w != nil {
		errors.Warn(w)
	}

	logger := o.getLogger()
	if logger.Enabled(context.Background(), log.LevelDebug) {
		logger.Debug("cross entropy computed",
			log.OperationKey, log.OperationCrossEntropy,
			log.SamplesKey, n,
			log.FeaturesKey, len(coefs),
			log.LossKey, loss,
		)
	}
	return loss, nil
}

// crossEntropyReference computes the same quantity as CrossEntropy by
// accumulating over (z, y) pairs and dividing by the row count. It is kept
// as a cross-check for the vectorized path.
func (o *Objective) crossEntropyReference(df *dataset.Frame, coefs []float64) (loss float64, err error) {
	defer errors.Recover(&err, "crossEntropyReference")

	y, z, err := o.labelsAndLogOdds("crossEntropyReference", df, coefs)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < y.Len(); i++ {
		zi, yi := z.AtVec(i), y.AtVec(i)
		sum += -zi*(1-yi) - math.Log(1+math.Exp(-zi))
	}
	return -sum / float64(df.Rows()), nil
}

// CrossEntropy evaluates the loss with the default Objective (Sex, Age and
// Pclass features, Survived label).
func CrossEntropy(df *dataset.Frame, coefs []float64) (float64, error) {
	return defaultObjective.CrossEntropy(df, coefs)
}

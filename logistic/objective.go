// Package logistic implements the binary logistic-regression loss and
// gradient over a dataset.Frame.
//
// The log-odds of each row are z = X·coefs, where X holds the feature columns
// (Sex, Age, Pclass by default) and coefs has one entry per feature in the
// same order. CrossEntropy returns the mean negative log-likelihood of the
// Survived labels under sigmoid(z); Gradient returns its mean gradient with
// respect to coefs.
//
// None of the functions guard exp(-z) against overflow. Large negative
// log-odds produce +Inf losses, which are reported as warnings through
// pkg/errors and returned unchanged.
package logistic

import (
	"github.com/YuminosukeSato/survival/dataset"
	"github.com/YuminosukeSato/survival/pkg/errors"
	"github.com/YuminosukeSato/survival/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// LogOddsFunc computes the linear predictor z for every row of df.
// The returned vector must have df.Rows() entries.
type LogOddsFunc func(df *dataset.Frame, coefs []float64) (*mat.VecDense, error)

// Objective evaluates the loss and gradient for a fixed choice of feature
// columns, label column and log-odds collaborator. It holds no mutable state
// and is safe for concurrent use.
type Objective struct {
	features []string
	label    string
	logOdds  LogOddsFunc
	logger   log.Logger
}

// ObjectiveOption is a functional option for Objective
type ObjectiveOption func(*Objective)

// WithFeatures sets the feature columns, in coefficient order.
func WithFeatures(names ...string) ObjectiveOption {
	return func(o *Objective) {
		o.features = append([]string(nil), names...)
	}
}

// WithLabel sets the binary label column.
func WithLabel(name string) ObjectiveOption {
	return func(o *Objective) {
		o.label = name
	}
}

// WithLogOdds injects the log-odds collaborator. Without it the objective
// uses the linear predictor over its feature columns.
func WithLogOdds(fn LogOddsFunc) ObjectiveOption {
	return func(o *Objective) {
		o.logOdds = fn
	}
}

// WithLogger sets the logger. Without it the package default logger from
// pkg/log is looked up on every call.
func WithLogger(logger log.Logger) ObjectiveOption {
	return func(o *Objective) {
		o.logger = logger
	}
}

// NewObjective creates an Objective over the passenger survival columns.
func NewObjective(opts ...ObjectiveOption) *Objective {
	o := &Objective{
		features: append([]string(nil), dataset.FeatureColumns...),
		label:    dataset.LabelColumn,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Features returns the feature column names in coefficient order.
func (o *Objective) Features() []string {
	return append([]string(nil), o.features...)
}

// Label returns the label column name.
func (o *Objective) Label() string {
	return o.label
}

// LogOdds returns z for every row, using the injected collaborator if any.
func (o *Objective) LogOdds(df *dataset.Frame, coefs []float64) (z *mat.VecDense, err error) {
	defer errors.Recover(&err, "LogOdds")

	if o.logOdds != nil {
		return o.logOdds(df, coefs)
	}
	return linearPredictor(df, o.features, coefs)
}

// LogOdds computes z = X·coefs over the Sex, Age and Pclass columns.
func LogOdds(df *dataset.Frame, coefs []float64) (*mat.VecDense, error) {
	return linearPredictor(df, dataset.FeatureColumns, coefs)
}

func linearPredictor(df *dataset.Frame, features []string, coefs []float64) (z *mat.VecDense, err error) {
	defer errors.Recover(&err, "LogOdds")

	if len(coefs) != len(features) {
		return nil, errors.NewDimensionError("LogOdds", len(features), len(coefs), 1)
	}
	x, err := df.Select(features...)
	if err != nil {
		return nil, err
	}

	z = mat.NewVecDense(df.Rows(), nil)
	z.MulVec(x, mat.NewVecDense(len(coefs), append([]float64(nil), coefs...)))
	return z, nil
}

// labelsAndLogOdds reads the label column and z, checking that they line up.
func (o *Objective) labelsAndLogOdds(op string, df *dataset.Frame, coefs []float64) (y, z *mat.VecDense, err error) {
	y, err = df.Column(o.label)
	if err != nil {
		return nil, nil, err
	}
	z, err = o.LogOdds(df, coefs)
	if err != nil {
		return nil, nil, err
	}
	if z == nil {
		return nil, nil, errors.NewValueError(op, "log-odds function returned no values")
	}
	if z.Len() != y.Len() {
		return nil, nil, errors.NewDimensionError(op, y.Len(), z.Len(), 0)
	}
	return y, z, nil
}

func (o *Objective) getLogger() log.Logger {
	if o.logger != nil {
		return o.logger
	}
	return log.GetLoggerWithName("logistic")
}

var defaultObjective = NewObjective()

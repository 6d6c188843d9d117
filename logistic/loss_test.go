package logistic

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/survival/dataset"
	"github.com/YuminosukeSato/survival/metrics"
	"github.com/YuminosukeSato/survival/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func twoPassengers(t testing.TB) *dataset.Frame {
	t.Helper()
	df, err := dataset.New(
		[]string{dataset.Sex, dataset.Age, dataset.Pclass, dataset.Survived},
		[]float64{0, 1},
		[]float64{22, 38},
		[]float64{3, 1},
		[]float64{0, 1},
	)
	require.NoError(t, err)
	return df
}

func singlePassenger(t testing.TB, survived float64) *dataset.Frame {
	t.Helper()
	df, err := dataset.New(
		[]string{dataset.Sex, dataset.Age, dataset.Pclass, dataset.Survived},
		[]float64{1}, []float64{0}, []float64{0}, []float64{survived},
	)
	require.NoError(t, err)
	return df
}

// randomPassengers draws n rows with Titanic-like ranges.
// captureWarnings collects errors.Warn calls until the test ends, then
// restores the previous handler.
func captureWarnings(t *testing.T) *[]error {
	t.Helper()
	var warned []error
	previous := errors.WarningHandler()
	errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	t.Cleanup(func() { errors.SetWarningHandler(previous) })
	return &warned
}

func randomPassengers(t testing.TB, n int) *dataset.Frame {
	t.Helper()
	sex := make([]float64, n)
	age := make([]float64, n)
	pclass := make([]float64, n)
	survived := make([]float64, n)
	for i := 0; i < n; i++ {
		sex[i] = distuv.Bernoulli{P: 0.35}.Rand()
		age[i] = math.Round(distuv.Uniform{Min: 1, Max: 80}.Rand())
		pclass[i] = 1 + math.Floor(distuv.Uniform{Min: 0, Max: 3}.Rand())
		survived[i] = distuv.Bernoulli{P: 0.38}.Rand()
	}
	df, err := dataset.New(
		[]string{dataset.Sex, dataset.Age, dataset.Pclass, dataset.Survived},
		sex, age, pclass, survived,
	)
	require.NoError(t, err)
	return df
}

func randomCoefs() []float64 {
	n := distuv.Normal{Mu: 0, Sigma: 0.1}
	return []float64{n.Rand(), n.Rand(), n.Rand()}
}

func TestLogOdds(t *testing.T) {
	df := twoPassengers(t)

	z, err := LogOdds(df, []float64{1, 0.5, -2})
	require.NoError(t, err)
	require.Equal(t, 2, z.Len())
	assert.InDelta(t, 0+11-6, z.AtVec(0), 1e-12)
	assert.InDelta(t, 1+19-2, z.AtVec(1), 1e-12)
}

func TestLogOdds_Errors(t *testing.T) {
	df := twoPassengers(t)

	_, err := LogOdds(df, []float64{1, 2})
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
	assert.Equal(t, 1, dimErr.Axis)

	noAge, err := dataset.New([]string{dataset.Sex, dataset.Pclass, dataset.Survived},
		[]float64{0}, []float64{3}, []float64{0})
	require.NoError(t, err)
	_, err = LogOdds(noAge, []float64{0, 0, 0})
	var colErr *errors.MissingColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, dataset.Age, colErr.Column)
}

func TestExpit(t *testing.T) {
	assert.Equal(t, 0.5, Expit(0))
	assert.InDelta(t, 1/(1+math.E), Expit(-1), 1e-15)
	assert.Equal(t, 1.0, Expit(1000))
	assert.Equal(t, 0.0, Expit(-1000))
}

func TestCrossEntropy_ZeroCoefficients(t *testing.T) {
	loss, err := CrossEntropy(twoPassengers(t), []float64{0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), loss, 1e-12)
}

func TestCrossEntropy_KnownValue(t *testing.T) {
	// z = [0*1 + 22*0.1 + 3*(-1), 1*1 + 38*0.1 + 1*(-1)] = [-0.8, 3.8]
	coefs := []float64{1, 0.1, -1}
	want := (-0.8 + math.Log(1+math.Exp(0.8)) + math.Log(1+math.Exp(-3.8))) / 2

	loss, err := CrossEntropy(twoPassengers(t), coefs)
	require.NoError(t, err)
	assert.InDelta(t, want, loss, 1e-12)
}

func TestCrossEntropy_MatchesReference(t *testing.T) {
	obj := NewObjective()
	for trial := 0; trial < 20; trial++ {
		df := randomPassengers(t, 50+trial*10)
		coefs := randomCoefs()

		got, err := obj.CrossEntropy(df, coefs)
		require.NoError(t, err)
		ref, err := obj.crossEntropyReference(df, coefs)
		require.NoError(t, err)

		assert.InDelta(t, ref, got, 1e-9, "trial %d coefs %v", trial, coefs)
	}
}

func TestCrossEntropy_NonNegative(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		df := randomPassengers(t, 100)
		loss, err := CrossEntropy(df, randomCoefs())
		require.NoError(t, err)
		assert.False(t, math.IsInf(loss, 0) || math.IsNaN(loss))
		assert.GreaterOrEqual(t, loss, 0.0)
	}
}

func TestCrossEntropy_AgreesWithBinaryLogLoss(t *testing.T) {
	df := randomPassengers(t, 200)
	coefs := []float64{1.0, -0.02, -0.5}
	obj := NewObjective()

	loss, err := obj.CrossEntropy(df, coefs)
	require.NoError(t, err)

	p, err := obj.PredictProba(df, coefs)
	require.NoError(t, err)
	y, err := df.Column(dataset.Survived)
	require.NoError(t, err)
	want, err := metrics.BinaryLogLoss(y, p)
	require.NoError(t, err)

	assert.InDelta(t, want, loss, 1e-6)
}

func TestCrossEntropy_Limits(t *testing.T) {
	tests := []struct {
		name     string
		survived float64
		z        float64
		check    func(t *testing.T, loss float64)
	}{
		{
			name:     "confident and right",
			survived: 1,
			z:        50,
			check: func(t *testing.T, loss float64) {
				assert.InDelta(t, 0, loss, 1e-20)
			},
		},
		{
			name:     "confident and wrong",
			survived: 1,
			z:        -50,
			check: func(t *testing.T, loss float64) {
				assert.InDelta(t, 50, loss, 1e-9)
			},
		},
		{
			name:     "saturates to z",
			survived: 0,
			z:        1000,
			check: func(t *testing.T, loss float64) {
				assert.Equal(t, 1000.0, loss)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loss, err := CrossEntropy(singlePassenger(t, tt.survived), []float64{tt.z, 0, 0})
			require.NoError(t, err)
			tt.check(t, loss)
		})
	}
}

func TestCrossEntropy_OverflowWarns(t *testing.T) {
	warned := captureWarnings(t)

	loss, err := CrossEntropy(singlePassenger(t, 1), []float64{-1000, 0, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(loss, 1))

	var numErr *errors.NumericalInstabilityError
	require.Len(t, *warned, 1)
	require.True(t, errors.As((*warned)[0], &numErr))
	assert.Equal(t, "cross_entropy", numErr.Operation)
}

func TestCrossEntropy_Errors(t *testing.T) {
	unlabeled, err := dataset.New(
		[]string{dataset.Sex, dataset.Age, dataset.Pclass},
		[]float64{0}, []float64{22}, []float64{3},
	)
	require.NoError(t, err)

	_, err = CrossEntropy(unlabeled, []float64{0, 0, 0})
	var colErr *errors.MissingColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, dataset.Survived, colErr.Column)

	_, err = CrossEntropy(twoPassengers(t), []float64{0, 0, 0, 0})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func BenchmarkCrossEntropy(b *testing.B) {
	df := randomPassengers(b, 891)
	coefs := []float64{1.2, -0.03, -0.6}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CrossEntropy(df, coefs)
	}
}

func BenchmarkCrossEntropyReference(b *testing.B) {
	df := randomPassengers(b, 891)
	coefs := []float64{1.2, -0.03, -0.6}
	obj := NewObjective()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = obj.crossEntropyReference(df, coefs)
	}
}

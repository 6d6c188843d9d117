package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/survival/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func vec(values []float64) *mat.VecDense {
	if len(values) == 0 {
		return nil
	}
	return mat.NewVecDense(len(values), values)
}

func TestBinaryLogLoss(t *testing.T) {
	tests := []struct {
		name     string
		survived []float64
		proba    []float64
		want     float64
		wantErr  bool
	}{
		{
			name:     "coin flip",
			survived: []float64{0, 1, 1, 0},
			proba:    []float64{0.5, 0.5, 0.5, 0.5},
			want:     math.Ln2,
		},
		{
			name:     "mostly right",
			survived: []float64{0, 1},
			proba:    []float64{0.2, 0.9},
			want:     -(math.Log(0.8) + math.Log(0.9)) / 2,
		},
		{
			name:     "confidently wrong",
			survived: []float64{1, 0},
			proba:    []float64{0.01, 0.99},
			want:     -math.Log(0.01),
		},
		{
			name:     "certain predictions are clipped",
			survived: []float64{0, 1},
			proba:    []float64{0, 1},
			want:     0,
		},
		{
			name:     "label outside 0/1",
			survived: []float64{0, 2},
			proba:    []float64{0.3, 0.6},
			wantErr:  true,
		},
		{
			name:    "empty",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BinaryLogLoss(vec(tt.survived), vec(tt.proba))
			if (err != nil) != tt.wantErr {
				t.Fatalf("BinaryLogLoss() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BinaryLogLoss() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinaryLogLoss_ZeroProbabilityIsFinite(t *testing.T) {
	got, err := BinaryLogLoss(vec([]float64{1}), vec([]float64{0}))
	if err != nil {
		t.Fatal(err)
	}
	if math.IsInf(got, 0) || math.Abs(got-(-math.Log(logLossEpsilon))) > 1e-9 {
		t.Errorf("BinaryLogLoss() = %v, want -log(eps)", got)
	}
}

func TestBinaryLogLoss_LengthMismatch(t *testing.T) {
	_, err := BinaryLogLoss(vec([]float64{0, 1}), vec([]float64{0.1, 0.2, 0.3}))

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if dimErr.Expected != 2 || dimErr.Got != 3 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		survived []float64
		pred     []float64
		want     float64
		wantErr  bool
	}{
		{name: "all correct", survived: []float64{0, 1, 1}, pred: []float64{0, 1, 1}, want: 1},
		{name: "three of four", survived: []float64{0, 1, 1, 0}, pred: []float64{0, 1, 0, 0}, want: 0.75},
		{name: "all wrong", survived: []float64{1, 1}, pred: []float64{0, 0}, want: 0},
		{name: "empty", wantErr: true},
		{name: "length mismatch", survived: []float64{1}, pred: []float64{1, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(vec(tt.survived), vec(tt.pred))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkBinaryLogLoss(b *testing.B) {
	n := 891
	survived := make([]float64, n)
	proba := make([]float64, n)
	for i := 0; i < n; i++ {
		survived[i] = float64(i % 2)
		proba[i] = 0.1 + 0.8*float64(i)/float64(n)
	}
	y := mat.NewVecDense(n, survived)
	p := mat.NewVecDense(n, proba)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BinaryLogLoss(y, p)
	}
}

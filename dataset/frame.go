// Package dataset provides a small in-memory table of named float64 columns.
//
// A Frame plays the role of a data frame for the loss functions in package
// logistic: features are selected by name into a gonum matrix, the label is
// read as a gonum vector. Frames are immutable after construction; Column and
// Select return copies.
package dataset

import (
	"sort"

	"github.com/YuminosukeSato/survival/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Column names of the passenger survival table.
const (
	Sex      = "Sex"
	Age      = "Age"
	Pclass   = "Pclass"
	Survived = "Survived"
)

// FeatureColumns is the default feature set, in coefficient order.
var FeatureColumns = []string{Sex, Age, Pclass}

// LabelColumn is the default binary label column.
const LabelColumn = Survived

// Frame is a table of equally long float64 columns addressed by name.
type Frame struct {
	names   []string
	columns map[string]*mat.VecDense
	rows    int
}

// New builds a Frame from column names and their values, given in the same
// order. Values are copied.
func New(names []string, columns ...[]float64) (*Frame, error) {
	if len(names) != len(columns) {
		return nil, errors.NewValueError("dataset.New", "number of names and columns differ")
	}
	if len(names) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.New: no columns")
	}

	rows := len(columns[0])
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.New: no rows")
	}

	f := &Frame{
		names:   make([]string, 0, len(names)),
		columns: make(map[string]*mat.VecDense, len(names)),
		rows:    rows,
	}
	for i, name := range names {
		if _, dup := f.columns[name]; dup {
			return nil, errors.NewValueError("dataset.New", "duplicate column "+name)
		}
		if len(columns[i]) != rows {
			return nil, errors.NewDimensionError("dataset.New", rows, len(columns[i]), 0)
		}
		data := make([]float64, rows)
		copy(data, columns[i])
		f.names = append(f.names, name)
		f.columns[name] = mat.NewVecDense(rows, data)
	}
	return f, nil
}

// FromColumns builds a Frame from a name to values map. Column order is
// sorted by name.
func FromColumns(columns map[string][]float64) (*Frame, error) {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([][]float64, len(names))
	for i, name := range names {
		values[i] = columns[name]
	}
	return New(names, values...)
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	return f.rows
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Has reports whether the frame has a column called name.
func (f *Frame) Has(name string) bool {
	_, ok := f.columns[name]
	return ok
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) (*mat.VecDense, error) {
	col, ok := f.columns[name]
	if !ok {
		return nil, errors.NewMissingColumnError("Column", name, f.Names())
	}
	return mat.VecDenseCopyOf(col), nil
}

// Select returns the named columns as a rows x len(names) matrix, columns in
// the requested order.
func (f *Frame) Select(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, errors.NewValueError("Select", "no columns requested")
	}

	x := mat.NewDense(f.rows, len(names), nil)
	for j, name := range names {
		col, ok := f.columns[name]
		if !ok {
			return nil, errors.NewMissingColumnError("Select", name, f.Names())
		}
		x.SetCol(j, col.RawVector().Data)
	}
	return x, nil
}

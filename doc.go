// Package survival provides the logistic-regression loss and gradient used to
// predict passenger survival from Sex, Age and Pclass.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/survival/dataset"
//	    "github.com/YuminosukeSato/survival/logistic"
//	)
//
//	func main() {
//	    df, err := dataset.New(
//	        []string{dataset.Sex, dataset.Age, dataset.Pclass, dataset.Survived},
//	        []float64{0, 1}, []float64{22, 38}, []float64{3, 1}, []float64{0, 1},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    loss, err := logistic.CrossEntropy(df, []float64{0, 0, 0})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(loss) // log(2)
//	}
//
// # Packages
//
//   - dataset: in-memory table of named float64 columns
//   - logistic: LogOdds, CrossEntropy, Gradient, GradientDescent
//   - metrics: BinaryLogLoss and Accuracy over probability vectors
//   - visualize: loss profiles along one coefficient (gonum/plot)
//   - pkg/errors: typed errors with stack traces, warnings, panic recovery
//   - pkg/log: structured logging on zerolog
//
// # Gradient step
//
// logistic.GradientDescent returns grad - eta*grad, the gradient scaled by
// (1-eta). It does not return updated coefficients; compute
// coefs - eta*grad from logistic.Gradient for a descent step.
package survival

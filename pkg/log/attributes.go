// Standard attribute keys for logging loss and gradient evaluations.
//
// Keys follow a hierarchical naming convention ("ml.operation",
// "data.samples") so that log lines can be filtered by category.

package log

// Operation context.
const (
	// ComponentKey identifies which package is logging.
	// Examples: "logistic", "dataset", "visualize"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"
)

// Data shape.
const (
	// SamplesKey is the number of rows in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"
)

// Metrics and hyperparameters.
const (
	// LossKey records the loss value of an evaluation.
	LossKey = "metrics.loss"

	// GradNormKey records the L2 norm of a gradient vector.
	GradNormKey = "metrics.grad_norm"

	// LearningRateKey records the learning rate passed to a gradient step.
	LearningRateKey = "hyperparams.learning_rate"
)

// Error context.
const (
	// ErrorKey carries the error attached to a record.
	ErrorKey = "error"
)

// Standard operation values.
const (
	OperationCrossEntropy    = "cross_entropy"
	OperationGradient        = "gradient"
	OperationGradientDescent = "gradient_descent"
	OperationLossProfile     = "loss_profile"
)

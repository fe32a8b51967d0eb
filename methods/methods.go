// Package methods enumerates the named strategies that the evaluation
// pipeline recognizes: evaluation metrics, distribution comparison methods,
// and replicate summary methods. Callers validate user-supplied method names
// here before doing any work, so a typo fails up front with the list of
// supported names rather than partway through a computation.
package methods

import (
	"fmt"
	"strings"
)

// Evaluation metrics computed by the pipeline.
const (
	MetricReplicateReproducibility = "replicate_reproducibility"
	MetricPrecisionRecall          = "precision_recall"
	MetricGrit                     = "grit"
	MetricMPValue                  = "mp_value"
	MetricEnrichment               = "enrichment"
	MetricHitK                     = "hitk"
)

// Distribution comparison methods. Only the z-score comparison exists today;
// new methods are added here and in the distcompare dispatch table.
const (
	CompareZScore = "zscore"
)

// Replicate summary methods, used to reduce per-element scores to a scalar.
const (
	SummaryMean   = "mean"
	SummaryMedian = "median"
)

var evalMetrics = []string{
	MetricReplicateReproducibility,
	MetricPrecisionRecall,
	MetricGrit,
	MetricMPValue,
	MetricEnrichment,
	MetricHitK,
}

var compareDistributionMethods = []string{
	CompareZScore,
}

var replicateSummaryMethods = []string{
	SummaryMean,
	SummaryMedian,
}

// EvalMetrics returns the supported evaluation metric names.
func EvalMetrics() []string {
	return append([]string{}, evalMetrics...)
}

// CompareDistributionMethods returns the supported distribution comparison
// method names.
func CompareDistributionMethods() []string {
	return append([]string{}, compareDistributionMethods...)
}

// ReplicateSummaryMethods returns the supported replicate summary method
// names.
func ReplicateSummaryMethods() []string {
	return append([]string{}, replicateSummaryMethods...)
}

// UnsupportedMethodError reports a method name outside the recognized
// enumeration for its kind.
type UnsupportedMethodError struct {
	Kind      string
	Method    string
	Supported []string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("%s %q is not supported; choose one of: %s",
		e.Kind, e.Method, strings.Join(e.Supported, ", "))
}

// CheckEvalMetric confirms that evalMetric names a supported evaluation
// metric.
func CheckEvalMetric(evalMetric string) error {
	return check("eval metric", evalMetric, evalMetrics)
}

// CheckCompareDistributionMethod confirms that method names a supported
// distribution comparison method.
func CheckCompareDistributionMethod(method string) error {
	return check("distribution comparison method", method, compareDistributionMethods)
}

// CheckReplicateSummaryMethod confirms that method names a supported
// replicate summary method.
func CheckReplicateSummaryMethod(method string) error {
	return check("replicate summary method", method, replicateSummaryMethods)
}

func check(kind, method string, supported []string) error {
	for _, name := range supported {
		if method == name {
			return nil
		}
	}

	return &UnsupportedMethodError{
		Kind:      kind,
		Method:    method,
		Supported: append([]string{}, supported...),
	}
}

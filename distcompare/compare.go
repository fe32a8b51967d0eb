// Package distcompare reduces the difference between two numeric
// distributions to a single scalar. The target distribution is standardized
// against a control distribution and the per-element scores are summarized
// with a chosen statistic, yielding one number for how far the target sits
// from the control.
package distcompare

import (
	"github.com/montanaflynn/stats"

	"github.com/cytomining/profeval/methods"
)

// A comparison standardizes target against control and reduces the scores
// with the named replicate summary method.
type comparison func(target, control []float64, summaryMethod string) (float64, error)

// Comparison methods dispatch by name so that new strategies slot in without
// changing the Compare contract.
var comparisons = map[string]comparison{
	methods.CompareZScore: compareZScore,
}

// Compare scores the target distribution against the control distribution.
//
// Both method names are validated before any computation; an unknown name
// fails with an UnsupportedMethodError from the methods package. A
// degenerate control (empty or zero-variance) fails with the scaler's
// DegenerateControlError, passed through untouched. Compare is a pure
// function of its arguments.
func Compare(target, control []float64, method, replicateSummaryMethod string) (float64, error) {
	if err := methods.CheckCompareDistributionMethod(method); err != nil {
		return 0, err
	}
	if err := methods.CheckReplicateSummaryMethod(replicateSummaryMethod); err != nil {
		return 0, err
	}

	return comparisons[method](target, control, replicateSummaryMethod)
}

func compareZScore(target, control []float64, summaryMethod string) (float64, error) {
	var scaler StandardScaler
	if err := scaler.Fit(control); err != nil {
		return 0, err
	}

	return summarize(scaler.Transform(target), summaryMethod)
}

func summarize(scores []float64, summaryMethod string) (float64, error) {
	switch summaryMethod {
	case methods.SummaryMean:
		return stats.Mean(scores)
	case methods.SummaryMedian:
		return stats.Median(scores)
	}

	// Compare validates the name up front, so this is unreachable from the
	// public entry point.
	return 0, methods.CheckReplicateSummaryMethod(summaryMethod)
}

package distcompare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DegenerateControlError reports a control distribution that cannot fit a
// standardization: empty, constant-valued, or carrying non-finite values.
// Standardizing against such a control would only produce NaN or infinite
// scores, so the failure surfaces here instead.
type DegenerateControlError struct {
	Reason string
}

func (e *DegenerateControlError) Error() string {
	return fmt.Sprintf("cannot standardize against control distribution: %s", e.Reason)
}

// StandardScaler standardizes samples against the mean and scale of a
// reference distribution: fit on the control, then transform the target.
// The scale is the population standard deviation of the control.
type StandardScaler struct {
	Mean  float64
	Scale float64
}

// Fit computes the mean and scale of the control distribution. It fails with
// a DegenerateControlError when the control is empty or its scale comes out
// zero or non-finite.
func (s *StandardScaler) Fit(control []float64) error {
	if len(control) == 0 {
		return &DegenerateControlError{Reason: "the control distribution is empty"}
	}

	mean := stat.Mean(control, nil)
	scale := stat.PopStdDev(control, nil)

	if scale == 0 {
		return &DegenerateControlError{Reason: "the control distribution has zero variance"}
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return &DegenerateControlError{Reason: "the control distribution contains non-finite values"}
	}

	s.Mean = mean
	s.Scale = scale

	return nil
}

// Transform returns one standardized score per element of target, using the
// fitted mean and scale.
func (s *StandardScaler) Transform(target []float64) []float64 {
	scores := make([]float64, len(target))
	for i, v := range target {
		scores[i] = (v - s.Mean) / s.Scale
	}

	return scores
}

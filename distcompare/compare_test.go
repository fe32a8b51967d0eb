package distcompare

import (
	"errors"
	"math"
	"testing"

	"github.com/cytomining/profeval/methods"
)

const tolerance = 1e-9

// control has mean 3 and population standard deviation sqrt(2).
var control = []float64{1, 2, 3, 4, 5}

func TestCompareZScore(t *testing.T) {
	sqrt2 := math.Sqrt(2)

	for _, v := range []struct {
		target  []float64
		summary string
		want    float64
	}{
		// A target at the control mean scores zero.
		{[]float64{3}, methods.SummaryMean, 0},
		{[]float64{5}, methods.SummaryMean, 2 / sqrt2},
		{[]float64{1}, methods.SummaryMean, -2 / sqrt2},
		// Scores are [-sqrt2, 0, sqrt2, sqrt2]: mean and median disagree.
		{[]float64{1, 3, 5, 5}, methods.SummaryMean, sqrt2 / 4},
		{[]float64{1, 3, 5, 5}, methods.SummaryMedian, sqrt2 / 2},
		// Odd count: the median is the middle score.
		{[]float64{1, 3, 5}, methods.SummaryMedian, 0},
	} {
		got, err := Compare(v.target, control, methods.CompareZScore, v.summary)
		if err != nil {
			t.Fatalf("Compare(%v, control, zscore, %s): %v", v.target, v.summary, err)
		}
		if math.Abs(got-v.want) > tolerance {
			t.Errorf("Compare(%v, control, zscore, %s) = %.12f, want %.12f", v.target, v.summary, got, v.want)
		}
	}
}

func TestCompareIsDeterministic(t *testing.T) {
	target := []float64{0.4, 2.2, 4.9}

	first, err := Compare(target, control, methods.CompareZScore, methods.SummaryMean)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compare(target, control, methods.CompareZScore, methods.SummaryMean)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("repeated comparison differs: %v vs %v", first, second)
	}
}

func TestCompareUnsupportedMethods(t *testing.T) {
	target := []float64{1}

	if _, err := Compare(target, control, "bogus", methods.SummaryMean); err == nil {
		t.Error("expected an error for an unsupported comparison method")
	} else {
		var unsupported *methods.UnsupportedMethodError
		if !errors.As(err, &unsupported) {
			t.Errorf("comparison method: expected an UnsupportedMethodError, got %T", err)
		}
	}

	if _, err := Compare(target, control, methods.CompareZScore, "bogus"); err == nil {
		t.Error("expected an error for an unsupported summary method")
	} else {
		var unsupported *methods.UnsupportedMethodError
		if !errors.As(err, &unsupported) {
			t.Errorf("summary method: expected an UnsupportedMethodError, got %T", err)
		}
	}
}

func TestCompareDegenerateControl(t *testing.T) {
	for _, degenerate := range [][]float64{
		{0, 0, 0, 0},
		{},
		nil,
	} {
		_, err := Compare([]float64{1}, degenerate, methods.CompareZScore, methods.SummaryMean)
		if err == nil {
			t.Fatalf("control %v: expected a degeneracy error", degenerate)
		}

		var degErr *DegenerateControlError
		if !errors.As(err, &degErr) {
			t.Errorf("control %v: expected a DegenerateControlError, got %T: %v", degenerate, err, err)
		}
	}
}

func TestCompareEmptyTarget(t *testing.T) {
	if _, err := Compare(nil, control, methods.CompareZScore, methods.SummaryMean); err == nil {
		t.Error("expected an error summarizing an empty target")
	}
}

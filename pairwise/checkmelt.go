package pairwise

import (
	"fmt"

	"github.com/carbocation/pfx"

	"github.com/cytomining/profeval/methods"
)

// MeltShapeError reports a melted table whose pair-index sums do not match
// the shape the eval metric requires.
type MeltShapeError struct {
	Metric    string
	WantShape string
}

func (e *MeltShapeError) Error() string {
	return fmt.Sprintf("melted table does not have the %s shape that %s requires", e.WantShape, e.Metric)
}

// CheckMelt confirms that the melted table has the shape the given eval
// metric expects. Replicate reproducibility melts only the upper triangle of
// the similarity matrix, so the two pair-index columns must sum differently;
// precision_recall, grit, and hitk melt the full matrix, where the sums come
// out equal. The remaining metrics place no constraint on the melt shape.
// Getting this wrong upstream silently corrupts results, so it is checked
// here before any metric is computed.
func CheckMelt(t *Table, evalMetric string) error {
	if err := methods.CheckEvalMetric(evalMetric); err != nil {
		return err
	}

	sides := PairIDs()

	var sums [2]float64
	for i, side := range sides {
		indices, err := t.Floats(side.IndexColumn)
		if err != nil {
			return pfx.Err(err)
		}

		for _, v := range indices {
			sums[i] += v
		}
	}

	switch evalMetric {
	case methods.MetricReplicateReproducibility:
		if sums[0] == sums[1] {
			return &MeltShapeError{Metric: evalMetric, WantShape: "upper-triangle"}
		}
	case methods.MetricPrecisionRecall, methods.MetricGrit, methods.MetricHitK:
		if sums[0] != sums[1] {
			return &MeltShapeError{Metric: evalMetric, WantShape: "full-matrix"}
		}
	}

	return nil
}

// UpperTriangle returns a rows-by-cols mask that is true strictly above the
// main diagonal, used to melt only one copy of each unordered pair out of a
// symmetric similarity matrix.
func UpperTriangle(rows, cols int) [][]bool {
	mask := make([][]bool, rows)
	for i := range mask {
		mask[i] = make([]bool, cols)
		for j := i + 1; j < cols; j++ {
			mask[i][j] = true
		}
	}

	return mask
}

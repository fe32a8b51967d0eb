package replicate

import (
	"errors"
	"fmt"

	"github.com/cytomining/profeval/methods"
)

// GritGroups configures replicate grouping for the grit metric, which needs
// both the column identifying each profile and the column identifying its
// replicate group, rather than a flat column list.
type GritGroups struct {
	ProfileCol        string
	ReplicateGroupCol string
}

// Validate confirms both columns are named.
func (g GritGroups) Validate() error {
	if g.ProfileCol == "" {
		return errors.New("grit replicate groups must name a profile column")
	}
	if g.ReplicateGroupCol == "" {
		return errors.New("grit replicate groups must name a replicate group column")
	}

	return nil
}

// ValidateGroups checks that a flat replicate-group column list is the right
// shape for the given eval metric. Grit is configured with a GritGroups
// value instead, and mp_value takes exactly one column.
func ValidateGroups(evalMetric string, replicateGroups []string) error {
	if err := methods.CheckEvalMetric(evalMetric); err != nil {
		return err
	}

	switch evalMetric {
	case methods.MetricGrit:
		return errors.New("grit takes a GritGroups value, not a column list")
	case methods.MetricMPValue:
		if len(replicateGroups) != 1 {
			return fmt.Errorf("mp_value takes exactly one replicate group column, got %d", len(replicateGroups))
		}
	default:
		if len(replicateGroups) == 0 {
			return fmt.Errorf("%s requires at least one replicate group column", evalMetric)
		}
	}

	return nil
}

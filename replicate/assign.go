// Package replicate labels which rows of a melted pairwise similarity table
// compare replicate profiles. A pair is a replicate with respect to one
// metadata grouping when both sides of the row carry the same value for that
// field, and a full replicate when that holds for every requested grouping.
package replicate

import (
	"errors"

	"github.com/carbocation/pfx"

	"github.com/cytomining/profeval/pairwise"
)

// GroupReplicateColumn is the name of the combined label column appended by
// AssignReplicates.
const GroupReplicateColumn = "group_replicate"

const replicateSuffix = "_replicate"

// ReplicateColumn returns the name of the per-group label column that
// AssignReplicates appends for the given replicate group.
func ReplicateColumn(group string) string {
	return group + replicateSuffix
}

// AssignReplicates determines which rows of melt compare replicate profiles.
//
// For each replicate group g it appends a bool column ReplicateColumn(g) that
// is true exactly where the two pair-side values of g are equal, then appends
// GroupReplicateColumn, true only where every per-group column is true. The
// result is a fresh table; melt is never modified and the two share no
// backing arrays. Row count and row order are unchanged.
//
// Every group must have both pair-side columns present in melt. If any is
// missing, AssignReplicates fails with a SchemaError before building
// anything, so a partially extended table can never escape.
func AssignReplicates(melt *pairwise.Table, replicateGroups []string) (*pairwise.Table, error) {
	if melt == nil {
		return nil, errors.New("melted table is required")
	}
	if len(replicateGroups) == 0 {
		return nil, errors.New("at least one replicate group is required")
	}

	sides := pairwise.PairIDs()

	for _, group := range replicateGroups {
		for _, side := range sides {
			if col := side.ColumnName(group); !melt.Has(col) {
				return nil, &SchemaError{Group: group, Column: col}
			}
		}
	}

	out := melt.Clone()

	labelCols := make([]string, 0, len(replicateGroups))
	for _, group := range replicateGroups {
		equal, err := out.ColumnsEqual(sides[0].ColumnName(group), sides[1].ColumnName(group))
		if err != nil {
			return nil, pfx.Err(err)
		}

		name := ReplicateColumn(group)
		if err := out.AddBools(name, equal); err != nil {
			return nil, pfx.Err(err)
		}

		labelCols = append(labelCols, name)
	}

	// A row is a full replicate only if it matched on every requested
	// grouping: an explicit AND, not a numeric minimum.
	combined := make([]bool, out.Len())
	for i := range combined {
		combined[i] = true
	}

	for _, name := range labelCols {
		flags, err := out.Bools(name)
		if err != nil {
			return nil, pfx.Err(err)
		}

		for i, ok := range flags {
			if !ok {
				combined[i] = false
			}
		}
	}

	if err := out.AddBools(GroupReplicateColumn, combined); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

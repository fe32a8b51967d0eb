// Package pairwise holds the conventions and the column-typed container for
// melted pairwise similarity tables. The melt step takes a profile-by-profile
// similarity matrix and elongates it to one row per pair of profiles; each
// metadata field appears twice per row, once per pair side, under a suffixed
// column name. Everything downstream locates those columns through the
// PairIDs convention rather than hardcoding names.
package pairwise

// PairID describes one side of a melted pairwise row: the label of the side,
// the column holding that side's original row index from the similarity
// matrix, and the suffix appended to metadata field names for that side.
type PairID struct {
	Label       string
	IndexColumn string
	Suffix      string
}

// ColumnName returns the melted column name carrying this side's value for
// the given metadata field.
func (p PairID) ColumnName(field string) string {
	return field + p.Suffix
}

// PairIDs returns the two pair sides in the fixed order the melt step uses
// when constructing column names. The order is deterministic: pair_a then
// pair_b, always.
func PairIDs() [2]PairID {
	return [2]PairID{
		{Label: "pair_a", IndexColumn: "pair_a_index", Suffix: "_pair_a"},
		{Label: "pair_b", IndexColumn: "pair_b_index", Suffix: "_pair_b"},
	}
}

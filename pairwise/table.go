package pairwise

import (
	"fmt"
	"strconv"
)

// Kind identifies the value type held by a Table column.
type Kind int

const (
	KindString Kind = iota
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	}

	return "invalid"
}

type column struct {
	kind  Kind
	strs  []string
	nums  []float64
	flags []bool
}

func (c *column) clone() *column {
	out := &column{kind: c.kind}

	switch c.kind {
	case KindString:
		out.strs = append([]string{}, c.strs...)
	case KindFloat:
		out.nums = append([]float64{}, c.nums...)
	case KindBool:
		out.flags = append([]bool{}, c.flags...)
	}

	return out
}

// Table is a fixed-length collection of typed, named columns. Column names
// keep their insertion order and rows keep the order the melt step emitted
// them in; nothing in this package ever reorders or drops rows. All values
// are copied on the way in and on the way out, so a Table never shares
// backing arrays with its callers.
type Table struct {
	n     int
	names []string
	cols  map[string]*column
}

// NewTable returns an empty table that will hold columns of the given row
// count.
func NewTable(rows int) *Table {
	return &Table{
		n:    rows,
		cols: make(map[string]*column),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.n
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	return append([]string{}, t.names...)
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Kind returns the value type of the named column. The second return is
// false if the column does not exist.
func (t *Table) Kind(name string) (Kind, bool) {
	col, ok := t.cols[name]
	if !ok {
		return KindString, false
	}

	return col.kind, true
}

func (t *Table) add(name string, col *column, valueCount int) error {
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}

	if valueCount != t.n {
		return fmt.Errorf("column %q has %d values but the table has %d rows", name, valueCount, t.n)
	}

	t.names = append(t.names, name)
	t.cols[name] = col

	return nil
}

// AddStrings appends a string column. The values are copied.
func (t *Table) AddStrings(name string, values []string) error {
	return t.add(name, &column{kind: KindString, strs: append([]string{}, values...)}, len(values))
}

// AddFloats appends a float column. The values are copied.
func (t *Table) AddFloats(name string, values []float64) error {
	return t.add(name, &column{kind: KindFloat, nums: append([]float64{}, values...)}, len(values))
}

// AddBools appends a bool column. The values are copied.
func (t *Table) AddBools(name string, values []bool) error {
	return t.add(name, &column{kind: KindBool, flags: append([]bool{}, values...)}, len(values))
}

func (t *Table) lookup(name string, kind Kind) (*column, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}

	if col.kind != kind {
		return nil, fmt.Errorf("column %q holds %s values, not %s", name, col.kind, kind)
	}

	return col, nil
}

// Strings returns a copy of the named string column.
func (t *Table) Strings(name string) ([]string, error) {
	col, err := t.lookup(name, KindString)
	if err != nil {
		return nil, err
	}

	return append([]string{}, col.strs...), nil
}

// Floats returns a copy of the named float column.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.lookup(name, KindFloat)
	if err != nil {
		return nil, err
	}

	return append([]float64{}, col.nums...), nil
}

// Bools returns a copy of the named bool column.
func (t *Table) Bools(name string) ([]bool, error) {
	col, err := t.lookup(name, KindBool)
	if err != nil {
		return nil, err
	}

	return append([]bool{}, col.flags...), nil
}

// ColumnsEqual compares two columns of the same kind element by element and
// returns one bool per row. Equality is exact; these are expected to be
// categorical metadata columns, so there is no numeric tolerance.
func (t *Table) ColumnsEqual(a, b string) ([]bool, error) {
	colA, ok := t.cols[a]
	if !ok {
		return nil, fmt.Errorf("column %q not found", a)
	}

	colB, ok := t.cols[b]
	if !ok {
		return nil, fmt.Errorf("column %q not found", b)
	}

	if colA.kind != colB.kind {
		return nil, fmt.Errorf("cannot compare column %q (%s) with column %q (%s)", a, colA.kind, b, colB.kind)
	}

	out := make([]bool, t.n)
	switch colA.kind {
	case KindString:
		for i := range out {
			out[i] = colA.strs[i] == colB.strs[i]
		}
	case KindFloat:
		for i := range out {
			out[i] = colA.nums[i] == colB.nums[i]
		}
	case KindBool:
		for i := range out {
			out[i] = colA.flags[i] == colB.flags[i]
		}
	}

	return out, nil
}

// ParseFloats returns a copy of the table with the named string columns
// re-parsed as float columns, leaving the receiver untouched. A value that
// does not parse fails the whole conversion and names the offending column.
func (t *Table) ParseFloats(names ...string) (*Table, error) {
	out := t.Clone()

	for _, name := range names {
		col, err := out.lookup(name, KindString)
		if err != nil {
			return nil, err
		}

		nums := make([]float64, len(col.strs))
		for i, s := range col.strs {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q cannot be converted to float: row %d holds %q", name, i, s)
			}
			nums[i] = v
		}

		out.cols[name] = &column{kind: KindFloat, nums: nums}
	}

	return out, nil
}

// Clone returns a deep copy sharing no backing arrays with the receiver.
func (t *Table) Clone() *Table {
	out := &Table{
		n:     t.n,
		names: append([]string{}, t.names...),
		cols:  make(map[string]*column, len(t.cols)),
	}

	for name, col := range t.cols {
		out.cols[name] = col.clone()
	}

	return out
}

package replicate

import "fmt"

// SchemaError reports a replicate group whose pair-side column is absent
// from the melted table. It always means the table was constructed from a
// profile set that never carried the field, or the group name is misspelled.
type SchemaError struct {
	Group  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("replicate group %q: column %q not found in the melted table", e.Group, e.Column)
}

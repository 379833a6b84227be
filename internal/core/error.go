package core

import "fmt"

// MalformedInputError reports a record with a missing or empty required
// field. It aborts the load; no partial document is produced.
type MalformedInputError struct {
	Collection Collection
	Index      int
	Field      string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s[%d]: missing or empty %q", e.Collection, e.Index, e.Field)
}

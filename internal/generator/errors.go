package generator

import "fmt"

// ProposeError indicates the external generator failed to produce a usable
// rewrite for an entry.
type ProposeError struct {
	EntryID string
	Message string
	Cause   error
}

func (e *ProposeError) Error() string {
	prefix := "propose failed"
	if e.EntryID != "" {
		prefix = fmt.Sprintf("propose failed for entry %s", e.EntryID)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ProposeError) Unwrap() error {
	return e.Cause
}

// Package extraction parses job-description text into a normalized,
// weighted requirement set.
package extraction

import "fmt"

// EmptyInputError indicates the job-description text was empty or contained
// no recognizable content after normalization. Surfaced to the caller
// instead of silently scoring as zero.
type EmptyInputError struct {
	Message string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s", e.Message)
}

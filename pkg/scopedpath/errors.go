package scopedpath

import (
	"fmt"
	"strings"
)

// RemoveError represents a failed explicit removal.
type RemoveError struct {
	Path string
	Err  error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("failed to remove %s: %v", e.Path, e.Err)
}

func (e *RemoveError) Unwrap() error {
	return e.Err
}

// SweepError aggregates the removal failures from a sweep. Paths that removed
// cleanly are not represented; a sweep either returns nil or a *SweepError
// holding one error per failed path.
type SweepError struct {
	Errors []error
}

func (e *SweepError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("sweep failed for %d path(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *SweepError) Unwrap() []error {
	return e.Errors
}

package search

import "fmt"

// EmptyQueryError signals a query that is empty after trimming. The caller
// should prompt the user for a query; no lookup was performed.
type EmptyQueryError struct{}

func (e *EmptyQueryError) Error() string {
	return "search query is empty"
}

// NoMatchError signals that no probe, textual or numeric, yielded results.
type NoMatchError struct {
	Term string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no listings matched %q", e.Term)
}

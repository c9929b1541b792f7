package qlog

import (
	"errors"
	"fmt"
)

// Misuse errors. These indicate an integration bug in the caller, not bad
// trace data, and callers should treat them as fatal.
var (
	// ErrNoParser is returned by ParseEvent and BuildIndex when no parser
	// has been attached to the trace.
	ErrNoParser = errors.New("qlog: no parser attached to trace")

	// ErrParserNotInitialized is returned by a Parser's Load when Init was
	// never called. Attaching a parser through Trace.SetParser initializes
	// it; constructing a parser and calling Load directly does not.
	ErrParserNotInitialized = errors.New("qlog: parser not initialized")
)

// DataError reports a single raw event that could not be resolved to a
// normalized view — typically a missing or non-string category or name.
// Data errors are per-event and recoverable: an index build skips the
// offending event and carries on.
type DataError struct {
	Field  string // declared field that failed to resolve
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("qlog: unresolvable event: field %q: %s", e.Field, e.Reason)
}

// Diagnostic records one event skipped during an index build, by its
// position in the trace's event sequence.
type Diagnostic struct {
	EventIndex int
	Err        error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("event %d: %v", d.EventIndex, d.Err)
}

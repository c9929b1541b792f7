package qlog

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/FFhix10/qvis/internal/metrics"
)

// Trace is one captured sequence of events from a single observation point.
// It owns the raw event sequence, the attached parser, the category/type
// index and the trace-level metadata, and holds a non-owning back-reference
// to the group it belongs to.
//
// A Trace is safe for concurrent use. The index follows a build-once,
// read-many discipline: at most one build runs per trace, and replacing the
// event sequence excludes concurrent builders and readers.
type Trace struct {
	mu sync.RWMutex

	id          string
	parent      *TraceGroup
	title       string
	description string
	vantage     VantagePoint
	config      Configuration

	fields []string
	common map[string]any
	events []RawEvent

	parser Parser
	table  *lookupTable
}

// NewTrace creates a trace and, when parent is non-nil, registers it with
// the parent group.
func NewTrace(parent *TraceGroup, opts ...TraceOption) *Trace {
	t := &Trace{
		id:     uuid.NewString(),
		parent: parent,
		common: map[string]any{},
		table:  newLookupTable(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if parent != nil {
		parent.AddConnection(t)
	}
	return t
}

// ID returns the trace's unique identifier.
func (t *Trace) ID() string { return t.id }

// Parent returns the owning group, or nil for a detached trace.
func (t *Trace) Parent() *TraceGroup { return t.parent }

func (t *Trace) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

func (t *Trace) SetTitle(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.title = title
}

func (t *Trace) Description() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.description
}

func (t *Trace) SetDescription(desc string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.description = desc
}

// VantagePoint returns who captured the trace.
func (t *Trace) VantagePoint() VantagePoint {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.vantage
}

// Configuration returns the trace's time-unit and provenance settings.
func (t *Trace) Configuration() Configuration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.config
}

// Fields returns the field-name declaration currently in effect.
func (t *Trace) Fields() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fields
}

// CommonFields returns the default values applied when a raw event omits a
// declared field.
func (t *Trace) CommonFields() map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.common
}

// SetEvents replaces the raw event sequence wholesale. The category/type
// index is derived from the sequence and becomes stale, so a fresh empty
// index is swapped in; the next BuildIndex rebuilds it.
func (t *Trace) SetEvents(events []RawEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = events
	t.table = newLookupTable()
}

// Events returns the live event sequence. Reference semantics: callers must
// replace events through SetEvents, not mutate the returned slice, or the
// index silently desynchronizes.
func (t *Trace) Events() []RawEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.events
}

// SetParser attaches a parser and initializes it against this trace's field
// declaration and common defaults. Re-attaching a parser invalidates any
// built index: a different parser may resolve category and type differently
// for the same raw events, and stale buckets are worse than a rebuild.
func (t *Trace) SetParser(p Parser) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := p.Init(t.fields, t.common); err != nil {
		return err
	}
	if t.parser != nil && t.parser != p {
		t.table = newLookupTable()
	}
	t.parser = p
	return nil
}

// Parser returns the attached parser, or nil before SetParser.
func (t *Trace) Parser() Parser {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.parser
}

// ParseEvent produces the normalized view of one raw event by delegating to
// the attached parser. Calling it before SetParser is an integration bug
// and fails with ErrNoParser.
func (t *Trace) ParseEvent(ev RawEvent) (ParsedEvent, error) {
	t.mu.RLock()
	p := t.parser
	t.mu.RUnlock()
	if p == nil {
		return ParsedEvent{}, ErrNoParser
	}
	return p.Load(ev)
}

// BuildIndex populates the category/type index in one pass over the event
// sequence. It is idempotent: once the index holds at least one category,
// further calls are no-ops. Events the parser cannot resolve are skipped
// and reported back as diagnostics rather than aborting the build; a nil
// error with a non-empty diagnostics list means a partial but usable index.
//
// Calling BuildIndex before a parser is attached fails with ErrNoParser.
func (t *Trace) BuildIndex() ([]Diagnostic, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.parser == nil {
		return nil, ErrNoParser
	}
	if t.table.built() {
		return nil, nil
	}

	var diags []Diagnostic
	indexed := 0
	for i, ev := range t.events {
		pe, err := t.parser.Load(ev)
		if err != nil {
			var de *DataError
			if errors.As(err, &de) {
				diags = append(diags, Diagnostic{EventIndex: i, Err: err})
				continue
			}
			// Not a data error: the parser itself is broken or was never
			// initialized. Fail the build.
			return nil, err
		}
		t.table.add(pe.Category, pe.Name, ev)
		indexed++
	}

	metrics.IndexBuilds.Inc()
	metrics.EventsIndexed.Add(float64(indexed))
	metrics.ParseFailures.Add(float64(len(diags)))
	return diags, nil
}

// Lookup returns the events of the given category and type, in original
// trace order. Unknown keys yield an empty result, never an error. Lookup
// never builds: querying before BuildIndex returns empty results for every
// key.
func (t *Trace) Lookup(category, eventType string) []RawEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.lookup(category, eventType)
}

// IndexCounts returns the number of indexed events per category and type.
// Empty until BuildIndex has run.
func (t *Trace) IndexCounts() map[string]map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.counts()
}

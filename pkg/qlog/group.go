package qlog

import (
	"sync"

	"github.com/google/uuid"
)

// TraceGroup owns an ordered collection of traces that belong to one
// capture — typically the two vantage points of a single connection, or a
// set of auxiliary views cloned from one trace.
type TraceGroup struct {
	mu sync.RWMutex

	id          string
	title       string
	description string
	traces      []*Trace
}

// NewTraceGroup creates an empty group.
func NewTraceGroup(title string) *TraceGroup {
	return &TraceGroup{id: uuid.NewString(), title: title}
}

// ID returns the group's unique identifier.
func (g *TraceGroup) ID() string { return g.id }

func (g *TraceGroup) Title() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.title
}

func (g *TraceGroup) Description() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.description
}

func (g *TraceGroup) SetDescription(desc string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.description = desc
}

// AddConnection registers a trace with this group. NewTrace and Clone call
// it for traces constructed under a parent; it is exported for hosts that
// build traces detached and adopt them later.
func (g *TraceGroup) AddConnection(t *Trace) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.traces = append(g.traces, t)
}

// Traces returns the group's traces in registration order.
func (g *TraceGroup) Traces() []*Trace {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Trace, len(g.traces))
	copy(out, g.traces)
	return out
}

package qlog

import "testing"

func TestNewTraceRegistersWithParent(t *testing.T) {
	group := NewTraceGroup("capture")
	first := NewTrace(group, WithTitle("client"))
	second := NewTrace(group, WithTitle("server"))

	traces := group.Traces()
	if len(traces) != 2 {
		t.Fatalf("group holds %d traces, want 2", len(traces))
	}
	if traces[0] != first || traces[1] != second {
		t.Error("traces not in registration order")
	}
	if first.Parent() != group {
		t.Error("trace missing back-reference to parent")
	}
}

func TestDetachedTrace(t *testing.T) {
	tr := NewTrace(nil, WithTitle("scratch"))
	if tr.Parent() != nil {
		t.Errorf("detached trace has parent %v", tr.Parent())
	}
}

func TestAddConnectionAdopts(t *testing.T) {
	group := NewTraceGroup("capture")
	tr := NewTrace(nil)
	group.AddConnection(tr)
	if len(group.Traces()) != 1 {
		t.Fatalf("group holds %d traces, want 1", len(group.Traces()))
	}
}

func TestGroupIdentity(t *testing.T) {
	a := NewTraceGroup("a")
	b := NewTraceGroup("b")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("group IDs not unique: %q vs %q", a.ID(), b.ID())
	}
	if a.Title() != "a" {
		t.Errorf("Title() = %q", a.Title())
	}
	a.SetDescription("two vantage points")
	if a.Description() != "two vantage points" {
		t.Errorf("Description() = %q", a.Description())
	}
}

package qlog

import (
	"reflect"
	"testing"
)

func clonableTrace(t *testing.T, group *TraceGroup) *Trace {
	t.Helper()
	events := []RawEvent{
		{0, "transport", "packet_sent", map[string]any{"header": map[string]any{"packet_number": 1.0}}},
		{1, "transport", "packet_received", []any{"a", "b"}},
	}
	tr := NewTrace(group,
		WithTitle("original"),
		WithDescription("client capture"),
		WithVantagePoint(VantagePoint{Name: "cli", Type: "client"}),
		WithConfiguration(Configuration{TimeUnits: "us", OriginalURIs: []string{"https://example.org/trace"}}),
		WithFields([]string{"time", "category", "name", "data"}, map[string]any{"protocol_type": "QUIC"}),
		WithEvents(events),
	)
	if err := tr.SetParser(NewPositionalParser()); err != nil {
		t.Fatalf("SetParser() error: %v", err)
	}
	return tr
}

func TestCloneCopiesEventsDeeply(t *testing.T) {
	tr := clonableTrace(t, nil)
	clone := tr.Clone()

	if !reflect.DeepEqual(clone.Events(), tr.Events()) {
		t.Fatal("clone events not element-wise equal to original")
	}

	// Mutating payload inside the clone must not reach the original.
	header := clone.Events()[0][3].(map[string]any)["header"].(map[string]any)
	header["packet_number"] = 999.0
	origHeader := tr.Events()[0][3].(map[string]any)["header"].(map[string]any)
	if origHeader["packet_number"] != 1.0 {
		t.Error("clone shares payload structure with the original")
	}

	// Wholesale replacement on the clone leaves the original untouched.
	clone.SetEvents(nil)
	if len(tr.Events()) != 2 {
		t.Errorf("original lost events after clone.SetEvents: %d", len(tr.Events()))
	}
}

func TestCloneCopiesMetadata(t *testing.T) {
	tr := clonableTrace(t, nil)
	clone := tr.Clone()

	if clone.Title() != tr.Title() || clone.Description() != tr.Description() {
		t.Errorf("clone metadata = %q / %q", clone.Title(), clone.Description())
	}
	if clone.VantagePoint() != tr.VantagePoint() {
		t.Errorf("clone vantage point = %+v", clone.VantagePoint())
	}
	if clone.ID() == tr.ID() {
		t.Error("clone shares the original's ID")
	}

	clone.SetTitle("auxiliary view")
	if tr.Title() != "original" {
		t.Error("renaming the clone renamed the original")
	}

	cfg := clone.Configuration()
	cfg.OriginalURIs[0] = "https://example.org/other"
	if tr.Configuration().OriginalURIs[0] != "https://example.org/trace" {
		t.Error("clone shares configuration URI slice with the original")
	}
}

func TestCloneAliasesParser(t *testing.T) {
	tr := clonableTrace(t, nil)
	clone := tr.Clone()

	if clone.Parser() != tr.Parser() {
		t.Error("clone did not alias the parser")
	}
}

func TestCloneIndexStartsEmpty(t *testing.T) {
	tr := clonableTrace(t, nil)
	if _, err := tr.BuildIndex(); err != nil {
		t.Fatalf("BuildIndex() error: %v", err)
	}
	if len(tr.Lookup("transport", "packet_sent")) != 1 {
		t.Fatal("original index not built")
	}

	clone := tr.Clone()
	if got := clone.Lookup("transport", "packet_sent"); len(got) != 0 {
		t.Errorf("clone lookup before build = %v, want empty", got)
	}
	if len(clone.IndexCounts()) != 0 {
		t.Error("clone inherited the original's index")
	}

	// The clone rebuilds independently.
	if _, err := clone.BuildIndex(); err != nil {
		t.Fatalf("clone BuildIndex() error: %v", err)
	}
	if got := clone.Lookup("transport", "packet_received"); len(got) != 1 {
		t.Errorf("clone lookup after build = %d events, want 1", len(got))
	}
}

func TestCloneRegistersUnderSameParent(t *testing.T) {
	group := NewTraceGroup("capture")
	tr := clonableTrace(t, group)

	clone := tr.Clone()
	if clone.Parent() != group {
		t.Fatal("clone has a different parent")
	}
	traces := group.Traces()
	if len(traces) != 2 || traces[0] != tr || traces[1] != clone {
		t.Errorf("group traces = %v", traces)
	}
}

func TestCopyValueScalars(t *testing.T) {
	for _, v := range []any{nil, "s", 1.5, true, 7} {
		if got := copyValue(v); got != v {
			t.Errorf("copyValue(%v) = %v", v, got)
		}
	}
}

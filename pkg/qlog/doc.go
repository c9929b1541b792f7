// Package qlog models captured event traces and provides fast
// category/type lookup over them.
//
// A trace holds positionally-encoded events whose field layout is declared
// per trace, not fixed: a pluggable Parser resolves each raw record into a
// normalized view. A one-time O(n) pass builds a two-level index keyed by
// category then event type, after which lookups are O(1).
//
// Quick start:
//
//	group := qlog.NewTraceGroup("session")
//	trace := qlog.NewTrace(group,
//	    qlog.WithFields([]string{"time", "category", "name", "data"}, nil),
//	    qlog.WithEvents(events),
//	)
//	if err := trace.SetParser(qlog.NewPositionalParser()); err != nil {
//	    log.Fatal(err)
//	}
//	diags, err := trace.BuildIndex()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sent := trace.Lookup("transport", "packet_sent")
//
// Traces are safe for concurrent use once built. See the README for the
// full model.
package qlog

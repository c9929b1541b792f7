package qlog

// RawEvent is a positionally-encoded event record: an ordered sequence of
// untyped field values. The meaning of each position is defined by the
// owning trace's field declaration, not by the record itself, so two raw
// events in the same trace may legally have different lengths when the
// capture format changed mid-trace.
type RawEvent []any

// ParsedEvent is the normalized read-only projection of one RawEvent,
// produced on demand by a Parser. It is recomputed per access — a cheap
// positional lookup — and never persisted.
type ParsedEvent struct {
	Time     float64 // relative timestamp, in the trace's configured units
	Category string  // top-level classification, e.g. "transport"
	Name     string  // event type within the category, e.g. "packet_sent"
	Data     any     // opaque payload, shape owned by the capture format
	Extra    []any   // positional values beyond the declared field list
}

// VantagePoint describes the role and location from which a trace was
// captured.
type VantagePoint struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"` // "client", "server" or "network"
}

// Configuration carries trace-level time semantics and provenance,
// pre-parsed from the capture format's schema and passed in as-is.
type Configuration struct {
	TimeUnits    string   `json:"time_units,omitempty"` // "ms" or "us"
	TimeOffset   float64  `json:"time_offset,omitempty"`
	OriginalURIs []string `json:"original_uris,omitempty"`
}

package qlog

// TraceOption configures a Trace at construction time.
type TraceOption func(*Trace)

// WithTitle sets the trace title.
func WithTitle(title string) TraceOption {
	return func(t *Trace) {
		t.title = title
	}
}

// WithDescription sets the trace description.
func WithDescription(desc string) TraceOption {
	return func(t *Trace) {
		t.description = desc
	}
}

// WithVantagePoint sets who captured the trace.
func WithVantagePoint(vp VantagePoint) TraceOption {
	return func(t *Trace) {
		t.vantage = vp
	}
}

// WithConfiguration sets the trace's time-unit and provenance settings.
func WithConfiguration(cfg Configuration) TraceOption {
	return func(t *Trace) {
		t.config = cfg
	}
}

// WithFields sets the positional field declaration and the common-field
// defaults applied when a raw event omits a declared field. common may be
// nil.
func WithFields(fields []string, common map[string]any) TraceOption {
	return func(t *Trace) {
		t.fields = fields
		if common != nil {
			t.common = common
		}
	}
}

// WithEvents sets the initial raw event sequence.
func WithEvents(events []RawEvent) TraceOption {
	return func(t *Trace) {
		t.events = events
	}
}

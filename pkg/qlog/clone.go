package qlog

// Clone produces a new trace under the same parent with an independently
// owned structural copy of the metadata and the raw event sequence. The
// parser is aliased, not copied — parsers are stateless after Init and
// bound to the same declarations. The index is not copied: the clone starts
// empty and rebuilds lazily on its first BuildIndex.
//
// Clone walks the entire event payload and is O(total data size). Keep it
// out of hot paths.
func (t *Trace) Clone() *Trace {
	t.mu.RLock()
	defer t.mu.RUnlock()

	clone := NewTrace(t.parent,
		WithTitle(t.title),
		WithDescription(t.description),
		WithVantagePoint(t.vantage),
		WithConfiguration(copyConfiguration(t.config)),
		WithFields(copyStrings(t.fields), copyValueMap(t.common)),
		WithEvents(copyEvents(t.events)),
	)
	clone.parser = t.parser
	return clone
}

func copyConfiguration(cfg Configuration) Configuration {
	out := cfg
	out.OriginalURIs = copyStrings(cfg.OriginalURIs)
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyEvents(in []RawEvent) []RawEvent {
	if in == nil {
		return nil
	}
	out := make([]RawEvent, len(in))
	for i, ev := range in {
		fields := make([]any, len(ev))
		for j, v := range ev {
			fields[j] = copyValue(v)
		}
		out[i] = fields
	}
	return out
}

func copyValueMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

// copyValue deep-copies the value shapes a decoded document produces:
// nested maps, nested slices and scalars. Scalars are immutable and pass
// through.
func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyValueMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = copyValue(e)
		}
		return out
	case RawEvent:
		out := make(RawEvent, len(val))
		for i, e := range val {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

package qlog

import "golang.org/x/text/unicode/norm"

// lookupTable is the two-level category/type index over a trace's raw
// events. It is derived data: built at most once per trace from a single
// pass over the event sequence, then read many times. A trace swaps in a
// fresh table when its events are replaced wholesale.
type lookupTable struct {
	buckets map[string]map[string][]RawEvent
}

func newLookupTable() *lookupTable {
	return &lookupTable{buckets: make(map[string]map[string][]RawEvent)}
}

// built reports whether the table holds at least one category. This is the
// idempotence guard for builds: a trace with zero events re-runs the (empty)
// build on every request, which is harmless since building only populates.
func (lt *lookupTable) built() bool {
	return len(lt.buckets) > 0
}

// add appends ev to the (category, name) bucket, creating levels as needed.
// Callers add events in trace order, so buckets preserve arrival order.
func (lt *lookupTable) add(category, name string, ev RawEvent) {
	c := indexKey(category)
	byName, ok := lt.buckets[c]
	if !ok {
		byName = make(map[string][]RawEvent)
		lt.buckets[c] = byName
	}
	n := indexKey(name)
	byName[n] = append(byName[n], ev)
}

// lookup returns the bucket for (category, name), or nil when either key is
// unknown. It never builds and never fails.
func (lt *lookupTable) lookup(category, name string) []RawEvent {
	byName, ok := lt.buckets[indexKey(category)]
	if !ok {
		return nil
	}
	return byName[indexKey(name)]
}

// counts returns the bucket sizes per category and type.
func (lt *lookupTable) counts() map[string]map[string]int {
	out := make(map[string]map[string]int, len(lt.buckets))
	for category, byName := range lt.buckets {
		m := make(map[string]int, len(byName))
		for name, evs := range byName {
			m[name] = len(evs)
		}
		out[category] = m
	}
	return out
}

// indexKey canonicalizes a bucket key. Categories and type names come out
// of decoded documents, so visually identical Unicode spellings must land
// in the same bucket.
func indexKey(s string) string {
	return norm.NFC.String(s)
}

package qlog

import (
	"fmt"
	"strconv"
)

// Field names recognized by the positional parser, per slot. Capture
// formats have renamed these between draft versions.
var (
	timeAliases = []string{"time", "timestamp", "relative_time"}
	nameAliases = []string{"name", "event", "event_type", "type"}
)

// PositionalParser is the generic declaration-driven Parser. It resolves
// the timestamp, category, name and data slots from the field declaration
// at Init time and decodes each raw event by position. Format-version
// specific parsers can replace it through the registry; this one makes no
// assumption beyond the declared field order.
type PositionalParser struct {
	fields  []string
	common  map[string]any
	timeIdx int
	catIdx  int
	nameIdx int
	dataIdx int
	ready   bool
}

// NewPositionalParser returns an unbound parser. Attach it with
// Trace.SetParser, which performs the Init.
func NewPositionalParser() *PositionalParser {
	return &PositionalParser{timeIdx: -1, catIdx: -1, nameIdx: -1, dataIdx: -1}
}

// Init binds the parser to a field declaration and common-field defaults.
// The declaration and defaults are copied, so later mutation by the caller
// does not affect decoding.
func (p *PositionalParser) Init(fields []string, common map[string]any) error {
	p.fields = make([]string, len(fields))
	copy(p.fields, fields)

	p.common = make(map[string]any, len(common))
	for k, v := range common {
		p.common[k] = v
	}

	p.timeIdx = indexOfAny(p.fields, timeAliases)
	p.catIdx = indexOfAny(p.fields, []string{"category"})
	p.nameIdx = indexOfAny(p.fields, nameAliases)
	p.dataIdx = indexOfAny(p.fields, []string{"data"})
	p.ready = true
	return nil
}

// Load decodes one raw event against the bound declaration.
func (p *PositionalParser) Load(ev RawEvent) (ParsedEvent, error) {
	if !p.ready {
		return ParsedEvent{}, ErrParserNotInitialized
	}

	category, err := p.stringField(ev, p.catIdx, "category")
	if err != nil {
		return ParsedEvent{}, err
	}
	name, err := p.stringField(ev, p.nameIdx, "name")
	if err != nil {
		return ParsedEvent{}, err
	}

	out := ParsedEvent{
		Time:     toFloat(p.fieldValue(ev, p.timeIdx)),
		Category: category,
		Name:     name,
		Data:     p.fieldValue(ev, p.dataIdx),
	}

	// Values past the declared layout are format drift, not garbage.
	if len(ev) > len(p.fields) {
		out.Extra = ev[len(p.fields):]
	}
	return out, nil
}

// fieldValue returns the positional value at idx, falling back to the
// common-field default when the event is shorter than the declaration.
func (p *PositionalParser) fieldValue(ev RawEvent, idx int) any {
	if idx < 0 {
		return nil
	}
	if idx < len(ev) {
		return ev[idx]
	}
	return p.common[p.fields[idx]]
}

// stringField resolves a required string-valued slot, producing a
// *DataError when the slot is undeclared, absent or not a string.
func (p *PositionalParser) stringField(ev RawEvent, idx int, field string) (string, error) {
	if idx < 0 {
		if s, ok := p.common[field].(string); ok && s != "" {
			return s, nil
		}
		return "", &DataError{Field: field, Reason: "not in field declaration"}
	}
	v := p.fieldValue(ev, idx)
	if v == nil {
		return "", &DataError{Field: field, Reason: "no value and no common default"}
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", &DataError{Field: field, Reason: fmt.Sprintf("expected non-empty string, got %T", v)}
	}
	return s, nil
}

func indexOfAny(fields []string, aliases []string) int {
	for i, f := range fields {
		for _, a := range aliases {
			if f == a {
				return i
			}
		}
	}
	return -1
}

// toFloat coerces the handful of numeric shapes a decoded document can
// produce. Anything else reads as 0 — timestamps are advisory here.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

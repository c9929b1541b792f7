// Package codec decodes serialized qlog-style documents into trace groups.
// It owns the wire shape only; fetching the bytes is the caller's problem.
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/valyala/fastjson"

	"github.com/FFhix10/qvis/internal/metrics"
	"github.com/FFhix10/qvis/pkg/qlog"
)

var pool fastjson.ParserPool

// Decode parses a serialized trace document into a group of traces. The
// payload may be gzip-compressed; compression is detected from the magic
// bytes. Decoded traces come back without a parser attached — callers pick
// one from the registry and attach it per trace.
func Decode(data []byte) (*qlog.TraceGroup, error) {
	if isGzip(data) {
		plain, err := gunzip(data)
		if err != nil {
			return nil, fmt.Errorf("codec: decompress: %w", err)
		}
		data = plain
	}

	p := pool.Get()
	defer pool.Put(p)

	root, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("codec: parse: %w", err)
	}

	group := qlog.NewTraceGroup(string(root.GetStringBytes("title")))
	group.SetDescription(string(root.GetStringBytes("description")))

	traces := root.GetArray("traces")
	if traces == nil {
		return nil, fmt.Errorf("codec: document has no traces array")
	}
	for i, tv := range traces {
		if err := decodeTrace(group, tv); err != nil {
			return nil, fmt.Errorf("codec: trace %d: %w", i, err)
		}
		metrics.TracesDecoded.Inc()
	}
	return group, nil
}

// DecodeReader reads the full payload and decodes it. Documents carry no
// length framing, so streaming decode is not an option.
func DecodeReader(r io.Reader) (*qlog.TraceGroup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read: %w", err)
	}
	return Decode(data)
}

// decodeTrace builds one trace under group from its JSON value.
func decodeTrace(group *qlog.TraceGroup, tv *fastjson.Value) error {
	fieldVals := tv.GetArray("event_fields")
	if fieldVals == nil {
		return fmt.Errorf("missing event_fields")
	}
	fields := make([]string, len(fieldVals))
	for i, fv := range fieldVals {
		fields[i] = string(fv.GetStringBytes())
	}

	var common map[string]any
	if cv := tv.Get("common_fields"); cv != nil {
		m, ok := valueToAny(cv).(map[string]any)
		if !ok {
			return fmt.Errorf("common_fields is not an object")
		}
		common = m
	}

	eventVals := tv.GetArray("events")
	events := make([]qlog.RawEvent, len(eventVals))
	for i, ev := range eventVals {
		arr := ev.GetArray()
		if arr == nil {
			return fmt.Errorf("event %d is not an array", i)
		}
		rec := make(qlog.RawEvent, len(arr))
		for j, fv := range arr {
			rec[j] = valueToAny(fv)
		}
		events[i] = rec
	}

	qlog.NewTrace(group,
		qlog.WithTitle(string(tv.GetStringBytes("title"))),
		qlog.WithDescription(string(tv.GetStringBytes("description"))),
		qlog.WithVantagePoint(decodeVantagePoint(tv.Get("vantage_point"))),
		qlog.WithConfiguration(decodeConfiguration(tv.Get("configuration"))),
		qlog.WithFields(fields, common),
		qlog.WithEvents(events),
	)
	return nil
}

func decodeVantagePoint(v *fastjson.Value) qlog.VantagePoint {
	if v == nil {
		return qlog.VantagePoint{}
	}
	return qlog.VantagePoint{
		Name: string(v.GetStringBytes("name")),
		Type: string(v.GetStringBytes("type")),
	}
}

func decodeConfiguration(v *fastjson.Value) qlog.Configuration {
	if v == nil {
		return qlog.Configuration{}
	}
	cfg := qlog.Configuration{
		TimeUnits:  string(v.GetStringBytes("time_units")),
		TimeOffset: v.GetFloat64("time_offset"),
	}
	for _, uv := range v.GetArray("original_uris") {
		cfg.OriginalURIs = append(cfg.OriginalURIs, string(uv.GetStringBytes()))
	}
	return cfg
}

// valueToAny converts a fastjson value into a plain Go tree: objects become
// map[string]any, arrays []any, numbers float64.
func valueToAny(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, _ := v.Object()
		m := make(map[string]any, obj.Len())
		obj.Visit(func(key []byte, val *fastjson.Value) {
			m[string(key)] = valueToAny(val)
		})
		return m
	case fastjson.TypeArray:
		arr, _ := v.Array()
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = valueToAny(e)
		}
		return out
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}

func isGzip(data []byte) bool {
	return len(data) > 2 && data[0] == 0x1f && data[1] == 0x8b
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/FFhix10/qvis/internal/codec"
	"github.com/FFhix10/qvis/internal/config"
	"github.com/FFhix10/qvis/internal/logging"
	"github.com/FFhix10/qvis/pkg/qlog"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	group, err := codec.DecodeReader(input())
	if err != nil {
		log.Fatalf("failed to decode trace document: %v", err)
	}

	ctor, err := qlog.GetParser(cfg.Parser)
	if err != nil {
		log.Fatalf("failed to resolve parser: %v", err)
	}

	slog.Info("decoded trace document",
		"title", group.Title(), "traces", len(group.Traces()))

	out := json.NewEncoder(os.Stdout)
	for _, trace := range group.Traces() {
		if err := trace.SetParser(ctor()); err != nil {
			log.Fatalf("failed to attach parser: %v", err)
		}
		diags, err := trace.BuildIndex()
		if err != nil {
			log.Fatalf("failed to build index: %v", err)
		}
		for _, d := range diags {
			slog.Warn("skipped unresolvable event",
				"trace", trace.Title(), "diagnostic", d.String())
		}

		if err := report(out, trace, cfg.Lookup); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
	}
}

// input returns the document source: the path argument, or stdin when the
// argument is absent or "-".
func input() io.Reader {
	if len(os.Args) < 2 || os.Args[1] == "-" {
		return os.Stdin
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	return f
}

// report emits one NDJSON line per trace: the bucket counts, plus the
// matching events when a category/type lookup was requested.
func report(out *json.Encoder, trace *qlog.Trace, lookup string) error {
	line := map[string]any{
		"trace": trace.Title(),
		"index": trace.IndexCounts(),
	}
	if lookup != "" {
		category, eventType, ok := strings.Cut(lookup, "/")
		if !ok {
			return fmt.Errorf("lookup must be category/type, got %q", lookup)
		}
		line["lookup"] = lookup
		line["events"] = trace.Lookup(category, eventType)
	}
	return out.Encode(line)
}

package qlog

// Parser turns raw positional events into normalized views. Implementations
// exist per capture-format version; the core never assumes field order and
// keeps all positional decoding behind this boundary.
//
// Init binds the parser to a trace's field declaration and common-field
// defaults. Trace.SetParser calls it; it must run before the first Load.
// Re-initialization is allowed and rebinds the parser.
//
// Load must be deterministic and pure with respect to the bound
// declarations: the same raw event always yields the same view. It must
// tolerate events whose positional length differs from the declaration —
// missing trailing fields resolve to common-field defaults, surplus values
// are preserved, not dropped. An event whose category or name cannot be
// resolved fails with a *DataError; calling Load before Init fails with
// ErrParserNotInitialized.
//
// A parser is treated as stateless after Init and may be shared between a
// trace and its clones, so Load must be safe for concurrent use.
type Parser interface {
	Init(fields []string, common map[string]any) error
	Load(ev RawEvent) (ParsedEvent, error)
}

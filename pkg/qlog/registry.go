package qlog

import "fmt"

// ParserConstructor creates a new Parser instance for one capture-format
// version.
type ParserConstructor func() Parser

var registry = map[string]ParserConstructor{}

func init() {
	Register("positional", func() Parser { return NewPositionalParser() })
}

// Register adds a parser constructor under the given format name. Hosts
// register one constructor per capture-format version they support.
func Register(format string, ctor ParserConstructor) {
	registry[format] = ctor
}

// GetParser returns the parser constructor for the given format name.
func GetParser(format string) (ParserConstructor, error) {
	ctor, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("qlog: unknown parser format: %s", format)
	}
	return ctor, nil
}

// Formats returns the names of all registered parser formats.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

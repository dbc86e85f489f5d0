// Package output serializes transcript segment streams.
package output

import (
	"fmt"
	"io"

	"github.com/noct-ml/echo-forge/pkg/echoforge"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer handles segment serialization.
type Writer interface {
	// Write outputs a single segment.
	Write(seg echoforge.Segment) error

	// WriteAll outputs multiple segments.
	WriteAll(segs []echoforge.Segment) error

	// Flush ensures all data is written.
	Flush() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

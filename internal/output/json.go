package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/noct-ml/echo-forge/pkg/echoforge"
)

// JSONWriter buffers segments and writes them as one indented JSON array.
type JSONWriter struct {
	w    *bufio.Writer
	segs []echoforge.Segment
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: bufio.NewWriter(w)}
}

// Write buffers a single segment for JSON array output.
func (w *JSONWriter) Write(seg echoforge.Segment) error {
	w.segs = append(w.segs, seg)
	return nil
}

// WriteAll buffers multiple segments.
func (w *JSONWriter) WriteAll(segs []echoforge.Segment) error {
	w.segs = append(w.segs, segs...)
	return nil
}

// Flush writes the buffered segments as a JSON array.
func (w *JSONWriter) Flush() error {
	enc := json.NewEncoder(w.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w.segs); err != nil {
		return err
	}
	return w.w.Flush()
}

// JSONLWriter writes newline-delimited JSON, one segment per line.
type JSONLWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	// Transcript text is full of <, > and &; emit them raw rather than as
	// \u003c-style escapes.
	enc.SetEscapeHTML(false)
	return &JSONLWriter{w: bw, enc: enc}
}

// Write writes a single segment as one JSON line.
func (w *JSONLWriter) Write(seg echoforge.Segment) error {
	return w.enc.Encode(seg)
}

// WriteAll writes multiple segments as JSON lines.
func (w *JSONLWriter) WriteAll(segs []echoforge.Segment) error {
	for _, seg := range segs {
		if err := w.Write(seg); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}

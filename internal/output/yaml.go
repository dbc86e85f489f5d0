package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/noct-ml/echo-forge/pkg/echoforge"
)

// YAMLWriter buffers segments and writes them as one YAML document.
type YAMLWriter struct {
	w    *bufio.Writer
	segs []echoforge.Segment
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: bufio.NewWriter(w)}
}

// Write buffers a single segment.
func (w *YAMLWriter) Write(seg echoforge.Segment) error {
	w.segs = append(w.segs, seg)
	return nil
}

// WriteAll buffers multiple segments.
func (w *YAMLWriter) WriteAll(segs []echoforge.Segment) error {
	w.segs = append(w.segs, segs...)
	return nil
}

// Flush writes the buffered segments as YAML.
func (w *YAMLWriter) Flush() error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)
	if err := enc.Encode(w.segs); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}

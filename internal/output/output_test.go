package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/noct-ml/echo-forge/pkg/echoforge"
)

func sampleSegments() []echoforge.Segment {
	return []echoforge.Segment{
		{Role: "User", Text: "Hello world"},
		{Role: "ChatGPT", Text: "Hi & welcome"},
	}
}

// --- NewWriter Factory Tests ---

func TestNewWriter_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatJSON)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if _, ok := w.(*JSONWriter); !ok {
		t.Errorf("expected *JSONWriter, got %T", w)
	}
}

func TestNewWriter_JSONL(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatJSONL)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if _, ok := w.(*JSONLWriter); !ok {
		t.Errorf("expected *JSONLWriter, got %T", w)
	}
}

func TestNewWriter_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatYAML)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if _, ok := w.(*YAMLWriter); !ok {
		t.Errorf("expected *YAMLWriter, got %T", w)
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := NewWriter(buf, Format("unsupported"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

// --- JSONL Writer Tests ---

func TestJSONLWriter_WriteAll(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	if err := w.WriteAll(sampleSegments()); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != `{"role":"User","text":"Hello world"}` {
		t.Errorf("line 0 = %s", lines[0])
	}

	var seg echoforge.Segment
	if err := json.Unmarshal([]byte(lines[1]), &seg); err != nil {
		t.Fatalf("line 1 is not valid JSON: %v", err)
	}
	if seg.Role != "ChatGPT" || seg.Text != "Hi & welcome" {
		t.Errorf("line 1 decoded to %+v", seg)
	}
}

func TestJSONLWriter_IncrementalWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	for _, seg := range sampleSegments() {
		if err := w.Write(seg); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("got %d newlines, want 2:\n%s", got, buf.String())
	}
}

// Code-heavy transcript text must come out byte-for-byte, with no
// HTML-safe escaping of angle brackets or ampersands.
func TestJSONLWriter_NoHTMLEscaping(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	if err := w.Write(echoforge.Segment{Role: "ChatGPT", Text: "a < b && c > d"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	got := strings.TrimRight(buf.String(), "\n")
	want := `{"role":"ChatGPT","text":"a < b && c > d"}`
	if got != want {
		t.Errorf("output = %s, want %s", got, want)
	}
}

// --- JSON Writer Tests ---

func TestJSONWriter_RoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf)

	if err := w.WriteAll(sampleSegments()); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var segs []echoforge.Segment
	if err := json.Unmarshal(buf.Bytes(), &segs); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, buf.String())
	}
	if len(segs) != 2 || segs[0].Role != "User" || segs[1].Text != "Hi & welcome" {
		t.Errorf("decoded %+v", segs)
	}
	if !strings.HasPrefix(buf.String(), "[\n  {") {
		t.Errorf("output not indented:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Hi & welcome") {
		t.Errorf("ampersand escaped in array output:\n%s", buf.String())
	}
}

// --- YAML Writer Tests ---

func TestYAMLWriter_RoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	if err := w.WriteAll(sampleSegments()); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var segs []echoforge.Segment
	if err := yaml.Unmarshal(buf.Bytes(), &segs); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(segs) != 2 || segs[0].Role != "User" || segs[1].Role != "ChatGPT" {
		t.Errorf("decoded %+v", segs)
	}
}

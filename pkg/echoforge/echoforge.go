// Package echoforge is the public pipeline API: a raw transcript document and
// an Options record in, a finished document or a labeled segment stream out.
//
// The pipeline is a pure function with no shared mutable state: safe to call
// concurrently on independent inputs. I/O is the caller's responsibility.
package echoforge

import (
	"fmt"
	"strings"

	"github.com/noct-ml/echo-forge/pkg/render"
	"github.com/noct-ml/echo-forge/pkg/sanitize"
	"github.com/noct-ml/echo-forge/pkg/transcript"
)

// Segment is one labeled record of the segment stream emitted in JSONL, JSON,
// or YAML mode.
type Segment struct {
	Role string `json:"role" yaml:"role"`
	Text string `json:"text" yaml:"text"`
}

// Document converts a raw transcript into a single output string: the themed
// Markdown document when PrettyMarkdown is set, a turn-delimited plain-text
// rendition when BySpeaker is set, otherwise the sanitized whole document.
//
// The result is built fully in memory; plain-text output destined for a
// Markdown file still needs the footer appended by the caller (see
// MarkdownDestination and render.FooterSignature).
func Document(raw string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	opts = opts.normalized()

	if opts.BySpeaker {
		turns := transcript.Segment(raw)

		if opts.PrettyMarkdown {
			proc := make([]transcript.Turn, len(turns))
			for i, t := range turns {
				txt := t.Text
				if opts.Markdown {
					txt = transcript.ApplyCodeMarkdown(txt)
				}
				proc[i] = transcript.Turn{Role: t.Role, Text: txt}
			}
			return render.PrettyDocument(proc, opts.renderConfig()), nil
		}

		var b strings.Builder
		for i, t := range turns {
			text := processText(t.Text, opts)
			if opts.MaxWidth > 0 {
				text = render.WrapNonCode(text, opts.MaxWidth)
			}
			fmt.Fprintf(&b, "--- %03d [%s] ---\n%s\n\n", i+1, t.Role.DisplayLabel(opts.UserLabel), text)
		}
		return b.String(), nil
	}

	cleaned := processText(sanitize.Clean(raw), opts)

	if opts.PrettyMarkdown {
		turns := []transcript.Turn{{Role: transcript.RoleUnknown, Text: cleaned}}
		return render.PrettyDocument(turns, opts.renderConfig()), nil
	}

	if opts.MaxWidth > 0 {
		cleaned = render.WrapNonCode(cleaned, opts.MaxWidth)
	}
	return cleaned, nil
}

// Segments converts a raw transcript into the labeled segment stream used by
// the JSONL, JSON, and YAML output modes.
func Segments(raw string, opts Options) ([]Segment, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.normalized()

	turns := transcript.Segment(raw)
	segs := make([]Segment, 0, len(turns))
	for _, t := range turns {
		segs = append(segs, Segment{
			Role: t.Role.DisplayLabel(opts.UserLabel),
			Text: processText(t.Text, opts),
		})
	}
	return segs, nil
}

// MarkdownDestination reports whether output written to path should carry the
// Markdown footer signature: pretty documents always, plain text only when
// the destination name has a Markdown extension.
func MarkdownDestination(path string, opts Options) bool {
	if opts.PrettyMarkdown {
		return true
	}
	return strings.HasSuffix(strings.ToLower(path), ".md")
}

// processText applies the per-turn text treatments shared by every output
// mode: fence reconstruction, label-artifact stripping, heading-link
// rewriting.
func processText(text string, opts Options) string {
	if opts.Markdown {
		text = transcript.ApplyCodeMarkdown(text)
	}
	text = transcript.StripLabelArtifacts(text)
	if opts.ObsidianLinks {
		text = render.RewriteHeadingLinks(text)
	}
	return text
}

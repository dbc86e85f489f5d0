package transcript

import (
	"regexp"
	"strings"

	"github.com/noct-ml/echo-forge/pkg/sanitize"
)

var (
	// roleMarkerRE matches the role attribute transcripts use to label turns.
	roleMarkerRE = regexp.MustCompile(`(?i)data-message-author-role="(user|assistant)"`)

	// attrNoiseRE matches attribute clutter that would otherwise leak into
	// the sanitized text of a turn.
	attrNoiseRE = regexp.MustCompile(`\s*\b(?:data-[^=]+|class|dir|id|style|aria-[^=]+)="[^"]*"`)
)

// Segment splits a raw document into an ordered sequence of speaker turns.
//
// Each role marker opens a span that runs to the next marker or the end of
// the document. Documents without markers yield a single RoleUnknown turn
// over the sanitized whole. Turns whose sanitized text is empty are dropped.
// Markers are assumed to appear in conversational order; no sorting happens.
func Segment(raw string) []Turn {
	locs := roleMarkerRE.FindAllStringSubmatchIndex(raw, -1)
	if len(locs) == 0 {
		return []Turn{{Role: RoleUnknown, Text: sanitize.Clean(raw)}}
	}

	turns := make([]Turn, 0, len(locs))
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		role := Role(strings.ToLower(raw[loc[2]:loc[3]]))
		chunk := raw[loc[0]:end]

		// Drop the marker's own enclosing tag through its first '>'.
		if gt := strings.IndexByte(chunk, '>'); gt >= 0 {
			chunk = chunk[gt+1:]
		}
		chunk = attrNoiseRE.ReplaceAllString(chunk, "")

		text := strings.TrimSpace(sanitize.Clean(chunk))
		if text == "" {
			continue
		}
		turns = append(turns, Turn{Role: role, Text: text})
	}
	return turns
}

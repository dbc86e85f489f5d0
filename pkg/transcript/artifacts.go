package transcript

import (
	"regexp"
	"strings"
)

var (
	// labelJunkRE matches leftover speaker-label lines, optionally trailed by
	// the stray '<' the export sometimes leaves behind.
	labelJunkRE = regexp.MustCompile(`(?mi)^(?:You said:|ChatGPT said:)\s*(?:<\s*)?$`)

	// loneLeftRE matches a line holding nothing but a leftover angle bracket.
	loneLeftRE = regexp.MustCompile(`(?m)^\s*<\s*$`)

	blankRunRE = regexp.MustCompile(`\n{3,}`)
)

// StripLabelArtifacts removes speaker-label remnants and lone angle brackets
// that survive sanitization, then re-collapses the blank lines this opens up.
func StripLabelArtifacts(s string) string {
	s = labelJunkRE.ReplaceAllString(s, "")
	s = loneLeftRE.ReplaceAllString(s, "")
	s = blankRunRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

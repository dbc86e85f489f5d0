package transcript

import (
	"regexp"
	"strings"
)

// codeLanguages is the fixed list of language names recognized as code-block
// headers. This is a lookup list, not language inference.
var codeLanguages = []string{
	"kotlin", "sql", "scss", "pgsql", "bash", "vbnet", "python", "py",
	"javascript", "js", "typescript", "ts", "html", "css", "json", "xml",
	"yaml", "yml", "toml", "ini", "go", "rust", "c", "cpp", "java",
	"powershell", "ps1", "sh", "zsh", "dockerfile", "makefile", "perl", "r",
	"lua", "swift", "php", "objc", "objective-c",
}

var langAlternation = func() string {
	quoted := make([]string, len(codeLanguages))
	for i, l := range codeLanguages {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, "|")
}()

// codeOpenRE marks a code-block opening: a line that is exactly a known
// language name, blank line(s), then the literal copy-affordance line the
// source UI renders above each code block.
var codeOpenRE = regexp.MustCompile(`(?mi)^((?:` + langAlternation + `))\s*\n+Copy code\s*\n`)

// boundaryREs are the candidate payload terminators. The earliest match of
// any pattern ends the payload, regardless of which pattern matched. RE2 has
// no lookahead, so the scan compares match starts across independent
// searches instead.
var boundaryREs = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^(?:` + langAlternation + `)\s*$`), // another language header
	regexp.MustCompile(`(?m)^---\s*\d+\s*\[`),                  // transcript turn marker
	regexp.MustCompile(`(?m)^You said:`),                       // speaker artifact
	regexp.MustCompile(`(?m)^ChatGPT said:`),                   // speaker artifact
	regexp.MustCompile(`(?m)^</?details>`),                     // disclosure tags
	regexp.MustCompile(`(?m)^\s*#{1,6}\s`),                     // markdown heading
	regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s`),            // list bullets / numbered lists
	regexp.MustCompile(`(?m)^\s*Quick extras?:`),               // prose marker
	regexp.MustCompile("(?m)^```"),                             // next code fence
}

// ApplyCodeMarkdown rewrites "language name + Copy code + payload" patterns
// in already-sanitized plain text as fenced code blocks. Text before the
// first marker and after the last payload passes through unchanged; blocks
// never nest; a payload may be empty when a boundary immediately follows the
// marker.
func ApplyCodeMarkdown(text string) string {
	var out strings.Builder
	i := 0
	for {
		loc := codeOpenRE.FindStringSubmatchIndex(text[i:])
		if loc == nil {
			out.WriteString(text[i:])
			break
		}
		lang := text[i+loc[2] : i+loc[3]]
		payloadStart := i + loc[1]
		end := findBoundary(text, payloadStart)

		out.WriteString(text[i : i+loc[0]])
		out.WriteString("```")
		out.WriteString(lang)
		out.WriteString("\n")
		out.WriteString(strings.TrimRight(text[payloadStart:end], "\n"))
		out.WriteString("\n```\n")
		i = end
	}
	return out.String()
}

// findBoundary returns the earliest position at or after start where any
// boundary pattern begins, or the end of text.
func findBoundary(text string, start int) int {
	end := len(text)
	tail := text[start:]
	for _, re := range boundaryREs {
		if loc := re.FindStringIndex(tail); loc != nil && start+loc[0] < end {
			end = start + loc[0]
		}
	}
	return end
}

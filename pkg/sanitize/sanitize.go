package sanitize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	// preCodeRE captures literal <pre><code> payloads, non-greedy over any
	// nested syntax-highlighting tags.
	preCodeRE = regexp.MustCompile(`(?is)<pre\b[^>]*>\s*<code\b[^>]*>(.*?)</code>\s*</pre>`)

	// tagBlocksRE matches comment/script/style blocks including their contents.
	tagBlocksRE = regexp.MustCompile(`(?is)<!--.*?-->|<script\b[^>]*>.*?</script>|<style\b[^>]*>.*?</style>`)

	// tagRE matches any remaining tag-like span.
	tagRE = regexp.MustCompile(`<[^>]+>`)

	// breakersRE matches block-level tags that act as line breaks, not content.
	breakersRE = regexp.MustCompile(`(?i)</?(?:p|br|li|div|h[1-6]|section|article|blockquote|tr|th|td)\b[^>]*>`)

	// layoutWordRE matches bare layout keywords that survive malformed markup
	// as stray words.
	layoutWordRE = regexp.MustCompile(`(?i)\b(?:div|span|section|article|header|footer|main|aside)\b`)

	codeMarkerRE = regexp.MustCompile(`__ECHOFORGE_CODEBLOCK_(\d+)__`)
	blankRunRE   = regexp.MustCompile(`\n{3,}`)
	hspaceRE     = regexp.MustCompile(`[ \t\r\f\v]+`)
)

const codeMarkerFormat = "__ECHOFORGE_CODEBLOCK_%d__"

// Clean converts HTML-ish transcript markup into normalized plain text.
//
// <pre><code> payloads are extracted up front, protected from whitespace
// collapsing and character filtering, and re-inserted at the end as fenced
// Markdown code blocks with their indentation intact. Everything else is
// tag-stripped, entity-decoded, NFC-normalized, filtered through IsAllowed,
// and whitespace-collapsed without destroying leading indentation.
//
// Malformed markup never fails: whatever tag-like spans can be matched are
// stripped, and the rest passes through as text.
func Clean(html string) string {
	var blocks []string

	s := preCodeRE.ReplaceAllStringFunc(html, func(m string) string {
		inner := preCodeRE.FindStringSubmatch(m)[1]
		inner = tagRE.ReplaceAllString(inner, "")
		inner = xhtml.UnescapeString(inner)
		inner = norm.NFC.String(inner)
		inner = strings.ReplaceAll(inner, "\r\n", "\n")
		inner = strings.ReplaceAll(inner, "\r", "\n")
		// Strip only outer blank lines; internal ones belong to the code.
		inner = strings.Trim(inner, "\n")
		blocks = append(blocks, inner)
		return fmt.Sprintf("\n"+codeMarkerFormat+"\n", len(blocks)-1)
	})

	s = breakersRE.ReplaceAllString(s, "\n")
	s = tagBlocksRE.ReplaceAllString(s, "")
	s = tagRE.ReplaceAllString(s, "")
	s = xhtml.UnescapeString(s)
	s = norm.NFC.String(s)
	s = layoutWordRE.ReplaceAllString(s, " ")
	s = filterRunes(s)
	s = collapseWhitespace(s)
	s = blankRunRE.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)

	s = codeMarkerRE.ReplaceAllStringFunc(s, func(m string) string {
		i, err := strconv.Atoi(codeMarkerRE.FindStringSubmatch(m)[1])
		if err != nil || i < 0 || i >= len(blocks) {
			// Markers we did not plant are left as literal text.
			return m
		}
		return "```\n" + blocks[i] + "\n```"
	})

	return strings.TrimSpace(s)
}

// filterRunes replaces every disallowed code point with a single space.
func filterRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsAllowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// collapseWhitespace collapses runs of horizontal whitespace to a single
// space, keeping the leading indentation of each line untouched so that
// code-like lines outside <pre><code> stay aligned.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		rest := strings.TrimLeft(ln, " \t")
		lead := ln[:len(ln)-len(rest)]
		lines[i] = lead + hspaceRE.ReplaceAllString(rest, " ")
	}
	return strings.Join(lines, "\n")
}

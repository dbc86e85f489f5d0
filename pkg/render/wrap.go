package render

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// fenceRE locates fenced code regions that wrapping must never reflow.
	fenceRE = regexp.MustCompile("(?s)```.*?```")

	// listItemRE captures a bullet or numbered-list prefix.
	listItemRE = regexp.MustCompile(`^(\s*(?:[-*+]|\d+\.)\s)`)
)

// WrapNonCode soft-wraps prose to width columns. Fenced code regions pass
// through byte-for-byte; outside them each blank-line-separated paragraph
// wraps independently, and list-item lines keep their bullet or number
// prefix as a hanging indent. width <= 0 disables wrapping.
func WrapNonCode(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	last := 0
	for _, loc := range fenceRE.FindAllStringIndex(text, -1) {
		out.WriteString(wrapProse(text[last:loc[0]], width))
		out.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	out.WriteString(wrapProse(text[last:], width))
	return out.String()
}

func wrapProse(text string, width int) string {
	paras := strings.Split(text, "\n\n")
	for i, para := range paras {
		paras[i] = wrapParagraph(para, width)
	}
	return strings.Join(paras, "\n\n")
}

// wrapParagraph wraps one paragraph. Paragraphs holding list items are
// handled line-wise so each item keeps its prefix; plain paragraphs are
// re-flowed as a single run of words.
func wrapParagraph(para string, width int) string {
	lines := strings.Split(para, "\n")

	hasList := false
	for _, ln := range lines {
		if listItemRE.MatchString(ln) {
			hasList = true
			break
		}
	}
	if !hasList {
		return fill(para, width, "")
	}

	for i, ln := range lines {
		if prefix := listItemRE.FindString(ln); prefix != "" {
			body := ln[len(prefix):]
			wrapped := fill(body, width, strings.Repeat(" ", len(prefix)))
			if wrapped == "" {
				lines[i] = prefix
			} else {
				lines[i] = prefix + wrapped
			}
		} else {
			lines[i] = fill(ln, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

// fill greedily re-flows text into lines of at most width columns, indenting
// continuation lines with subsequent. Internal whitespace (including
// newlines) is normalized to single spaces first.
func fill(text string, width int, subsequent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		wl := utf8.RuneCountInString(w)
		switch {
		case i == 0:
			b.WriteString(w)
			lineLen = wl
		case lineLen+1+wl > width:
			b.WriteString("\n")
			b.WriteString(subsequent)
			b.WriteString(w)
			lineLen = len(subsequent) + wl
		default:
			b.WriteString(" ")
			b.WriteString(w)
			lineLen += 1 + wl
		}
	}
	return b.String()
}

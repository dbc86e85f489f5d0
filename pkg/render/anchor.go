// Package render assembles final output documents: anchors, code-fence-aware
// paragraph wrapping, and themed Markdown with TOC and long-code collapsing.
package render

import (
	"regexp"
	"strings"
)

var (
	anchorDropRE  = regexp.MustCompile(`[^a-z0-9\s\-]+`)
	anchorSpaceRE = regexp.MustCompile(`\s+`)

	// headingLinkRE matches same-document [text](#anchor) links.
	headingLinkRE = regexp.MustCompile(`\[([^\]]+)\]\(#([^)]+)\)`)
)

// Anchor derives a heading anchor from its label: lowercase, brackets
// stripped, anything outside [a-z0-9 -] removed, whitespace collapsed to '-'.
// It is a pure function of the label; duplicate labels collide silently.
func Anchor(label string) string {
	a := strings.ToLower(label)
	a = strings.ReplaceAll(a, "[", "")
	a = strings.ReplaceAll(a, "]", "")
	a = anchorDropRE.ReplaceAllString(a, "")
	a = anchorSpaceRE.ReplaceAllString(a, "-")
	return strings.Trim(a, "-")
}

// RewriteHeadingLinks converts same-document heading links to the Obsidian
// [[#Heading|text]] form.
func RewriteHeadingLinks(s string) string {
	return headingLinkRE.ReplaceAllString(s, "[[#${2}|${1}]]")
}

// Package inspect produces a diagnostic report for a transcript export:
// role-marker counts, literal code-block counts, and element frequencies.
// It parses the document properly, unlike the conversion pipeline, which
// works on the raw text and never builds a DOM.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
)

// Report summarizes the structure of a transcript export.
type Report struct {
	Bytes       int            `json:"bytes"`
	RoleMarkers map[string]int `json:"role_markers"`
	CodeBlocks  int            `json:"code_blocks"`
	Elements    map[string]int `json:"elements"`
}

// Analyze parses the document and counts the structures the conversion
// pipeline cares about.
func Analyze(html string) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	r := &Report{
		Bytes:       len(html),
		RoleMarkers: make(map[string]int),
		Elements:    make(map[string]int),
	}

	doc.Find("[data-message-author-role]").Each(func(_ int, s *goquery.Selection) {
		role, _ := s.Attr("data-message-author-role")
		r.RoleMarkers[strings.ToLower(role)]++
	})

	r.CodeBlocks = doc.Find("pre code").Length()

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		r.Elements[goquery.NodeName(s)]++
	})

	return r, nil
}

// TurnCount is the number of speaker turns the segmenter will produce, before
// empty-turn discarding.
func (r *Report) TurnCount() int {
	n := 0
	for _, c := range r.RoleMarkers {
		n += c
	}
	return n
}

// String renders a human-readable report with the most frequent elements.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Size:        %s (%d bytes)\n", humanize.Bytes(uint64(r.Bytes)), r.Bytes)
	fmt.Fprintf(&b, "Turn markers: %d", r.TurnCount())
	if len(r.RoleMarkers) > 0 {
		roles := make([]string, 0, len(r.RoleMarkers))
		for role := range r.RoleMarkers {
			roles = append(roles, role)
		}
		sort.Strings(roles)
		parts := make([]string, len(roles))
		for i, role := range roles {
			parts[i] = fmt.Sprintf("%s=%d", role, r.RoleMarkers[role])
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Code blocks:  %d\n", r.CodeBlocks)

	type count struct {
		tag string
		n   int
	}
	counts := make([]count, 0, len(r.Elements))
	for tag, n := range r.Elements {
		counts = append(counts, count{tag, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].tag < counts[j].tag
	})
	if len(counts) > 10 {
		counts = counts[:10]
	}
	b.WriteString("Top elements:\n")
	for _, c := range counts {
		fmt.Fprintf(&b, "  %-12s %d\n", c.tag, c.n)
	}
	return b.String()
}

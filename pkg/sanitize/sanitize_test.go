package sanitize

import (
	"strings"
	"testing"
)

func TestClean_PreCodeIndentation(t *testing.T) {
	got := Clean("<pre><code>line1\n    line2</code></pre>")
	want := "```\nline1\n    line2\n```"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_PreCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"nested_highlight_tags_stripped",
			`<pre><code><span class="k">def</span> f():</code></pre>`,
			"```\ndef f():\n```",
		},
		{
			"entities_decoded_inside_code",
			"<pre><code>a &lt; b &amp;&amp; c</code></pre>",
			"```\na < b && c\n```",
		},
		{
			"crlf_normalized",
			"<pre><code>one\r\ntwo\rthree</code></pre>",
			"```\none\ntwo\nthree\n```",
		},
		{
			"outer_blank_lines_trimmed_inner_kept",
			"<pre><code>\n\nfirst\n\nsecond\n\n</code></pre>",
			"```\nfirst\n\nsecond\n```",
		},
		{
			"case_insensitive_tags",
			"<PRE><CODE>x = 1</CODE></PRE>",
			"```\nx = 1\n```",
		},
		{
			"multiple_blocks_in_order",
			"<pre><code>first</code></pre><p>mid</p><pre><code>second</code></pre>",
			"```\nfirst\n```\n\nmid\n\n```\nsecond\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Whitespace inside a code block must survive untouched no matter how
// collapse-worthy it looks.
func TestClean_PreCodeWhitespaceNotCollapsed(t *testing.T) {
	got := Clean("<pre><code>a    b\n\tindented\n        deep</code></pre>")
	want := "```\na    b\n\tindented\n        deep\n```"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_Markup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraphs_break_lines", "<p>one</p><p>two</p>", "one\n\ntwo"},
		{"br_breaks_line", "one<br>two", "one\ntwo"},
		{"headings_break_lines", "<h1>Title</h1>body", "Title\nbody"},
		{"script_removed_with_content", "before<script>var x = 1;</script>after", "beforeafter"},
		{"style_removed_with_content", "before<style>body{}</style>after", "beforeafter"},
		{"comment_removed", "a<!-- hidden -->b", "ab"},
		{"unknown_tags_stripped", "<em>hi</em> <strong>there</strong>", "hi there"},
		{"entities_decoded", "Caf&eacute; &amp; more", "Café & more"},
		{"stray_layout_word_removed", "some div word", "some word"},
		{"stray_layout_word_not_in_longer_word", "division of labor", "division of labor"},
		{"blank_line_runs_collapsed", "one\n\n\n\n\ntwo", "one\n\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean_DisallowedCharsBecomeSpaces(t *testing.T) {
	got := Clean("hi\x07\x07there")
	if got != "hi there" {
		t.Errorf("Clean() = %q, want %q", got, "hi there")
	}
}

func TestClean_LeadingIndentPreserved(t *testing.T) {
	got := Clean("    if x:\n        y   =   1\nplain   text")
	want := "    if x:\n        y = 1\nplain text"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

// A marker we did not plant must pass through as literal text instead of
// resolving to a code block.
func TestClean_ForeignPlaceholderUntouched(t *testing.T) {
	got := Clean("text __ECHOFORGE_CODEBLOCK_7__ more")
	if !strings.Contains(got, "__ECHOFORGE_CODEBLOCK_7__") {
		t.Errorf("Clean() = %q, want foreign placeholder kept", got)
	}
	if strings.Contains(got, "```") {
		t.Errorf("Clean() = %q, foreign placeholder must not produce a fence", got)
	}
}

// Cleaning already-clean prose must be a fixed point.
func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>Hello   world</p><p>Second &amp; paragraph</p>",
		"plain text\n\n\n\nwith gaps",
		"    indented code-like line\nprose",
	}
	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}

// Package sanitize converts HTML-ish transcript fragments into normalized
// plain text while preserving indentation inside code blocks.
package sanitize

import "unicode"

// emojiRanges covers the pictographic blocks worth keeping in a transcript:
// facial expressions, symbols and pictographs (which include the skin-tone
// modifiers), transport, supplemental symbols, and flags (regional
// indicators). Ranges must stay sorted and non-overlapping; unicode.Is
// requires that of every RangeTable.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // symbols & pictographs, incl. 1F3FB-1F3FF skin tones
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport & map
		{Lo: 0x1F700, Hi: 0x1F77F, Stride: 1}, // alchemical
		{Lo: 0x1F780, Hi: 0x1F8FF, Stride: 1}, // geometric extended + arrows-c
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // symbols extended-a
	},
}

// emojiJoiners are the zero-width control points that glue emoji sequences
// together (ZWJ, variation selectors, keycap combiner). Stripping them would
// tear composed emoji apart.
var emojiJoiners = map[rune]bool{
	0x200D: true, // zero-width joiner
	0xFE0E: true, // variation selector-15
	0xFE0F: true, // variation selector-16
	0x20E3: true, // combining enclosing keycap
}

// extraKeep is a small fixed set of arrows and dashes that carry meaning in
// prose and diagrams regardless of their Unicode category.
var extraKeep = map[rune]bool{
	'→': true,
	'←': true,
	'↔': true,
	'↠': true,
	'↩': true,
	'⇒': true,
	'⇔': true,
	'–': true,
	'—': true,
	'―': true,
}

// mathySymbols are Symbol-other code points that read as math/measurement.
var mathySymbols = map[rune]bool{
	'°': true,
	'‰': true,
	'‱': true,
}

// IsAllowed reports whether r survives sanitization. It is a pure, total
// predicate over the code point range: whitespace, emoji, letters, numbers,
// punctuation, space separators, math and currency symbols pass; control
// characters, private-use and decorative symbols are dropped.
func IsAllowed(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	if extraKeep[r] {
		return true
	}
	if emojiJoiners[r] || unicode.Is(emojiRanges, r) {
		return true
	}
	if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsPunct(r) {
		return true
	}
	if unicode.Is(unicode.Zs, r) {
		return true
	}
	if unicode.Is(unicode.Sm, r) || unicode.Is(unicode.Sc, r) {
		return true
	}
	return mathySymbols[r]
}

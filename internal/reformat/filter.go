// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reformat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// escapedNewlines matches runs of the two-character sequence `\n` that some
// editors leave in exported manuscripts.
var escapedNewlines = regexp.MustCompile(`(?:\\n)+`)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// placeholderPhrases mark editorial instructions ("body goes here", ...)
// that start a skipped run of lines.
var placeholderPhrases = []string{"본문 내용", "원고 내용", "추가 내용"}

// skipPrefix starts a skipped run when it opens a line.
const skipPrefix = "-"

// releaseTokens end a skipped run; the releasing line itself is kept.
var releaseTokens = []string{"$", "=="}

// CollapseEscapedNewlines replaces each run of literal `\n` tokens with one
// newline and normalizes line endings to "\n".
func CollapseEscapedNewlines(text string) string {
	text = escapedNewlines.ReplaceAllString(text, "\n")
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// FilterLines drops placeholder runs from text. A line containing a
// placeholder phrase, or starting with "-", switches skipping on; a line
// containing "$" or "==" switches it off. The release is checked after the
// trigger, so a line carrying both is kept.
func FilterLines(text string) string {
	lines := SplitLines(text)
	kept := make([]string, 0, len(lines))
	skip := false
	for _, line := range lines {
		if triggersSkip(line) {
			skip = true
		}
		if releasesSkip(line) {
			skip = false
		}
		if !skip {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// SplitLines splits text at line boundaries: "\n", "\r", "\r\n", vertical
// tab, form feed, the information separators U+001C to U+001E, NEL, and the
// Unicode line and paragraph separators. A trailing boundary does not
// produce an empty final line, and empty text has no lines.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\r' && strings.HasPrefix(text[i+size:], "\n") {
			size++
		}
		if isLineBoundary(r) {
			lines = append(lines, text[start:i])
			start = i + size
		}
		i += size
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func triggersSkip(line string) bool {
	if strings.HasPrefix(line, skipPrefix) {
		return true
	}
	key := matchKey(line)
	for _, p := range placeholderPhrases {
		if strings.Contains(key, p) {
			return true
		}
	}
	return false
}

func releasesSkip(line string) bool {
	for _, tok := range releaseTokens {
		if strings.Contains(line, tok) {
			return true
		}
	}
	return false
}

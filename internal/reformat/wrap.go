// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reformat

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/manuscript/pkg/types"
)

// Wrapper breaks text into lines no wider than a given width. Words are
// separated by ASCII whitespace only, so a full-width space (U+3000) stays
// inside its word.
type Wrapper struct {
	mode types.WidthMode
}

// NewWrapper returns a Wrapper measuring width in the given mode. An empty
// mode counts runes.
func NewWrapper(mode types.WidthMode) *Wrapper {
	if mode == "" {
		mode = types.WidthRunes
	}
	return &Wrapper{mode: mode}
}

// Width returns the measured width of s.
func (w *Wrapper) Width(s string) int {
	if w.mode == types.WidthCells {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

// Wrap fills lines greedily up to width. Tabs expand to 8-column stops,
// whitespace at line edges is dropped except before the first word,
// hyphenated words may break after the hyphen, and a word wider than width
// is split across lines. Empty or all-whitespace text yields no lines.
func (w *Wrapper) Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	chunks := splitChunks(normalizeWhitespace(expandTabs(text)))

	var lines []string
	for i := 0; i < len(chunks); {
		if len(lines) > 0 && isBlank(chunks[i]) {
			i++
			continue
		}

		var cur []string
		curLen := 0
		for i < len(chunks) {
			n := w.Width(chunks[i])
			if curLen+n > width {
				break
			}
			cur = append(cur, chunks[i])
			curLen += n
			i++
		}

		if i < len(chunks) && w.Width(chunks[i]) > width {
			head, tail := w.breakLongWord(chunks[i], width-curLen)
			if head == "" && len(cur) == 0 {
				_, size := utf8.DecodeRuneInString(chunks[i])
				head, tail = chunks[i][:size], chunks[i][size:]
			}
			if head != "" {
				cur = append(cur, head)
			}
			if tail == "" {
				i++
			} else {
				chunks[i] = tail
			}
		}

		if len(cur) > 0 && isBlank(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}
	return lines
}

// breakLongWord splits a word too wide for the line. The head fills the
// space left, ending after its last hyphen when one follows a non-hyphen.
func (w *Wrapper) breakLongWord(word string, spaceLeft int) (head, tail string) {
	head, tail = w.cut(word, spaceLeft)
	hyphen := strings.LastIndex(head, "-")
	if hyphen > 0 && strings.Trim(head[:hyphen], "-") != "" {
		return word[:hyphen+1], word[hyphen+1:]
	}
	return head, tail
}

// cut splits s so the head measures at most n.
func (w *Wrapper) cut(s string, n int) (head, tail string) {
	used := 0
	for i, r := range s {
		rw := 1
		if w.mode == types.WidthCells {
			rw = runewidth.RuneWidth(r)
		}
		if used+rw > n {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

const tabSize = 8

// expandTabs replaces each tab with spaces up to the next multiple of
// tabSize. The column restarts after a newline or carriage return.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// normalizeWhitespace maps ASCII control whitespace to a single space each.
func normalizeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if isASCIISpace(r) {
			return ' '
		}
		return r
	}, s)
}

// splitChunks splits s into alternating runs of spaces and words. A word
// ends early after a hyphen joining letters, and before or after an em-dash
// written as two or more hyphens.
func splitChunks(s string) []string {
	rs := []rune(s)
	var chunks []string
	for p := 0; p < len(rs); {
		q := chunkEnd(rs, p)
		chunks = append(chunks, string(rs[p:q]))
		p = q
	}
	return chunks
}

// chunkEnd returns the end of the chunk starting at p.
func chunkEnd(rs []rune, p int) int {
	if rs[p] == ' ' {
		q := p
		for q < len(rs) && rs[q] == ' ' {
			q++
		}
		return q
	}
	if p > 0 && isWordPunct(rs[p-1]) {
		if n := dashRun(rs, p); n > 0 {
			return p + n
		}
	}
	for q := p + 1; ; q++ {
		switch {
		case q == len(rs) || rs[q] == ' ':
			return q
		case rs[q] == '-' && hyphenBreak(rs, q):
			return q + 1
		case isWordPunct(rs[q-1]) && dashRun(rs, q) > 0:
			return q
		}
	}
}

// hyphenBreak reports whether a word may break after the hyphen at i: two
// letters, or letter-hyphen-letter, come before it and a letter, an
// optional hyphen and a letter come after it.
func hyphenBreak(rs []rune, i int) bool {
	before := i >= 2 && isHyphenLetter(rs[i-2]) && isHyphenLetter(rs[i-1]) ||
		i >= 3 && isHyphenLetter(rs[i-3]) && rs[i-2] == '-' && isHyphenLetter(rs[i-1])
	if !before {
		return false
	}
	j := i + 1
	if j >= len(rs) || !isHyphenLetter(rs[j]) {
		return false
	}
	j++
	if j < len(rs) && rs[j] == '-' {
		j++
	}
	return j < len(rs) && isHyphenLetter(rs[j])
}

// dashRun returns the length of an em-dash (two or more hyphens followed by
// a word character) starting at i, or 0.
func dashRun(rs []rune, i int) int {
	j := i
	for j < len(rs) && rs[j] == '-' {
		j++
	}
	if j-i < 2 || j >= len(rs) || !isWordRune(rs[j]) {
		return 0
	}
	return j - i
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isHyphenLetter matches word characters other than decimal digits.
func isHyphenLetter(r rune) bool {
	return isWordRune(r) && !unicode.Is(unicode.Nd, r)
}

func isWordPunct(r rune) bool {
	return isWordRune(r) || strings.ContainsRune(`!"'&.,?`, r)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isBlank reports whether s holds only whitespace, counting the ASCII
// information separators as whitespace.
func isBlank(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	}) == ""
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reformat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceEnd reports whether r terminates a sentence.
func sentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SplitSentences trims text and splits it after every '.', '!' or '?' that
// is followed by whitespace. The whitespace between sentences is dropped.
// Empty text yields a single empty sentence.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)

	var sentences []string
	start := 0
	var prev rune
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) && sentenceEnd(prev) {
			end := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !unicode.IsSpace(r) {
					break
				}
				i += size
			}
			sentences = append(sentences, text[start:end])
			start = i
			prev = 0
			continue
		}
		prev = r
		i += size
	}
	return append(sentences, text[start:])
}

// Paragraphs wraps each sentence of text to width and groups the wrapped
// lines into paragraphs. A paragraph closes once it holds at least
// minLines lines and either reaches maxLines or its last sentence ends with
// terminal punctuation. Leftover lines form a final, possibly shorter,
// paragraph. Paragraphs are joined by a blank line.
func (w *Wrapper) Paragraphs(text string, width, minLines, maxLines int) string {
	var paragraphs, current []string
	count := 0
	for _, sentence := range SplitSentences(text) {
		wrapped := w.Wrap(sentence, width)
		current = append(current, wrapped...)
		count += len(wrapped)

		if count >= minLines && (count >= maxLines || endsSentence(sentence)) {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
			count = 0
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, "\n"))
	}
	return strings.Join(paragraphs, "\n\n")
}

func endsSentence(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return sentenceEnd(r)
}

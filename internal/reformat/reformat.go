// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reformat implements the manuscript text pipeline: placeholder
// line filtering, section classification, paragraph reflow, and photo
// placeholder substitution. Everything here is a pure function of its
// input text; file handling lives in the batch and textio packages.
package reformat

import (
	"strings"

	"github.com/pdiddy/manuscript/pkg/types"
)

// Result is the outcome of reformatting one document.
type Result struct {
	// Entries holds one rendering per classified line, in input order.
	// Reflowed entries may span several lines and contain blank
	// paragraph separators. Blank entries are kept until Text.
	Entries []string

	// Photos is the number of photo placeholders generated.
	Photos int
}

// Text renders the entries as file content: blank entries are dropped and
// every remaining entry ends with a newline.
func (r Result) Text() string {
	var b strings.Builder
	for _, e := range r.Entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return b.String()
}

// Formatter runs the pipeline with fixed reflow parameters.
type Formatter struct {
	cfg     types.ReformatConfig
	wrapper *Wrapper
}

// New returns a Formatter after validating cfg.
func New(cfg types.ReformatConfig) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Formatter{cfg: cfg, wrapper: NewWrapper(cfg.WidthMode)}, nil
}

// Format reformats one document.
func (f *Formatter) Format(text string) Result {
	text = FilterLines(CollapseEscapedNewlines(text))

	doc := newDocument(f.cfg, f.wrapper)
	for _, line := range SplitLines(text) {
		doc.feed(line)
	}
	return Result{Entries: doc.out, Photos: doc.photos}
}

// FormatString is a convenience wrapper returning the rendered text.
func (f *Formatter) FormatString(text string) string {
	return f.Format(text).Text()
}

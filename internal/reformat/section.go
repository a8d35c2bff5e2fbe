// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reformat

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/manuscript/pkg/types"
)

// Section marker tokens.
const (
	TitleMarker    = "#제목"
	BodyMarker     = "#본문"
	CommentsMarker = "#댓글"
	TagsMarker     = "#태그"
)

// PhotoToken marks a photo reference line inside the body.
const PhotoToken = "사진:"

// sectionMarkers is the transition table for every marker except the title
// marker, which depends on whether a title was already captured. Order
// decides which marker wins when a line holds several.
var sectionMarkers = []struct {
	token string
	next  types.Section
}{
	{BodyMarker, types.SectionBody},
	{CommentsMarker, types.SectionComments},
	{TagsMarker, types.SectionTags},
}

// MarkerSection returns the section a marker line opens. The title marker
// reports SectionTitlePending. Decomposed Hangul matches the composed
// marker.
func MarkerSection(line string) (types.Section, bool) {
	line = matchKey(line)
	if strings.Contains(line, TitleMarker) {
		return types.SectionTitlePending, true
	}
	for _, m := range sectionMarkers {
		if strings.Contains(line, m.token) {
			return m.next, true
		}
	}
	return types.SectionNone, false
}

// matchKey returns the NFC form of line. It is used for matching only; the
// emitted text keeps the input's own form.
func matchKey(line string) string {
	return norm.NFC.String(line)
}

// PhotoPlaceholder returns the placeholder that replaces the n-th photo
// reference.
func PhotoPlaceholder(n int) string {
	return fmt.Sprintf("(사진%d)", n)
}

// document is the per-file classification state. A fresh one is built for
// every Format call.
type document struct {
	cfg     types.ReformatConfig
	wrapper *Wrapper

	section       types.Section
	titleCaptured bool
	photos        int
	out           []string
}

func newDocument(cfg types.ReformatConfig, w *Wrapper) *document {
	return &document{cfg: cfg, wrapper: w, section: types.SectionTitlePending}
}

// feed classifies one filtered line and appends its rendering.
func (d *document) feed(line string) {
	line = strings.ReplaceAll(line, `"`, " ")
	key := matchKey(line)

	if strings.Contains(key, TitleMarker) {
		d.out = append(d.out, line)
		if d.titleCaptured {
			d.section = types.SectionTitle
		} else {
			d.section = types.SectionTitlePending
		}
		return
	}

	if d.section == types.SectionTitlePending {
		d.out = append(d.out, line)
		d.titleCaptured = true
		d.section = types.SectionNone
		return
	}

	if next, ok := MarkerSection(line); ok {
		d.out = append(d.out, line)
		d.section = next
		return
	}

	switch {
	case d.section.Verbatim():
		d.out = append(d.out, line)
	case d.section == types.SectionBody:
		if strings.Contains(key, PhotoToken) {
			d.photos++
			d.out = append(d.out, PhotoPlaceholder(d.photos))
			return
		}
		d.out = append(d.out, d.wrapper.Paragraphs(line, d.cfg.BodyWidth, d.cfg.MinLines, d.cfg.MaxLines))
	case d.section == types.SectionComments:
		d.out = append(d.out, d.wrapper.Paragraphs(line, d.cfg.CommentWidth, d.cfg.MinLines, d.cfg.MaxLines))
	}
}

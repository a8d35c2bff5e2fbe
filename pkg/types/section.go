// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Section identifies which region of a manuscript a line belongs to.
type Section int

const (
	// SectionNone drops lines: text after the title line and before the
	// next marker.
	SectionNone Section = iota

	// SectionTitlePending keeps the next line verbatim as the title. A
	// document starts here.
	SectionTitlePending

	// SectionTitle passes lines through verbatim. Entered when a title
	// marker appears after the title was already captured.
	SectionTitle

	// SectionBody reflows lines and substitutes photo placeholders.
	SectionBody

	// SectionComments reflows lines with the comment width.
	SectionComments

	// SectionTags passes lines through verbatim.
	SectionTags
)

// String returns the section name used in logs.
func (s Section) String() string {
	switch s {
	case SectionNone:
		return "none"
	case SectionTitlePending:
		return "title-pending"
	case SectionTitle:
		return "title"
	case SectionBody:
		return "body"
	case SectionComments:
		return "comments"
	case SectionTags:
		return "tags"
	}
	return "unknown"
}

// Verbatim reports whether lines in the section are emitted unchanged.
func (s Section) Verbatim() bool {
	return s == SectionTitlePending || s == SectionTitle || s == SectionTags
}

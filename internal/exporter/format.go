package exporter

import (
	"strings"

	"golang.org/x/text/width"

	"tokuhyocli/pkg/contracts/domain"
)

// FormatDisplayName pads short names with full-width spaces so the name
// column lines up in the rendered sheet. Japanese names of two to four
// characters are assumed to split surname-first:
//
//	2 chars: surname + ３ spaces + given name
//	3 chars: first two + ２ spaces + rest
//	4 chars: first two + １ space + rest
//	5+ chars: unchanged
//
// Embedded half- and full-width spaces are removed before padding.
func FormatDisplayName(name string) string {
	cleaned := strings.NewReplacer("　", "", " ", "").Replace(strings.TrimSpace(name))
	runes := []rune(cleaned)

	switch len(runes) {
	case 2:
		return string(runes[0]) + "　　　" + string(runes[1])
	case 3:
		return string(runes[:2]) + "　　" + string(runes[2:])
	case 4:
		return string(runes[:2]) + "　" + string(runes[2:])
	default:
		return cleaned
	}
}

// NameCellText builds the styled value for a folded name cell: the
// formatted candidate name in bold, then the party name and status as
// regular segments when present.
func NameCellText(name, party, status string) domain.StyledText {
	text := domain.StyledText{
		Segments: []domain.StyledSegment{{Text: FormatDisplayName(name), Bold: true}},
	}
	if party != "" {
		text.Segments = append(text.Segments, domain.StyledSegment{Text: " " + party})
	}
	if status != "" {
		text.Segments = append(text.Segments, domain.StyledSegment{Text: " " + status})
	}
	return text
}

// displayWidth measures how many half-width columns the string occupies
// in the sheet. East-asian fullwidth, wide and ambiguous runes count as
// two; ambiguous is wide because the reports target Japanese locales.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide, width.EastAsianAmbiguous:
			w += 2
		default:
			w++
		}
	}
	return w
}

// styledTextWidth measures a folded cell's combined display width.
func styledTextWidth(t domain.StyledText) int {
	w := 0
	for _, seg := range t.Segments {
		w += displayWidth(seg.Text)
	}
	return w
}

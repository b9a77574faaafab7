package reading

import (
	"regexp"
	"strings"
	"unicode"
)

// cycleSuffixRe matches a trailing cycle token ("A", "B", "C", or any 1-3
// letter combination of them) preceded by at least one dash or whitespace
// character. The required separator keeps a word-final "ABC" from matching;
// the anchor keeps mid-name tokens from matching. Non-breaking space is
// included because the source pages occasionally pad cells with it.
var cycleSuffixRe = regexp.MustCompile(`[\s\x{00A0}\-–—]+([ABC]{1,3})$`)

// readingTypeRe matches a trailing parenthetical qualifier such as "(Vigil)".
var readingTypeRe = regexp.MustCompile(`\(([^)]*)\)$`)

// readingTypes maps raw parenthetical labels to their canonical short form.
// Both the short labels and the long Mass headings used by the source are
// recognized; anything else passes through unchanged.
var readingTypes = map[string]string{
	"Vigil":                      TypeVigil,
	"Night":                      TypeNight,
	"Dawn":                       TypeDawn,
	"Day":                        TypeDay,
	"At the Vigil Mass":          TypeVigil,
	"At the Mass at Night":       TypeNight,
	"At the Mass at Dawn":        TypeDawn,
	"At the Mass during the Day": TypeDay,
}

// Extract splits a raw celebration cell into its clean celebration name,
// reading-type qualifier, and lectionary cycle.
//
// The cycle suffix is removed first: in the source convention it always
// follows any parenthetical qualifier (e.g. "Christmas (Vigil) - ABC"), so
// stripping it first keeps it out of the parenthetical match. A cell with no
// suffix defaults to the all-year token "ABC", which maps to CycleFixed.
// Extract is pure; re-running it on its own celebration output returns the
// name unchanged with CycleFixed.
func Extract(raw string) (celebration, readingType string, cycle Cycle) {
	// Trailing whitespace after the cycle letter, non-breaking space
	// included, would defeat the end-of-string anchor.
	raw = strings.TrimFunc(raw, unicode.IsSpace)

	token := "ABC"
	if m := cycleSuffixRe.FindStringSubmatchIndex(raw); m != nil {
		token = raw[m[2]:m[3]]
		raw = raw[:m[0]]
	}
	cycle = cycleFromToken(token)

	celebration, readingType = splitReadingType(raw)
	return celebration, readingType, cycle
}

// cycleFromToken maps a raw cycle token to its Cycle value. "ABC" means the
// readings repeat every year. Other letter combinations ("AB", "CA", ...)
// are unrecognized and yield CycleUnknown so the caller drops the row.
func cycleFromToken(token string) Cycle {
	switch token {
	case "ABC":
		return CycleFixed
	case "A":
		return CycleA
	case "B":
		return CycleB
	case "C":
		return CycleC
	}
	return CycleUnknown
}

// splitReadingType removes a trailing parenthetical qualifier from the
// celebration text and maps it to its canonical reading type. Absence of a
// qualifier yields TypeStandard.
func splitReadingType(text string) (celebration, readingType string) {
	text = Normalize(text)

	m := readingTypeRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, TypeStandard
	}

	label := Normalize(text[m[2]:m[3]])
	if canonical, ok := readingTypes[label]; ok {
		label = canonical
	}
	return Normalize(text[:m[0]]), label
}

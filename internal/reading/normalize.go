package reading

import "strings"

// Normalize collapses any run of whitespace (non-breaking space included) to
// a single space, trims the ends, and strips trailing sentence punctuation.
// It is a total function over any string and idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = strings.TrimRight(text, ".,;")
	return strings.TrimSpace(text)
}

// CleanCitation normalizes a scripture citation cell. The source tables use a
// bare dash as a "no reading" placeholder, which becomes the empty string.
func CleanCitation(text string) string {
	text = Normalize(text)
	switch text {
	case "-", "–", "—":
		return ""
	}
	return text
}

// LectionaryNumber cleans a lectionary number cell, collapsing ranges such as
// "1-2" to their first value.
func LectionaryNumber(text string) string {
	text = Normalize(text)
	if i := strings.IndexAny(text, "-–—"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

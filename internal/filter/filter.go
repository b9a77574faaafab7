package filter

import (
	"strings"

	"github.com/pfrederiksen/lectionary-readings/internal/reading"
)

// sundayEquivalents lists the major solemnities that follow the Sunday
// lectionary cycle even when they fall on a weekday. Matched
// case-insensitively as substrings of the celebration name, in order;
// specific titles precede their short aliases so the matching phrase is
// always the most descriptive one.
var sundayEquivalents = []string{
	"the nativity of the lord",
	"christmas",
	"the epiphany of the lord",
	"epiphany",
	"the baptism of the lord",
	"ash wednesday",
	"palm sunday",
	"holy thursday",
	"good friday",
	"easter sunday",
	"the ascension of the lord",
	"ascension",
	"pentecost sunday",
	"the most holy trinity",
	"trinity sunday",
	"the most holy body and blood of christ",
	"corpus christi",
	"the most sacred heart of jesus",
	"sacred heart",
	"christ the king",
	"our lord jesus christ, king of the universe",
}

// SundayEquivalent reports whether a table row belongs to the Sunday cycle:
// the celebration names a Sunday, or one of the Sunday-equivalent
// solemnities, or the date column carries a "Sun" marker.
func SundayEquivalent(celebration, dateColumn string) bool {
	if strings.Contains(celebration, "Sunday") {
		return true
	}

	lower := strings.ToLower(celebration)
	for _, solemnity := range sundayEquivalents {
		if strings.Contains(lower, solemnity) {
			return true
		}
	}

	return strings.Contains(dateColumn, "Sun")
}

// ByCycle returns the records applicable to a single Sunday cycle. Fixed
// records always apply since their readings repeat every year. An empty
// cycle returns the input unchanged.
func ByCycle(records []reading.Reading, cycle reading.Cycle) []reading.Reading {
	if cycle == "" {
		return records
	}

	matched := make([]reading.Reading, 0, len(records))
	for _, r := range records {
		if r.Cycle == cycle || r.Cycle == reading.CycleFixed {
			matched = append(matched, r)
		}
	}
	return matched
}

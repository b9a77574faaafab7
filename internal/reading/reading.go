package reading

import "fmt"

// Cycle identifies the Sunday lectionary cycle a reading belongs to.
type Cycle string

const (
	CycleA Cycle = "A"
	CycleB Cycle = "B"
	CycleC Cycle = "C"

	// CycleFixed marks celebrations whose readings are identical across
	// all three years (source pages label these "ABC").
	CycleFixed Cycle = "Fixed"

	// CycleUnknown marks an unrecognized cycle token. Rows carrying it are
	// dropped by the parser, never defaulted to a guessed cycle.
	CycleUnknown Cycle = "Unknown"
)

// Reading type qualifiers for multi-Mass celebrations (chiefly Christmas).
const (
	TypeStandard = "Standard"
	TypeVigil    = "Vigil"
	TypeNight    = "Night"
	TypeDawn     = "Dawn"
	TypeDay      = "Day"
)

// Reading represents one set of Sunday readings for a liturgical celebration.
type Reading struct {
	Celebration       string `json:"celebration"`
	Cycle             Cycle  `json:"cycle"`
	LectionaryNumber  string `json:"lectionary_number"`
	ReadingType       string `json:"reading_type"`
	FirstReading      string `json:"first_reading"`
	ResponsorialPsalm string `json:"responsorial_psalm"`
	SecondReading     string `json:"second_reading"`
	GospelAcclamation string `json:"gospel_acclamation"`
	Gospel            string `json:"gospel"`
	Notes             string `json:"notes"`
}

// New creates a Reading with the provenance note populated from the season
// the row was scraped from.
func New(celebration string, cycle Cycle, lectNum, readingType, first, psalm, second, acclamation, gospel, season string) Reading {
	return Reading{
		Celebration:       celebration,
		Cycle:             cycle,
		LectionaryNumber:  lectNum,
		ReadingType:       readingType,
		FirstReading:      first,
		ResponsorialPsalm: psalm,
		SecondReading:     second,
		GospelAcclamation: acclamation,
		Gospel:            gospel,
		Notes:             fmt.Sprintf("Source: %s", season),
	}
}

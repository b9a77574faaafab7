package export

import "github.com/pfrederiksen/lectionary-readings/internal/reading"

// Summary aggregates record counts for the run report.
type Summary struct {
	Total   int            `json:"total"`
	ByCycle map[string]int `json:"by_cycle"`
	ByType  map[string]int `json:"by_type"`
}

// Summarize tallies records by cycle and by reading type.
func Summarize(records []reading.Reading) *Summary {
	s := &Summary{
		ByCycle: make(map[string]int),
		ByType:  make(map[string]int),
	}
	for _, r := range records {
		s.Total++
		s.ByCycle[string(r.Cycle)]++
		s.ByType[r.ReadingType]++
	}
	return s
}

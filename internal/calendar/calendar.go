package calendar

import (
	"time"

	"github.com/pfrederiksen/lectionary-readings/internal/reading"
)

// FirstSundayOfAdvent returns the First Sunday of Advent for the given
// calendar year: the Sunday falling between November 27 and December 3.
func FirstSundayOfAdvent(year int) time.Time {
	d := time.Date(year, time.November, 27, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// LiturgicalYear returns the calendar year in which the liturgical year
// containing the given date ends. A date on or after the First Sunday of
// Advent already belongs to the next liturgical year.
func LiturgicalYear(date time.Time) int {
	year := date.Year()
	if !date.Before(FirstSundayOfAdvent(year)) {
		return year + 1
	}
	return year
}

// CycleForDate returns the Sunday lectionary cycle in effect on the given
// date. Liturgical years whose ending calendar year is divisible by three
// are Year C (e.g. Advent 2024 through Christ the King 2025); the cycle
// then advances A, B, C in order.
func CycleForDate(date time.Time) reading.Cycle {
	switch LiturgicalYear(date) % 3 {
	case 0:
		return reading.CycleC
	case 1:
		return reading.CycleA
	default:
		return reading.CycleB
	}
}

package scraper

import (
	"strings"

	"github.com/pfrederiksen/lectionary-readings/internal/filter"
	"github.com/pfrederiksen/lectionary-readings/internal/logger"
	"github.com/pfrederiksen/lectionary-readings/internal/reading"
)

// minColumns is the narrowest usable row: date, lectionary number,
// celebration, first reading, psalm, second reading, gospel.
const minColumns = 7

// parseRow expands one table row into zero or one reading records.
//
// Rows with fewer than minColumns cells are spacer and note rows, routine in
// the source pages, and are skipped without comment. Non-Sunday rows yield
// nothing. A row whose celebration carries an unrecognized cycle token is
// dropped with a warning rather than guessed at.
func parseRow(cells []string, season string) []reading.Reading {
	if len(cells) < minColumns {
		logger.Debug("Skipping short row", logger.Fields{
			"season":  season,
			"columns": len(cells),
		})
		return nil
	}

	dateColumn := strings.TrimSpace(cells[0])
	lectNum := reading.LectionaryNumber(cells[1])
	celebrationRaw := strings.TrimSpace(cells[2])
	first := reading.CleanCitation(cells[3])
	psalm := reading.CleanCitation(cells[4])
	second := reading.CleanCitation(cells[5])

	// Gospel acclamation and gospel are separate columns on most pages but
	// combined into one "|"-delimited cell on others.
	var acclamation, gospel string
	if len(cells) >= 8 {
		acclamation = reading.CleanCitation(cells[6])
		gospel = reading.CleanCitation(cells[7])
	} else {
		combined := cells[6]
		if before, after, ok := strings.Cut(combined, "|"); ok {
			acclamation = reading.CleanCitation(before)
			gospel = reading.CleanCitation(after)
		} else {
			gospel = reading.CleanCitation(combined)
		}
	}

	if !filter.SundayEquivalent(celebrationRaw, dateColumn) {
		return nil
	}

	celebration, readingType, cycle := reading.Extract(celebrationRaw)
	if cycle == reading.CycleUnknown {
		logger.Warn("Dropping row with unrecognized cycle token", logger.Fields{
			"season":      season,
			"celebration": celebrationRaw,
		})
		return nil
	}

	return []reading.Reading{
		reading.New(celebration, cycle, lectNum, readingType,
			first, psalm, second, acclamation, gospel, season),
	}
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pfrederiksen/lectionary-readings/internal/reading"
)

// Headers is the fixed CSV column order.
var Headers = []string{
	"Liturgical Celebration",
	"Cycle",
	"Lectionary Number",
	"Reading Type",
	"First Reading",
	"Responsorial Psalm",
	"Second Reading",
	"Gospel Acclamation",
	"Gospel",
	"Notes",
}

// Write serializes records to path as CSV. The output file is the purpose of
// the whole run, so any failure here is returned to the caller as fatal.
func Write(records []reading.Reading, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Celebration,
			string(r.Cycle),
			r.LectionaryNumber,
			r.ReadingType,
			r.FirstReading,
			r.ResponsorialPsalm,
			r.SecondReading,
			r.GospelAcclamation,
			r.Gospel,
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// Read loads records from a CSV file previously produced by Write. The
// export is lossless for the defined schema: reading back N written records
// yields N records with identical field values.
func Read(path string) ([]reading.Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file: %s", path)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(Headers) {
		return nil, fmt.Errorf("unexpected header width: %d columns", len(header))
	}

	records := make([]reading.Reading, 0)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		records = append(records, reading.Reading{
			Celebration:       row[0],
			Cycle:             reading.Cycle(row[1]),
			LectionaryNumber:  row[2],
			ReadingType:       row[3],
			FirstReading:      row[4],
			ResponsorialPsalm: row[5],
			SecondReading:     row[6],
			GospelAcclamation: row[7],
			Gospel:            row[8],
			Notes:             row[9],
		})
	}

	return records, nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pfrederiksen/lectionary-readings/internal/export"
	"github.com/pfrederiksen/lectionary-readings/internal/reading"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// sampleCount is how many records the verbose summary previews.
const sampleCount = 3

// OutputResult contains the run summary to be output
type OutputResult struct {
	ScrapedAt time.Time         `json:"scraped_at"`
	Output    string            `json:"output"`
	Cycle     reading.Cycle     `json:"cycle,omitempty"`
	Summary   *export.Summary   `json:"summary"`
	Samples   []reading.Reading `json:"samples,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintf(w, "Saved %d readings to %s\n", result.Summary.Total, result.Output)
	if result.Cycle != "" {
		fmt.Fprintf(w, "Cycle filter: %s (Fixed included)\n", result.Cycle)
	}

	fmt.Fprintln(w, "\nReadings by Cycle:")
	for _, key := range sortedKeys(result.Summary.ByCycle) {
		fmt.Fprintf(w, "  %s: %d\n", key, result.Summary.ByCycle[key])
	}

	fmt.Fprintln(w, "\nReadings by Type:")
	for _, key := range sortedKeys(result.Summary.ByType) {
		fmt.Fprintf(w, "  %s: %d\n", key, result.Summary.ByType[key])
	}

	if len(result.Samples) > 0 {
		fmt.Fprintln(w, "\nSample Entries:")
		for i, r := range result.Samples {
			fmt.Fprintf(w, "  %d. %s (Cycle %s)\n", i+1, r.Celebration, r.Cycle)
			fmt.Fprintf(w, "     Lect#: %s\n", r.LectionaryNumber)
			fmt.Fprintf(w, "     1st: %s\n", r.FirstReading)
			fmt.Fprintf(w, "     Gospel: %s\n", r.Gospel)
		}
	}

	return nil
}

// sortedKeys returns map keys in stable sorted order
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

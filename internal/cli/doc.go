// Package cli implements the command-line interface for lectionary-readings.
//
// The cli package provides the Cobra-based CLI that drives a scrape run:
// fetching season pages (online or from local files), optionally narrowing
// the result to one Sunday cycle, writing the CSV export, and printing the
// run summary in text or JSON.
package cli

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/lectionary-readings/internal/calendar"
	"github.com/pfrederiksen/lectionary-readings/internal/export"
	"github.com/pfrederiksen/lectionary-readings/internal/filter"
	"github.com/pfrederiksen/lectionary-readings/internal/logger"
	"github.com/pfrederiksen/lectionary-readings/internal/reading"
	"github.com/pfrederiksen/lectionary-readings/internal/scraper"
	"github.com/spf13/cobra"
)

const ExitError = 1

var (
	flagOffline bool
	flagHTMLDir string
	flagOutput  string
	flagFormat  string
	flagCycle   string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lectionary-readings",
		Short: "Extract Sunday lectionary readings to CSV",
		Long: `A CLI tool to extract Sunday lectionary readings from the season pages
at catholic-resources.org and export them as a flat CSV record set.
Supports reading locally saved season pages when the site is unreachable.`,
		RunE: runScrape,
	}

	// Define flags
	cmd.Flags().BoolVar(&flagOffline, "offline", false, "Read season pages from local HTML files instead of fetching")
	cmd.Flags().StringVar(&flagHTMLDir, "html-dir", scraper.DefaultHTMLDir, "Directory holding downloaded season pages (offline mode)")
	cmd.Flags().StringVar(&flagOutput, "output", "liturgical_readings.csv", "Output CSV file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().StringVar(&flagCycle, "cycle", "all", "Export one Sunday cycle: all, current, A, B, or C")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cycle, err := resolveCycle(flagCycle)
	if err != nil {
		return err
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	var sc *scraper.Scraper
	if flagOffline {
		logger.Info("Running in offline mode", logger.Fields{"html_dir": flagHTMLDir})
		sc = scraper.NewOffline(flagHTMLDir)
	} else {
		logger.Info("Running in online mode", logger.Fields{"base_url": scraper.BaseURL})
		sc = scraper.New()
	}

	records := sc.ScrapeAll()
	if cycle != "" {
		records = filter.ByCycle(records, cycle)
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No readings scraped.")
		return nil
	}

	if err := export.Write(records, flagOutput); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	result := &OutputResult{
		ScrapedAt: time.Now().UTC(),
		Output:    flagOutput,
		Cycle:     cycle,
		Summary:   export.Summarize(records),
	}
	if flagVerbose {
		result.Samples = records
		if len(records) > sampleCount {
			result.Samples = records[:sampleCount]
		}
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// resolveCycle maps the --cycle flag to a cycle filter. Empty means no
// filtering; "current" resolves against the liturgical calendar at run time.
func resolveCycle(flag string) (reading.Cycle, error) {
	switch strings.ToLower(flag) {
	case "", "all":
		return "", nil
	case "current":
		return calendar.CycleForDate(time.Now()), nil
	case "a":
		return reading.CycleA, nil
	case "b":
		return reading.CycleB, nil
	case "c":
		return reading.CycleC, nil
	}
	return "", fmt.Errorf("invalid cycle: %s (must be all, current, A, B, or C)", flag)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

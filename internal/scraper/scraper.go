package scraper

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/lectionary-readings/internal/logger"
	"github.com/pfrederiksen/lectionary-readings/internal/reading"
)

const (
	BaseURL        = "https://catholic-resources.org/Lectionary/"
	UserAgent      = "lectionary-readings-cli/1.0 (github.com/pfrederiksen/lectionary-readings)"
	Timeout        = 30 * time.Second
	DefaultHTMLDir = "html_files"
)

// Season names a lectionary season page.
type Season struct {
	Name string
	Page string
}

// Seasons lists the Sunday-cycle season pages in scrape order.
var Seasons = []Season{
	{Name: "Advent", Page: "1998USL-Advent.htm"},
	{Name: "Christmas", Page: "1998USL-Christmas.htm"},
	{Name: "Lent", Page: "1998USL-Lent.htm"},
	{Name: "Easter", Page: "1998USL-Easter.htm"},
	{Name: "OrdinaryTime", Page: "1998USL-Ordinary.htm"},
}

// Scraper handles fetching and parsing lectionary season pages
type Scraper struct {
	client  *http.Client
	baseURL string
	htmlDir string
	offline bool
}

// New creates a Scraper that fetches season pages over HTTP
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
	}
}

// NewOffline creates a Scraper that reads season pages saved under dir
func NewOffline(dir string) *Scraper {
	if dir == "" {
		dir = DefaultHTMLDir
	}
	return &Scraper{
		htmlDir: dir,
		offline: true,
	}
}

// ScrapeAll walks every season page in order and accumulates the Sunday
// reading records it yields. A season that cannot be fetched or read is
// logged and skipped; ScrapeAll never aborts the run for a single source.
func (s *Scraper) ScrapeAll() []reading.Reading {
	records := make([]reading.Reading, 0)

	for _, season := range Seasons {
		doc, err := s.fetchSeason(season)
		if err != nil {
			logger.Error("Skipping season", logger.Fields{
				"season": season.Name,
				"page":   season.Page,
			}, err)
			continue
		}

		seasonRecords := s.parseSeason(doc, season.Name)
		logger.Info("Scraped season", logger.Fields{
			"season":   season.Name,
			"readings": len(seasonRecords),
		})
		records = append(records, seasonRecords...)
	}

	return records
}

// fetchSeason obtains the parsed document for one season page, either over
// HTTP or from the offline directory.
func (s *Scraper) fetchSeason(season Season) (*goquery.Document, error) {
	if s.offline {
		path := filepath.Join(s.htmlDir, season.Page)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening local file: %w", err)
		}
		defer f.Close()
		return s.parseDocument(f)
	}

	url := s.baseURL + season.Page
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseDocument(resp.Body)
}

// parseDocument parses raw HTML into a goquery document
func (s *Scraper) parseDocument(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// parseSeason extracts reading records from every table on a season page.
// Rows containing a header cell are column headings and skipped.
func (s *Scraper) parseSeason(doc *goquery.Document, season string) []reading.Reading {
	records := make([]reading.Reading, 0)

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		table.Find("tr").Each(func(j int, row *goquery.Selection) {
			if row.Find("th").Length() > 0 {
				return
			}

			cells := make([]string, 0, 8)
			row.Find("td").Each(func(k int, cell *goquery.Selection) {
				cells = append(cells, cell.Text())
			})

			records = append(records, parseRow(cells, season)...)
		})
	})

	return records
}

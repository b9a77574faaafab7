// Package scraper provides HTTP fetching and HTML table parsing for
// lectionary season pages.
//
// The scraper package fetches the season pages of the 1998 US Lectionary from
// catholic-resources.org (or reads locally saved copies in offline mode) and
// extracts Sunday reading records from their fixed-layout tables. A season
// that cannot be obtained is logged and skipped; malformed rows are dropped
// individually so one bad row never loses a page.
package scraper

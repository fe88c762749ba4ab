package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/lindsey-doyle/camp-finder/internal/availability"
	"github.com/lindsey-doyle/camp-finder/internal/recgov"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Report contains the data to be output for one availability check.
type Report struct {
	CheckedAt      time.Time           `json:"checked_at"`
	CampgroundID   string              `json:"campground_id"`
	CampgroundName string              `json:"campground_name"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	SiteCount      int                 `json:"site_count"`
	Sites          map[string][]string `json:"sites"`
	BookingURL     string              `json:"booking_url"`
	Description    map[string]string   `json:"description,omitempty"`

	result *availability.Result
}

// NewReport builds a Report from a filtered availability result. The start
// and end dates echo the caller's original strings, not a reformatted
// round-trip.
func NewReport(campgroundID, campgroundName string, window availability.Window, result *availability.Result) *Report {
	sites := make(map[string][]string, result.Len())
	for _, siteID := range result.Sites() {
		sites[siteID] = result.Dates(siteID)
	}

	return &Report{
		CheckedAt:      time.Now().UTC(),
		CampgroundID:   campgroundID,
		CampgroundName: campgroundName,
		StartDate:      window.StartText,
		EndDate:        window.EndText,
		SiteCount:      result.Len(),
		Sites:          sites,
		BookingURL:     recgov.BookingURL(campgroundID),
		result:         result,
	}
}

// WriteOutput writes the report in the specified format. showSites only
// affects the text format; JSON always carries the per-site detail.
func WriteOutput(w io.Writer, report *Report, format OutputFormat, showSites bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report, showSites)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as indented JSON
func writeJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, report *Report, showSites bool) error {
	fmt.Fprintf(w, "%s: %d site(s) with availability between %s and %s\n",
		report.CampgroundName, report.SiteCount, report.StartDate, report.EndDate)
	fmt.Fprintf(w, "To make a reservation go to: %s\n", report.BookingURL)

	if showSites && report.result != nil && report.result.Len() > 0 {
		fmt.Fprintln(w)
		for _, siteID := range report.result.Sites() {
			fmt.Fprintf(w, "  site %s: %s\n", siteID,
				strings.Join(report.result.Dates(siteID), ", "))
		}
	}

	if len(report.Description) > 0 {
		names := make([]string, 0, len(report.Description))
		for name := range report.Description {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(w, "\n%s\n%s\n", name, report.Description[name])
		}
	}

	return nil
}

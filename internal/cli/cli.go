package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lindsey-doyle/camp-finder/internal/availability"
	"github.com/lindsey-doyle/camp-finder/internal/logger"
	"github.com/lindsey-doyle/camp-finder/internal/recgov"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagCampground string
	flagStartDate  string
	flagEndDate    string
	flagFormat     string
	flagSites      bool
	flagDescribe   bool
	flagUserAgent  string
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camp-finder",
		Short: "Check recreation.gov campsite availability for a date range",
		Long: `A CLI tool to check campsite availability on recreation.gov.
Queries the availability API month by month for the given campground and
reports which campsites have at least one free night in the date range.`,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&flagCampground, "campground", "", "Campground identifier, e.g. 232825 (required)")
	cmd.Flags().StringVar(&flagStartDate, "start-date", "", "Start of the date range, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&flagEndDate, "end-date", "", "End of the date range, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagSites, "sites", false, "List available dates per site (text format)")
	cmd.Flags().BoolVar(&flagDescribe, "describe", false, "Include the campground description")
	cmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "Override the randomized User-Agent header")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("campground")
	cmd.MarkFlagRequired("start-date")
	cmd.MarkFlagRequired("end-date")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	campgroundID := strings.TrimSpace(flagCampground)
	if campgroundID == "" {
		return fmt.Errorf("--campground is required")
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	window, err := availability.ParseWindow(flagStartDate, flagEndDate)
	if err != nil {
		return fmt.Errorf("parsing date range: %w", err)
	}

	client := newClient()

	logger.Debug("checking availability", logger.Fields{
		"campground_id": campgroundID,
		"start_date":    window.StartText,
		"end_date":      window.EndText,
		"months":        len(window.Months()),
	})

	records, err := client.FetchAvailability(campgroundID, window)
	if err != nil {
		return fmt.Errorf("fetching availability: %w", err)
	}

	result, err := availability.Filter(records, window)
	if err != nil {
		return fmt.Errorf("filtering availability: %w", err)
	}

	// Name resolution happens after filtering, so a metadata failure
	// aborts only the reporting step.
	campground, err := client.Campground(campgroundID)
	if err != nil {
		return fmt.Errorf("resolving campground name: %w", err)
	}

	report := NewReport(campgroundID, campground.FacilityName, window, result)

	if flagDescribe {
		description, err := describeSections(campground)
		if err != nil {
			return fmt.Errorf("rendering description: %w", err)
		}
		report.Description = description
	}

	if err := WriteOutput(os.Stdout, report, format, flagSites); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagVerbose {
		logger.Debug("run metrics", logger.Fields{"metrics": logger.MetricsSnapshot()})
	}

	return nil
}

// newClient builds the recgov client, honoring a User-Agent override.
func newClient() *recgov.Client {
	if flagUserAgent != "" {
		return recgov.NewWithHeaders(map[string]string{
			"User-Agent": flagUserAgent,
		})
	}
	return recgov.New()
}

// describeSections renders each HTML description section to plain text,
// dropping sections that come back empty.
func describeSections(campground *recgov.Campground) (map[string]string, error) {
	if len(campground.DescriptionMap) == 0 {
		return nil, nil
	}

	sections := make(map[string]string, len(campground.DescriptionMap))
	names := make([]string, 0, len(campground.DescriptionMap))
	for name := range campground.DescriptionMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		text, err := recgov.DescriptionText(campground.DescriptionMap[name])
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}
		if text != "" {
			sections[name] = text
		}
	}

	return sections, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}

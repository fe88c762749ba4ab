package availability

import (
	"fmt"
	"sort"
	"time"
)

// Filter collapses raw per-month records into a Result containing only the
// dates inside the window whose status is exactly StatusAvailable. A site
// appearing in several months accumulates its dates month by month; within
// one month sites are visited in id order and dates chronologically. Sites
// with no qualifying dates are omitted entirely.
//
// A date key that does not parse under AvailabilityDateFormat is a data
// contract violation and fails the whole run with an error rather than
// being skipped.
func Filter(records []MonthRecord, window Window) (*Result, error) {
	result := NewResult()

	for _, record := range records {
		siteIDs := make([]string, 0, len(record.Campsites))
		for siteID := range record.Campsites {
			siteIDs = append(siteIDs, siteID)
		}
		sort.Strings(siteIDs)

		for _, siteID := range siteIDs {
			dates, err := qualifyingDates(record.Campsites[siteID].Availabilities, window)
			if err != nil {
				return nil, fmt.Errorf("site %s: %w", siteID, err)
			}
			result.Append(siteID, dates...)
		}
	}

	return result, nil
}

// qualifyingDates returns the in-window dates with status Available,
// sorted chronologically. Map iteration order is not stable in Go, so the
// keys are sorted to keep output deterministic.
func qualifyingDates(availabilities map[string]string, window Window) ([]string, error) {
	keys := make([]string, 0, len(availabilities))
	for dateText := range availabilities {
		keys = append(keys, dateText)
	}
	sort.Strings(keys)

	var dates []string
	for _, dateText := range keys {
		date, err := time.Parse(AvailabilityDateFormat, dateText)
		if err != nil {
			return nil, fmt.Errorf("parsing availability date %q: %w", dateText, err)
		}

		if !window.Contains(date) {
			continue
		}
		if availabilities[dateText] != StatusAvailable {
			continue
		}

		dates = append(dates, dateText)
	}

	return dates, nil
}

package availability

import (
	"fmt"
	"time"
)

const (
	// InputDateFormat is the format callers use for start/end dates.
	InputDateFormat = "2006-01-02"
	// AvailabilityDateFormat is the format of date keys in the API's
	// per-site availabilities mapping.
	AvailabilityDateFormat = "2006-01-02T15:04:05Z"
)

// Window is an inclusive calendar date range to check for availability.
type Window struct {
	Start time.Time
	End   time.Time

	// StartText and EndText preserve the caller's original date strings
	// for display.
	StartText string
	EndText   string
}

// ParseWindow parses start and end date strings in YYYY-MM-DD form.
// An end date before the start date is rejected.
func ParseWindow(startText, endText string) (Window, error) {
	start, err := time.Parse(InputDateFormat, startText)
	if err != nil {
		return Window{}, fmt.Errorf("parsing start date %q: %w", startText, err)
	}

	end, err := time.Parse(InputDateFormat, endText)
	if err != nil {
		return Window{}, fmt.Errorf("parsing end date %q: %w", endText, err)
	}

	if end.Before(start) {
		return Window{}, fmt.Errorf("end date %s is before start date %s", endText, startText)
	}

	return Window{
		Start:     start,
		End:       end,
		StartText: startText,
		EndText:   endText,
	}, nil
}

// Months returns the first-of-month markers spanning the window, one per
// calendar month, strictly increasing. The month containing Start is always
// included even when Start is not the 1st, and so is the month containing
// End. A window contained in a single month yields exactly one marker.
func (w Window) Months() []time.Time {
	months := make([]time.Time, 0, 1)

	m := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !m.After(w.End) {
		months = append(months, m)
		m = m.AddDate(0, 1, 0)
	}

	return months
}

// Contains reports whether a date falls within the window, bounds inclusive.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

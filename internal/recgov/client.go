package recgov

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lindsey-doyle/camp-finder/internal/availability"
	"github.com/lindsey-doyle/camp-finder/internal/logger"
	"github.com/lindsey-doyle/camp-finder/internal/useragent"
)

const (
	// DefaultBaseURL is the public recreation.gov host.
	DefaultBaseURL = "https://www.recreation.gov"
	// RequestDateFormat is the timestamp format the availability endpoint
	// expects for its start_date parameter.
	RequestDateFormat = "2006-01-02T15:04:05.000Z"
	// Timeout bounds each request.
	Timeout = 30 * time.Second
)

// Client is a client for recreation.gov's camping APIs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
}

// New creates a client with default headers: a randomized realistic
// User-Agent, regenerated per client. Use NewWithHeaders to override.
func New() *Client {
	return NewWithHeaders(map[string]string{
		"User-Agent": useragent.Random(),
	})
}

// NewWithHeaders creates a client that sends the given headers on every
// request. The headers replace the defaults entirely, so a caller that
// omits User-Agent here sends none.
func NewWithHeaders(headers map[string]string) *Client {
	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[k] = v
	}

	return &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		headers: h,
	}
}

// StatusError reports a non-200 response from the service.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// FetchMonth fetches one calendar month of campsite availability for a
// campground. The month marker must be a first-of-month date.
func (c *Client) FetchMonth(campgroundID string, month time.Time) (availability.MonthRecord, error) {
	params := url.Values{}
	params.Set("start_date", month.Format(RequestDateFormat))

	reqURL := fmt.Sprintf("%s/api/camps/availability/campground/%s/month?%s",
		c.baseURL, campgroundID, params.Encode())

	var record availability.MonthRecord
	if err := c.getJSON(reqURL, &record); err != nil {
		return availability.MonthRecord{}, err
	}

	return record, nil
}

// FetchAvailability fetches availability records for every month in the
// window, sequentially and without retries. A month answering with a
// non-200 status is logged with its status code and skipped, so the result
// may hold fewer records than the window has months. Transport failures
// and malformed bodies abort the run.
func (c *Client) FetchAvailability(campgroundID string, window availability.Window) ([]availability.MonthRecord, error) {
	months := window.Months()
	records := make([]availability.MonthRecord, 0, len(months))

	for _, month := range months {
		begin := time.Now()
		record, err := c.FetchMonth(campgroundID, month)
		logger.RecordTiming("recgov.fetch_month", time.Since(begin))

		if err != nil {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				logger.Warn("skipping month", logger.Fields{
					"campground_id": campgroundID,
					"month":         month.Format(availability.InputDateFormat),
					"status":        statusErr.StatusCode,
				})
				logger.IncrCounter("recgov.months_skipped")
				continue
			}
			return nil, fmt.Errorf("fetching month %s: %w", month.Format("2006-01"), err)
		}

		logger.Debug("fetched month", logger.Fields{
			"campground_id": campgroundID,
			"month":         month.Format(availability.InputDateFormat),
			"sites":         len(record.Campsites),
		})
		logger.IncrCounter("recgov.months_fetched")
		records = append(records, record)
	}

	return records, nil
}

// getJSON performs a GET with the client's headers and decodes the JSON
// body into v. A non-200 response becomes a *StatusError.
func (c *Client) getJSON(reqURL string, v interface{}) error {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, val := range c.headers {
		req.Header.Set(k, val)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}

package recgov

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Campground holds the metadata this tool uses from the campgrounds
// endpoint. The upstream object carries many more fields; only the ones
// needed for reporting are decoded.
type Campground struct {
	FacilityID     string            `json:"facility_id"`
	FacilityName   string            `json:"facility_name"`
	FacilityType   string            `json:"facility_type"`
	DescriptionMap map[string]string `json:"facility_description_map"`
}

type campgroundResponse struct {
	Campground Campground `json:"campground"`
}

// Campground fetches metadata for a campground. A response without a
// facility name is rejected, since the name is the only field the summary
// line depends on.
func (c *Client) Campground(campgroundID string) (*Campground, error) {
	reqURL := fmt.Sprintf("%s/api/camps/campgrounds/%s", c.baseURL, campgroundID)

	var resp campgroundResponse
	if err := c.getJSON(reqURL, &resp); err != nil {
		return nil, fmt.Errorf("fetching campground %s: %w", campgroundID, err)
	}

	if resp.Campground.FacilityName == "" {
		return nil, fmt.Errorf("campground %s: response missing facility name", campgroundID)
	}

	return &resp.Campground, nil
}

// BookingURL returns the public booking page for a campground.
func BookingURL(campgroundID string) string {
	return fmt.Sprintf("%s/camping/campgrounds/%s/availability", DefaultBaseURL, campgroundID)
}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// DescriptionText reduces an HTML description fragment to plain text.
// recreation.gov returns campground descriptions as HTML sections; this
// strips the markup and collapses runs of whitespace so the text reads
// cleanly in a terminal.
func DescriptionText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing description HTML: %w", err)
	}

	// Keep paragraph breaks by materializing block boundaries before
	// extracting text.
	doc.Find("br").Each(func(i int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("p, li, h1, h2, h3, h4").Each(func(i int, sel *goquery.Selection) {
		sel.AfterHtml("\n")
	})

	text := doc.Text()
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n"), nil
}

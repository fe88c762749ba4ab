package availability

// StatusAvailable is the status string the API uses for a bookable night.
// Matching is exact and case-sensitive; other statuses such as "Reserved",
// "Not Available" and "Not Reservable" never qualify.
const StatusAvailable = "Available"

// MonthRecord is the decoded body of one monthly availability query.
// Records are consumed by Filter and discarded; nothing persists them.
type MonthRecord struct {
	Campsites map[string]Campsite `json:"campsites"`
}

// Campsite holds one site's entry in a monthly availability record.
type Campsite struct {
	CampsiteID   string `json:"campsite_id"`
	Site         string `json:"site"`
	CampsiteType string `json:"campsite_type"`
	Loop         string `json:"loop"`
	// Availabilities maps ISO datetime strings (midnight UTC) to a
	// status string for that night.
	Availabilities map[string]string `json:"availabilities"`
}

// Result maps campsite ids to the dates on which they are available within
// a query window. Insertion order of site ids is preserved, and appending
// to an existing site extends its date list. Sites are only present once
// they have at least one qualifying date, so empty lists never appear.
type Result struct {
	order []string
	dates map[string][]string
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{
		dates: make(map[string][]string),
	}
}

// Append adds dates to a site's list, creating the entry on first use.
// Dates accumulate in call order and are not deduplicated.
func (r *Result) Append(siteID string, dates ...string) {
	if len(dates) == 0 {
		return
	}
	if _, exists := r.dates[siteID]; !exists {
		r.order = append(r.order, siteID)
	}
	r.dates[siteID] = append(r.dates[siteID], dates...)
}

// Sites returns the site ids in insertion order.
func (r *Result) Sites() []string {
	return r.order
}

// Dates returns the available dates recorded for a site, in the order they
// were appended. Returns nil for unknown sites.
func (r *Result) Dates(siteID string) []string {
	return r.dates[siteID]
}

// Len returns the number of sites with at least one available date.
func (r *Result) Len() int {
	return len(r.order)
}

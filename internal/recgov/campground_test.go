package recgov

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCampground(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if want := "/api/camps/campgrounds/232825"; r.URL.Path != want {
			t.Errorf("request path = %q, want %q", r.URL.Path, want)
		}
		fmt.Fprint(w, `{
			"campground": {
				"facility_id": "232825",
				"facility_name": "Point Reyes National Seashore Campground",
				"facility_description_map": {
					"Overview": "<p>Coastal campground with <b>hike-in</b> sites.</p>"
				}
			}
		}`)
	}))
	defer server.Close()

	c := testClient(server.URL)

	campground, err := c.Campground("232825")
	if err != nil {
		t.Fatalf("Campground failed: %v", err)
	}

	if want := "Point Reyes National Seashore Campground"; campground.FacilityName != want {
		t.Errorf("FacilityName = %q, want %q", campground.FacilityName, want)
	}
	if _, ok := campground.DescriptionMap["Overview"]; !ok {
		t.Error("expected Overview section in description map")
	}
}

func TestCampgroundMissingName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"campground":{"facility_id":"232825"}}`)
	}))
	defer server.Close()

	c := testClient(server.URL)

	if _, err := c.Campground("232825"); err == nil {
		t.Fatal("expected error for missing facility name, got none")
	}
}

func TestCampgroundErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := testClient(server.URL)

	_, err := c.Campground("232825")
	if err == nil {
		t.Fatal("expected error for 403 response, got none")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error should carry the status code, got: %v", err)
	}
}

func TestBookingURL(t *testing.T) {
	want := "https://www.recreation.gov/camping/campgrounds/232825/availability"
	if got := BookingURL("232825"); got != want {
		t.Errorf("BookingURL = %q, want %q", got, want)
	}
}

func TestDescriptionText(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "simple paragraph",
			fragment: "<p>Coastal campground with hike-in sites.</p>",
			want:     "Coastal campground with hike-in sites.",
		},
		{
			name:     "nested markup",
			fragment: "<p>Sites are <b>first come</b>, <i>first served</i>.</p>",
			want:     "Sites are first come, first served.",
		},
		{
			name:     "paragraphs become separate lines",
			fragment: "<p>First paragraph.</p><p>Second paragraph.</p>",
			want:     "First paragraph.\nSecond paragraph.",
		},
		{
			name:     "line breaks preserved",
			fragment: "Check-in: 2pm<br>Check-out: noon",
			want:     "Check-in: 2pm\nCheck-out: noon",
		},
		{
			name:     "whitespace collapsed",
			fragment: "<p>Too     many      spaces</p>",
			want:     "Too many spaces",
		},
		{
			name:     "empty fragment",
			fragment: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DescriptionText(tt.fragment)
			if err != nil {
				t.Fatalf("DescriptionText failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DescriptionText(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}

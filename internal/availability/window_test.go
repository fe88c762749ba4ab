package availability

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{
			name:  "valid window",
			start: "2020-08-29",
			end:   "2020-10-30",
		},
		{
			name:  "single day window",
			start: "2020-08-29",
			end:   "2020-08-29",
		},
		{
			name:    "malformed start date",
			start:   "08/29/2020",
			end:     "2020-10-30",
			wantErr: true,
		},
		{
			name:    "malformed end date",
			start:   "2020-08-29",
			end:     "October 30",
			wantErr: true,
		},
		{
			name:    "end before start",
			start:   "2020-10-30",
			end:     "2020-08-29",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWindow(%q, %q) expected error, got none", tt.start, tt.end)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindow(%q, %q) unexpected error: %v", tt.start, tt.end, err)
			}
			if w.StartText != tt.start || w.EndText != tt.end {
				t.Errorf("window did not preserve original strings: got %q/%q", w.StartText, w.EndText)
			}
		})
	}
}

func TestMonths(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "same month yields one marker",
			start: "2020-08-05",
			end:   "2020-08-29",
			want:  []string{"2020-08-01"},
		},
		{
			name:  "mid-month start includes starting month",
			start: "2020-08-29",
			end:   "2020-10-30",
			want:  []string{"2020-08-01", "2020-09-01", "2020-10-01"},
		},
		{
			name:  "end on the first of a month",
			start: "2020-08-15",
			end:   "2020-09-01",
			want:  []string{"2020-08-01", "2020-09-01"},
		},
		{
			name:  "spans year boundary",
			start: "2020-11-20",
			end:   "2021-02-03",
			want:  []string{"2020-11-01", "2020-12-01", "2021-01-01", "2021-02-01"},
		},
		{
			name:  "single day",
			start: "2020-08-29",
			end:   "2020-08-29",
			want:  []string{"2020-08-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.start, tt.end)
			if err != nil {
				t.Fatalf("ParseWindow failed: %v", err)
			}

			months := w.Months()
			if len(months) != len(tt.want) {
				t.Fatalf("expected %d markers, got %d", len(tt.want), len(months))
			}

			for i, m := range months {
				if got := m.Format(InputDateFormat); got != tt.want[i] {
					t.Errorf("marker %d = %s, want %s", i, got, tt.want[i])
				}
				if m.Day() != 1 {
					t.Errorf("marker %d is not a first-of-month date: %s", i, m)
				}
				if i > 0 && !months[i-1].Before(m) {
					t.Errorf("markers not strictly increasing at index %d", i)
				}
			}
		})
	}
}

func TestContains(t *testing.T) {
	w, err := ParseWindow("2020-08-29", "2020-10-30")
	if err != nil {
		t.Fatalf("ParseWindow failed: %v", err)
	}

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"day before start", "2020-08-28", false},
		{"exactly start", "2020-08-29", true},
		{"middle of window", "2020-09-15", true},
		{"exactly end", "2020-10-30", true},
		{"day after end", "2020-10-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := time.Parse(InputDateFormat, tt.date)
			if err != nil {
				t.Fatalf("parsing test date: %v", err)
			}
			if got := w.Contains(date); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

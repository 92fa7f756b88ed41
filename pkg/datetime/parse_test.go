package datetime

import (
	"testing"
	"time"
)

func TestParseInputDate(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		want    time.Time
		wantErr bool
	}{
		{
			name:    "Valid date",
			dateStr: "01-01-2024",
			want:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Valid date later in year",
			dateStr: "11-30-2023",
			want:    time.Date(2023, time.November, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Wrong ordering",
			dateStr: "2024-01-01",
			wantErr: true,
		},
		{
			name:    "Nonsense",
			dateStr: "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInputDate(tt.dateStr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInputDate(%q) error = %v, wantErr %v", tt.dateStr, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseInputDate(%q) = %v, expected %v", tt.dateStr, got, tt.want)
			}
		})
	}
}

func TestLongDateRoundTrip(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	formatted := FormatLongDate(date)
	if formatted != "March 10, 2024" {
		t.Errorf("FormatLongDate = %q, expected %q", formatted, "March 10, 2024")
	}
	parsed, err := ParseLongDate(formatted)
	if err != nil {
		t.Fatalf("ParseLongDate(%q) returned error: %v", formatted, err)
	}
	if !parsed.Equal(date) {
		t.Errorf("round trip produced %v, expected %v", parsed, date)
	}
}

func TestFormatLongDateZeroPadsDay(t *testing.T) {
	date := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatLongDate(date); got != "February 05, 2024" {
		t.Errorf("FormatLongDate = %q, expected %q", got, "February 05, 2024")
	}
}

func TestOffsetDateByMonths(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		months int
		want   time.Time
	}{
		{
			name:   "One month forward",
			date:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "Across year boundary",
			date:   time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			months: 12,
			want:   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OffsetDateByMonths(tt.date, tt.months); !got.Equal(tt.want) {
				t.Errorf("OffsetDateByMonths(%v, %d) = %v, expected %v", tt.date, tt.months, got, tt.want)
			}
		})
	}
}

func TestWholeDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "Same day",
			from: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "Five days late",
			from: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
			want: 5,
		},
		{
			name: "Early payment is negative",
			from: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2024, time.February, 8, 0, 0, 0, 0, time.UTC),
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeDaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("WholeDaysBetween(%v, %v) = %d, expected %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

package booking_test

import (
	"testing"
	"time"

	"github.com/stedbrown/ste-clone-bot/internal/booking"
)

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}

	// Tuesday 15/09/2026, 08:00 local time.
	now := time.Date(2026, time.September, 15, 8, 0, 0, 0, loc)

	type testCase struct {
		name string
		text string
		want time.Time
	}

	tests := map[string][]testCase{
		"relative days": {
			{
				name: "oggi with time",
				text: "oggi alle 15",
				want: time.Date(2026, time.September, 15, 15, 0, 0, 0, loc),
			},
			{
				name: "domani default hour",
				text: "domani",
				want: time.Date(2026, time.September, 16, booking.DefaultHour, 0, 0, 0, loc),
			},
			{
				name: "dopodomani with minutes",
				text: "dopodomani alle 10:30",
				want: time.Date(2026, time.September, 17, 10, 30, 0, 0, loc),
			},
		},
		"weekdays": {
			{
				name: "next friday",
				text: "venerdì alle 11",
				want: time.Date(2026, time.September, 18, 11, 0, 0, 0, loc),
			},
			{
				name: "same weekday rolls a week ahead",
				text: "martedì alle 9",
				want: time.Date(2026, time.September, 22, 9, 0, 0, 0, loc),
			},
			{
				name: "unaccented weekday",
				text: "giovedi alle 14",
				want: time.Date(2026, time.September, 17, 14, 0, 0, 0, loc),
			},
			{
				name: "two weekday words pick the earlier one",
				text: "mercoledì o venerdì alle 10",
				want: time.Date(2026, time.September, 16, 10, 0, 0, 0, loc),
			},
		},
		"explicit dates": {
			{
				name: "day month year",
				text: "il 20/10/2026 alle 16",
				want: time.Date(2026, time.October, 20, 16, 0, 0, 0, loc),
			},
			{
				name: "day month this year",
				text: "il 20/10 alle 16",
				want: time.Date(2026, time.October, 20, 16, 0, 0, 0, loc),
			},
			{
				name: "todays own date stays this year",
				text: "il 15/09 alle 16",
				want: time.Date(2026, time.September, 15, 16, 0, 0, 0, loc),
			},
			{
				name: "passed date rolls to next year",
				text: "il 10/01 alle 16",
				want: time.Date(2027, time.January, 10, 16, 0, 0, 0, loc),
			},
			{
				name: "two digit year",
				text: "il 05/11/26",
				want: time.Date(2026, time.November, 5, booking.DefaultHour, 0, 0, 0, loc),
			},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					got, err := booking.ParseDateTime(tc.text, now, loc)
					if err != nil {
						t.Fatalf("ParseDateTime(%q) error: %v", tc.text, err)
					}
					if !got.Equal(tc.want) {
						t.Errorf("ParseDateTime(%q) = %v, want %v", tc.text, got, tc.want)
					}
				})
			}
		})
	}
}

func TestParseDateTimeErrors(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}
	now := time.Date(2026, time.September, 15, 8, 0, 0, 0, loc)

	for _, text := range []string{
		"",
		"vorrei prenotare",
		"alle 15",
		"il 45/10",
		"oggi alle 99",
	} {
		if _, err := booking.ParseDateTime(text, now, loc); err == nil {
			t.Errorf("ParseDateTime(%q) expected error, got none", text)
		}
	}
}

package booking_test

import (
	"testing"

	"github.com/stedbrown/ste-clone-bot/internal/booking"
)

func TestHasIntent(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		text string
		want bool
	}

	tests := map[string][]testCase{
		"booking requests": {
			{name: "vorrei prenotare", text: "vorrei prenotare una consulenza", want: true},
			{name: "appuntamento", text: "posso avere un appuntamento domani?", want: true},
			{name: "uppercase", text: "VORREI UN PREVENTIVO", want: true},
			{name: "fissare", text: "possiamo fissare per lunedì?", want: true},
		},
		"other messages": {
			{name: "greeting", text: "ciao come stai", want: false},
			{name: "empty", text: "", want: false},
			{name: "introduction", text: "mi chiamo francesco", want: false},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					if got := booking.HasIntent(tc.text); got != tc.want {
						t.Errorf("HasIntent(%q) = %v, want %v", tc.text, got, tc.want)
					}
				})
			}
		})
	}
}

func TestSubject(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		text string
		want string
	}

	tests := map[string][]testCase{
		"recognized": {
			{name: "consulenza", text: "vorrei una consulenza domani", want: "Consulenza"},
			{name: "riparazione", text: "ho bisogno di una riparazione", want: "Riparazione"},
			{name: "preventivo", text: "mi serve un PREVENTIVO", want: "Preventivo"},
		},
		"fallback": {
			{name: "generic booking", text: "vorrei prenotare per domani", want: booking.DefaultSubject},
			{name: "empty", text: "", want: booking.DefaultSubject},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					if got := booking.Subject(tc.text); got != tc.want {
						t.Errorf("Subject(%q) = %q, want %q", tc.text, got, tc.want)
					}
				})
			}
		})
	}
}

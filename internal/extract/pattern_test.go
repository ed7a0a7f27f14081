package extract_test

import (
	"testing"

	"github.com/stedbrown/ste-clone-bot/internal/extract"
)

func TestByPattern(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		kind    extract.Kind
		text    string
		want    string
		wantOK  bool
	}

	tests := map[string][]testCase{
		"name matches": {
			{name: "mi chiamo", kind: extract.KindName, text: "mi chiamo stefano", want: "Stefano", wantOK: true},
			{name: "sono", kind: extract.KindName, text: "sono marco", want: "Marco", wantOK: true},
			{name: "il mio nome", kind: extract.KindName, text: "il mio nome è luca", want: "Luca", wantOK: true},
			{name: "mi chiamano", kind: extract.KindName, text: "mi chiamano francesco", want: "Francesco", wantOK: true},
			{name: "bare single word", kind: extract.KindName, text: "francesco", want: "Francesco", wantOK: true},
			{name: "double name", kind: extract.KindName, text: "mi chiamo anna maria", want: "Anna Maria", wantOK: true},
			{name: "mixed case input", kind: extract.KindName, text: "Mi Chiamo Francesco", want: "Francesco", wantOK: true},
		},
		"surname matches": {
			{name: "il mio cognome", kind: extract.KindSurname, text: "il mio cognome è rossi", want: "Rossi", wantOK: true},
			{name: "di cognome faccio", kind: extract.KindSurname, text: "di cognome faccio bianchi", want: "Bianchi", wantOK: true},
			{name: "bare surname", kind: extract.KindSurname, text: "rossi", want: "Rossi", wantOK: true},
			{name: "apostrophe surname", kind: extract.KindSurname, text: "il mio cognome è d'angelo", want: "D'angelo", wantOK: true},
		},
		"no match": {
			{name: "filler phrase", kind: extract.KindName, text: "ciao come stai", wantOK: false},
			{name: "empty", kind: extract.KindName, text: "", wantOK: false},
			{name: "whitespace only", kind: extract.KindName, text: "   ", wantOK: false},
			{name: "digits in candidate", kind: extract.KindName, text: "mi chiamo 12345", wantOK: false},
			{name: "bare multi word", kind: extract.KindName, text: "vorrei prenotare qualcosa", wantOK: false},
			{name: "surname pattern on greeting", kind: extract.KindSurname, text: "buongiorno a tutti", wantOK: false},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					got, ok := extract.ByPattern(tc.kind, tc.text)
					if ok != tc.wantOK {
						t.Fatalf("ByPattern(%v, %q) ok = %v, want %v", tc.kind, tc.text, ok, tc.wantOK)
					}
					if ok && got != tc.want {
						t.Errorf("ByPattern(%v, %q) = %q, want %q", tc.kind, tc.text, got, tc.want)
					}
				})
			}
		})
	}
}

package profile_test

import (
	"testing"

	"github.com/stedbrown/ste-clone-bot/internal/database"
	"github.com/stedbrown/ste-clone-bot/internal/profile"
)

func TestApply(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		initial     database.UserProfile
		kind        profile.FieldKind
		candidate   string
		wantChanged bool
		wantValue   string
	}

	tests := map[string][]testCase{
		"writes": {
			{
				name:        "name on fresh profile",
				kind:        profile.FieldName,
				candidate:   "Francesco",
				wantChanged: true,
				wantValue:   "Francesco",
			},
			{
				name:        "surname on fresh profile",
				kind:        profile.FieldSurname,
				candidate:   "Rossi",
				wantChanged: true,
				wantValue:   "Rossi",
			},
			{
				name:        "replaces existing on new validated candidate",
				initial:     database.UserProfile{Name: "Marco"},
				kind:        profile.FieldName,
				candidate:   "Francesco",
				wantChanged: true,
				wantValue:   "Francesco",
			},
		},
		"preserves": {
			{
				name:        "empty candidate never clears a field",
				initial:     database.UserProfile{Name: "Marco"},
				kind:        profile.FieldName,
				candidate:   "",
				wantChanged: false,
				wantValue:   "Marco",
			},
			{
				name:        "whitespace candidate never clears a field",
				initial:     database.UserProfile{Email: "m@example.com"},
				kind:        profile.FieldEmail,
				candidate:   "   ",
				wantChanged: false,
				wantValue:   "m@example.com",
			},
			{
				name:        "unknown kind is ignored",
				initial:     database.UserProfile{Name: "Marco"},
				kind:        profile.FieldKind("shoe_size"),
				candidate:   "44",
				wantChanged: false,
				wantValue:   "",
			},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					p := tc.initial

					changed := profile.Apply(&p, tc.kind, tc.candidate)
					if changed != tc.wantChanged {
						t.Fatalf("Apply changed = %v, want %v", changed, tc.wantChanged)
					}

					got := profile.Get(&p, tc.kind)
					if got != tc.wantValue {
						t.Errorf("field %q = %q, want %q", tc.kind, got, tc.wantValue)
					}
				})
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	p := database.UserProfile{}
	if !profile.Apply(&p, profile.FieldName, "Francesco") {
		t.Fatal("first apply should modify the profile")
	}
	before := p

	if profile.Apply(&p, profile.FieldName, "Francesco") {
		t.Error("replaying the same candidate should not report a change")
	}
	if p != before {
		t.Errorf("profile changed under replay: got %+v, want %+v", p, before)
	}
}

func TestNextMissing(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		p           database.UserProfile
		wantKind    profile.FieldKind
		wantMissing bool
	}

	tests := map[string][]testCase{
		"progression": {
			{name: "fresh profile asks name", p: database.UserProfile{}, wantKind: profile.FieldName, wantMissing: true},
			{
				name:        "after name asks surname",
				p:           database.UserProfile{Name: "Francesco"},
				wantKind:    profile.FieldSurname,
				wantMissing: true,
			},
			{
				name: "after contacts asks street",
				p: database.UserProfile{
					Name: "Francesco", Surname: "Rossi",
					Email: "f@example.com", Phone: "333 1234567",
				},
				wantKind:    profile.FieldStreet,
				wantMissing: true,
			},
		},
		"complete": {
			{
				name: "all fields set",
				p: database.UserProfile{
					Name: "Francesco", Surname: "Rossi",
					Email: "f@example.com", Phone: "333 1234567",
					Street: "Via Roma 1", City: "Milano",
				},
				wantMissing: false,
			},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()
					kind, missing := profile.NextMissing(&tc.p)
					if missing != tc.wantMissing {
						t.Fatalf("NextMissing missing = %v, want %v", missing, tc.wantMissing)
					}
					if missing && kind != tc.wantKind {
						t.Errorf("NextMissing kind = %q, want %q", kind, tc.wantKind)
					}
					if profile.Complete(&tc.p) != !tc.wantMissing {
						t.Errorf("Complete = %v, want %v", profile.Complete(&tc.p), !tc.wantMissing)
					}
				})
			}
		})
	}
}

package calendar_test

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stedbrown/ste-clone-bot/internal/calendar"
	"github.com/stedbrown/ste-clone-bot/internal/database"
)

var testCompany = calendar.CompanyInfo{
	Name:    "UP! Informatica",
	Email:   "info@upinformatica.it",
	Phone:   "+39 02 1234567",
	Website: "www.upinformatica.it",
	Address: "Via Milano 10, Milano",
}

func TestEventTitle(t *testing.T) {
	t.Parallel()

	got := calendar.EventTitle("Consulenza", "Francesco")
	if got != "Consulenza - Francesco" {
		t.Errorf("EventTitle = %q, want %q", got, "Consulenza - Francesco")
	}
}

func TestInternalDescription(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		profile    database.UserProfile
		appt       database.Appointment
		wantLines  []string
		avoidLines []string
	}

	start := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)

	tests := map[string][]testCase{
		"contact lines": {
			{
				name: "full profile includes every contact line",
				profile: database.UserProfile{
					Name: "Francesco", Surname: "Rossi",
					Email: "francesco@example.com", Phone: "333 1234567",
					Street: "Via Roma 1", City: "Milano",
					RegistrationDate: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
				},
				appt: database.Appointment{Subject: "Consulenza", StartsAt: start},
				wantLines: []string{
					"Cliente: Francesco Rossi",
					"📧 Email: francesco@example.com",
					"📱 Telefono: 333 1234567",
					"🏠 Indirizzo: Via Roma 1, Milano",
					"📋 Motivo: Consulenza",
					"🕐 Data e ora: 15/09/2026 alle 10:30",
					"• Cliente registrato il: 02/01/2026",
					"⚠️  INFORMAZIONI RISERVATE - UP! Informatica",
				},
			},
			{
				name: "absent phone is omitted without placeholder",
				profile: database.UserProfile{
					Name:  "Francesco",
					Email: "francesco@example.com",
				},
				appt:      database.Appointment{Subject: "Consulenza", StartsAt: start},
				wantLines: []string{"Cliente: Francesco", "📧 Email: francesco@example.com"},
				avoidLines: []string{
					"Telefono",
					"Indirizzo",
					"N/A",
				},
			},
		},
		"statistics": {
			{
				name:    "fresh customer shows first appointment marker",
				profile: database.UserProfile{Name: "Francesco"},
				appt:    database.Appointment{Subject: "Consulenza", StartsAt: start},
				wantLines: []string{
					"• Appuntamenti totali: 0",
					"• Primo appuntamento",
				},
				avoidLines: []string{"• Ultimo appuntamento"},
			},
			{
				name: "returning customer shows last appointment date",
				profile: database.UserProfile{
					Name:              "Francesco",
					TotalAppointments: 3,
					LastAppointment: sql.NullTime{
						Time:  time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC),
						Valid: true,
					},
				},
				appt: database.Appointment{Subject: "Riparazione", StartsAt: start},
				wantLines: []string{
					"• Appuntamenti totali: 3",
					"• Ultimo appuntamento: 01/08/2026",
				},
				avoidLines: []string{"• Primo appuntamento"},
			},
		},
	}

	for group, cases := range tests {
		t.Run(group, func(t *testing.T) {
			t.Parallel()
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					t.Parallel()

					got := calendar.InternalDescription(&tc.profile, &tc.appt, testCompany)
					for _, want := range tc.wantLines {
						if !strings.Contains(got, want) {
							t.Errorf("description missing %q:\n%s", want, got)
						}
					}
					for _, avoid := range tc.avoidLines {
						if strings.Contains(got, avoid) {
							t.Errorf("description must not contain %q:\n%s", avoid, got)
						}
					}
				})
			}
		})
	}
}

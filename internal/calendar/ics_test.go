package calendar_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stedbrown/ste-clone-bot/internal/calendar"
	"github.com/stedbrown/ste-clone-bot/internal/database"
)

func TestRenderICS(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)
	appt := &database.Appointment{
		UserID:   42,
		Subject:  "Consulenza",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	}

	got := string(calendar.RenderICS(appt, testCompany))

	t.Run("structure", func(t *testing.T) {
		t.Parallel()
		for _, want := range []string{
			"BEGIN:VCALENDAR",
			"PRODID:-//UP! Informatica//Appointment Bot//IT",
			"BEGIN:VEVENT",
			"DTSTART:20260915T103000Z",
			"DTEND:20260915T113000Z",
			"UID:",
			"ORGANIZER;CN=UP! Informatica:MAILTO:info@upinformatica.it",
			"STATUS:CONFIRMED",
			"TRANSP:OPAQUE",
			"END:VEVENT",
			"END:VCALENDAR",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("ICS output missing %q", want)
			}
		}
	})

	t.Run("alarms", func(t *testing.T) {
		t.Parallel()
		if n := strings.Count(got, "BEGIN:VALARM"); n != 2 {
			t.Errorf("ICS output has %d alarm blocks, want 2", n)
		}
		for _, trigger := range []string{"TRIGGER:-PT15M", "TRIGGER:-PT1H"} {
			if !strings.Contains(got, trigger) {
				t.Errorf("ICS output missing %q", trigger)
			}
		}
	})

	t.Run("company metadata present", func(t *testing.T) {
		t.Parallel()
		for _, want := range []string{
			"info@upinformatica.it",
			"www.upinformatica.it",
			"Grazie per aver scelto UP! Informatica! 🚀",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("ICS output missing company metadata %q", want)
			}
		}
	})
}

// The calendar file goes back to the end user; it must carry company
// metadata and the appointment subject only, never customer-profile values.
func TestRenderICSNeverLeaksCustomerData(t *testing.T) {
	t.Parallel()

	customer := database.UserProfile{
		Name: "Francesco", Surname: "Rossi",
		Email: "francesco.rossi@example.com", Phone: "333 9876543",
		Street: "Via Verdi 7", City: "Torino",
	}

	start := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)
	appt := &database.Appointment{
		UserID:   customer.UserID,
		Subject:  "Consulenza",
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	}

	got := string(calendar.RenderICS(appt, testCompany))

	for _, private := range []string{
		customer.Name,
		customer.Surname,
		customer.Email,
		customer.Phone,
		customer.Street,
		customer.City,
	} {
		if strings.Contains(got, private) {
			t.Errorf("ICS output leaks customer value %q", private)
		}
	}
}

func TestRenderICSDefaultsDuration(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)
	appt := &database.Appointment{Subject: "Consulenza", StartsAt: start}

	got := string(calendar.RenderICS(appt, testCompany))
	if !strings.Contains(got, "DTEND:20260915T113000Z") {
		t.Error("zero end time should default to one hour after start")
	}
}

func TestRenderICSEscaping(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)
	appt := &database.Appointment{Subject: "Backup; disco, rete", StartsAt: start}

	got := string(calendar.RenderICS(appt, testCompany))
	if !strings.Contains(got, `Backup\; disco\, rete`) {
		t.Errorf("ICS output should escape separators, got:\n%s", got)
	}
}

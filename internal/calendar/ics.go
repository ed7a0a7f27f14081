package calendar

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stedbrown/ste-clone-bot/internal/database"
)

const icsTimestamp = "20060102T150405Z"

// RenderICS produces the user-facing calendar-interchange document for an
// appointment. The event body carries the appointment subject and the fixed
// company metadata only; customer-profile data never appears here, so the
// file is safe to hand back to the end user as an attachment.
func RenderICS(appt *database.Appointment, company CompanyInfo) []byte {
	start := appt.StartsAt.UTC()
	end := appt.EndsAt.UTC()
	if !end.After(start) {
		end = start.Add(time.Hour)
	}

	description := strings.Join([]string{
		"Appuntamento: " + appt.Subject,
		"",
		company.Name,
		"📧 " + company.Email,
		"📞 " + company.Phone,
		"🌐 " + company.Website,
		"📍 " + company.Address,
		"",
		"Grazie per aver scelto " + company.Name + "! 🚀",
	}, "\n")

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//" + company.Name + "//Appointment Bot//IT",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uuid.NewString(),
		"DTSTAMP:" + time.Now().UTC().Format(icsTimestamp),
		"DTSTART:" + start.Format(icsTimestamp),
		"DTEND:" + end.Format(icsTimestamp),
		"SUMMARY:" + escapeICS("🔧 "+appt.Subject+" - "+company.Name),
		"DESCRIPTION:" + escapeICS(description),
		"LOCATION:" + escapeICS(company.Address),
		"ORGANIZER;CN=" + company.Name + ":MAILTO:" + company.Email,
		"STATUS:CONFIRMED",
		"TRANSP:OPAQUE",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"ACTION:DISPLAY",
		"DESCRIPTION:" + escapeICS("Promemoria: "+appt.Subject),
		"END:VALARM",
		"BEGIN:VALARM",
		"TRIGGER:-PT1H",
		"ACTION:DISPLAY",
		"DESCRIPTION:" + escapeICS("Promemoria: "+appt.Subject),
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return []byte(strings.Join(lines, "\r\n") + "\r\n")
}

// escapeICS escapes text per RFC 5545: backslash, semicolon, comma, and
// newlines become literal "\n".
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

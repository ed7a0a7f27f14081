// Package calendar renders booking artifacts: the business-facing event
// description carrying full customer details, and the user-facing
// calendar-interchange file carrying company metadata only. The two outputs
// have opposite visibility rules; neither may leak the other's data.
package calendar

import (
	"fmt"
	"strings"

	"github.com/stedbrown/ste-clone-bot/internal/database"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 alle 15:04"

	banner = "═══════════════════════════════════"
)

// CompanyInfo is the fixed business metadata consumed by both renderers.
// It is populated from configuration at startup and read-only afterwards.
type CompanyInfo struct {
	Name    string
	Email   string
	Phone   string
	Website string
	Address string
}

// EventTitle forms the internal calendar event title.
func EventTitle(subject, fullName string) string {
	return subject + " - " + fullName
}

// InternalDescription renders the business-facing event body: full customer
// details, contact lines only for fields that are present, booking
// statistics, and a closing privacy banner. This text must never be sent to
// the end user.
func InternalDescription(p *database.UserProfile, appt *database.Appointment, company CompanyInfo) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("👤 INFORMAZIONI CLIENTE\n")
	b.WriteString(banner + "\n\n")

	b.WriteString("Cliente: " + p.FullName() + "\n")
	if p.Email != "" {
		b.WriteString("📧 Email: " + p.Email + "\n")
	}
	if p.Phone != "" {
		b.WriteString("📱 Telefono: " + p.Phone + "\n")
	}
	if p.Street != "" && p.City != "" {
		b.WriteString("🏠 Indirizzo: " + p.Street + ", " + p.City + "\n")
	} else if p.Street != "" {
		b.WriteString("🏠 Indirizzo: " + p.Street + "\n")
	} else if p.City != "" {
		b.WriteString("🏠 Indirizzo: " + p.City + "\n")
	}

	b.WriteString("\n📋 Motivo: " + appt.Subject + "\n")
	b.WriteString("🕐 Data e ora: " + appt.StartsAt.Format(dateTimeLayout) + "\n")

	b.WriteString("\n📊 STATISTICHE\n")
	b.WriteString(fmt.Sprintf("• Appuntamenti totali: %d\n", p.TotalAppointments))
	if p.LastAppointment.Valid {
		b.WriteString("• Ultimo appuntamento: " + p.LastAppointment.Time.Format(dateLayout) + "\n")
	} else {
		b.WriteString("• Primo appuntamento\n")
	}
	if !p.RegistrationDate.IsZero() {
		b.WriteString("• Cliente registrato il: " + p.RegistrationDate.Format(dateLayout) + "\n")
	}

	b.WriteString("\n" + banner + "\n")
	b.WriteString("⚠️  INFORMAZIONI RISERVATE - " + company.Name + "\n")
	b.WriteString(banner)

	return b.String()
}

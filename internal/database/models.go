package database

import (
	"database/sql"
	"strings"
	"time"
)

// UserProfile is the per-user record accumulated from extracted fields and
// appointment statistics. One row exists per Telegram user ID.
type UserProfile struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	UserID       int64  `db:"user_id"`
	Name         string `db:"name"`
	Surname      string `db:"surname"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Street       string `db:"street"`
	City         string `db:"city"`
	TelegramName string `db:"telegram_name"`

	// RegistrationDate is set once at profile creation and never changes.
	RegistrationDate  time.Time    `db:"registration_date"`
	TotalAppointments int          `db:"total_appointments"`
	LastAppointment   sql.NullTime `db:"last_appointment"`
}

// FullName returns "Name Surname", omitting whichever part is absent.
func (p *UserProfile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.Name) + " " + strings.TrimSpace(p.Surname))
}

// Appointment is a booked slot referencing the profile that booked it.
// Records are immutable after creation; rebooking creates a new record.
type Appointment struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	UserID   int64     `db:"user_id"`
	Subject  string    `db:"subject"`
	StartsAt time.Time `db:"starts_at"`
	EndsAt   time.Time `db:"ends_at"`

	ReminderSentAt sql.NullTime `db:"reminder_sent_at"`
}

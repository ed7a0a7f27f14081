package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the narrow persistence interface the rest of the application
// depends on. Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// GetUserProfile retrieves a user profile by user ID. Returns nil, nil if not found.
	GetUserProfile(ctx context.Context, userID int64) (*UserProfile, error)

	// GetAllUserProfiles retrieves all user profiles keyed by user ID.
	GetAllUserProfiles(ctx context.Context) (map[int64]*UserProfile, error)

	// SaveUserProfile inserts or updates a user profile. The registration
	// date is written at creation and never touched by updates.
	SaveUserProfile(ctx context.Context, profile *UserProfile) error

	// SaveAppointment inserts a new appointment record.
	SaveAppointment(ctx context.Context, appt *Appointment) error

	// GetUpcomingAppointments retrieves a user's appointments starting at or after 'from'.
	GetUpcomingAppointments(ctx context.Context, userID int64, from time.Time) ([]*Appointment, error)

	// GetAppointmentsDue retrieves appointments starting within [from, to)
	// whose reminder has not been sent yet.
	GetAppointmentsDue(ctx context.Context, from, to time.Time) ([]*Appointment, error)

	// MarkRemindersSent records that reminders were delivered for the given appointments.
	MarkRemindersSent(ctx context.Context, appointmentIDs []uint) error

	// RecordAppointment atomically saves an appointment and bumps the
	// booking statistics on the owning profile.
	RecordAppointment(ctx context.Context, appt *Appointment) error

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetUserProfile retrieves a user profile by user ID. Returns nil, nil if not found.
func (s *sqlxStore) GetUserProfile(ctx context.Context, userID int64) (*UserProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id cannot be zero")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var profile UserProfile
	query := `SELECT id, created_at, updated_at, user_id, name, surname, email, phone,
	                 street, city, telegram_name, registration_date, total_appointments, last_appointment
	          FROM user_profiles WHERE user_id = ?`

	err := s.db.GetContext(ctx, &profile, query, userID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.logger.DebugContext(ctx, "No user profile found", "user_id", userID)
		return nil, nil

	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "Context timeout or cancellation while fetching user profile",
			"user_id", userID, "error", err)
		return nil, err

	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting user profile by ID", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user profile for user ID %d: %w", userID, err)
	}

	return &profile, nil
}

// GetAllUserProfiles retrieves all user profiles.
func (s *sqlxStore) GetAllUserProfiles(ctx context.Context) (map[int64]*UserProfile, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var profiles []*UserProfile
	query := `SELECT id, created_at, updated_at, user_id, name, surname, email, phone,
	                 street, city, telegram_name, registration_date, total_appointments, last_appointment
	          FROM user_profiles ORDER BY registration_date ASC`

	if err := s.db.SelectContext(ctx, &profiles, query); err != nil {
		s.logger.ErrorContext(ctx, "Error getting all user profiles", "error", err)
		return nil, fmt.Errorf("failed to get all user profiles: %w", err)
	}

	profileMap := make(map[int64]*UserProfile, len(profiles))
	for _, p := range profiles {
		profileMap[p.UserID] = p
	}

	s.logger.DebugContext(ctx, "Fetched all user profiles", "count", len(profiles))
	return profileMap, nil
}

// SaveUserProfile inserts or updates a user profile based on UserID.
// Uses a transaction so the exists-check and the write are atomic.
func (s *sqlxStore) SaveUserProfile(ctx context.Context, profile *UserProfile) error {
	if profile == nil {
		return fmt.Errorf("cannot save nil user profile")
	}
	if profile.UserID == 0 {
		return fmt.Errorf("profile must have a non-zero user_id")
	}

	now := time.Now().UTC()
	profile.UpdatedAt = now
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	if profile.RegistrationDate.IsZero() {
		profile.RegistrationDate = now
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for saving user profile",
			"user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				if !errors.Is(rollbackErr, sql.ErrTxDone) {
					s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
				}
			}
		}
	}()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT 1 FROM user_profiles WHERE user_id = ? LIMIT 1`, profile.UserID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logger.ErrorContext(ctx, "Error checking if profile exists",
			"user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to check if profile exists for user ID %d: %w", profile.UserID, err)
	}

	var result sql.Result

	if exists {
		// registration_date deliberately excluded: it is immutable.
		query := `
			UPDATE user_profiles SET
				name = :name,
				surname = :surname,
				email = :email,
				phone = :phone,
				street = :street,
				city = :city,
				telegram_name = :telegram_name,
				total_appointments = :total_appointments,
				last_appointment = :last_appointment,
				updated_at = :updated_at
			WHERE user_id = :user_id
		`
		result, err = tx.NamedExecContext(ctx, query, profile)
	} else {
		query := `
			INSERT INTO user_profiles (
				user_id, name, surname, email, phone, street, city, telegram_name,
				registration_date, total_appointments, last_appointment, created_at, updated_at
			) VALUES (
				:user_id, :name, :surname, :email, :phone, :street, :city, :telegram_name,
				:registration_date, :total_appointments, :last_appointment, :created_at, :updated_at
			)
		`
		result, err = tx.NamedExecContext(ctx, query, profile)
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving user profile",
			"user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to save user profile for user ID %d: %w", profile.UserID, err)
	}

	if !exists {
		if id, idErr := result.LastInsertId(); idErr == nil {
			//nolint:gosec // integer overflow conversion is acceptable here
			profile.ID = uint(id)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to commit transaction",
			"user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil

	operation := "updated"
	if !exists {
		operation = "created"
	}
	s.logger.DebugContext(ctx, "User profile saved successfully",
		"operation", operation, "user_id", profile.UserID)

	return nil
}

// SaveAppointment inserts a new appointment record.
func (s *sqlxStore) SaveAppointment(ctx context.Context, appt *Appointment) error {
	if appt == nil {
		return fmt.Errorf("cannot save nil appointment")
	}
	if appt.UserID == 0 {
		return fmt.Errorf("appointment must have a non-zero user_id")
	}
	if appt.Subject == "" {
		return fmt.Errorf("appointment must have a non-empty subject")
	}
	if appt.StartsAt.IsZero() {
		return fmt.Errorf("appointment must have a non-zero start time")
	}

	appt.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO appointments (user_id, subject, starts_at, ends_at, reminder_sent_at, created_at)
		VALUES (:user_id, :subject, :starts_at, :ends_at, :reminder_sent_at, :created_at)
	`
	result, err := s.db.NamedExecContext(ctx, query, appt)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error saving appointment",
			"user_id", appt.UserID, "subject", appt.Subject, "error", err)
		return fmt.Errorf("failed to save appointment for user %d: %w", appt.UserID, err)
	}

	if id, idErr := result.LastInsertId(); idErr == nil {
		//nolint:gosec // integer overflow conversion is acceptable here
		appt.ID = uint(id)
	}

	s.logger.DebugContext(ctx, "Appointment saved", "user_id", appt.UserID, "appointment_id", appt.ID)
	return nil
}

// GetUpcomingAppointments retrieves a user's appointments starting at or after 'from'.
func (s *sqlxStore) GetUpcomingAppointments(ctx context.Context, userID int64, from time.Time) ([]*Appointment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user_id cannot be zero")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var appts []*Appointment
	query := `
		SELECT id, created_at, user_id, subject, starts_at, ends_at, reminder_sent_at
		FROM appointments
		WHERE user_id = ? AND starts_at >= ?
		ORDER BY starts_at ASC
	`
	if err := s.db.SelectContext(ctx, &appts, query, userID, from.UTC()); err != nil {
		s.logger.ErrorContext(ctx, "Error getting upcoming appointments",
			"user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get upcoming appointments for user %d: %w", userID, err)
	}

	return appts, nil
}

// GetAppointmentsDue retrieves appointments starting within [from, to)
// whose reminder has not been sent yet.
func (s *sqlxStore) GetAppointmentsDue(ctx context.Context, from, to time.Time) ([]*Appointment, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var appts []*Appointment
	query := `
		SELECT id, created_at, user_id, subject, starts_at, ends_at, reminder_sent_at
		FROM appointments
		WHERE starts_at >= ? AND starts_at < ? AND reminder_sent_at IS NULL
		ORDER BY starts_at ASC
	`
	if err := s.db.SelectContext(ctx, &appts, query, from.UTC(), to.UTC()); err != nil {
		s.logger.ErrorContext(ctx, "Error getting due appointments", "error", err)
		return nil, fmt.Errorf("failed to get due appointments: %w", err)
	}

	return appts, nil
}

// MarkRemindersSent records that reminders were delivered for the given appointments.
func (s *sqlxStore) MarkRemindersSent(ctx context.Context, appointmentIDs []uint) error {
	if len(appointmentIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	query, args, err := sqlx.In(`UPDATE appointments SET reminder_sent_at = ? WHERE id IN (?)`, now, appointmentIDs)
	if err != nil {
		return fmt.Errorf("failed to build reminder update query: %w", err)
	}

	query = s.db.Rebind(query)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.ErrorContext(ctx, "Error marking reminders as sent", "error", err)
		return fmt.Errorf("failed to mark reminders as sent: %w", err)
	}

	s.logger.DebugContext(ctx, "Marked reminders as sent", "count", len(appointmentIDs))
	return nil
}

// RecordAppointment atomically saves an appointment and bumps the booking
// statistics on the owning profile, so a booking either fully registers or
// not at all.
func (s *sqlxStore) RecordAppointment(ctx context.Context, appt *Appointment) error {
	if appt == nil {
		return fmt.Errorf("cannot record nil appointment")
	}
	if appt.UserID == 0 {
		return fmt.Errorf("appointment must have a non-zero user_id")
	}
	if appt.StartsAt.IsZero() {
		return fmt.Errorf("appointment must have a non-zero start time")
	}

	appt.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for booking",
			"user_id", appt.UserID, "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				if !errors.Is(rollbackErr, sql.ErrTxDone) {
					s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
				}
			}
		}
	}()

	insert := `
		INSERT INTO appointments (user_id, subject, starts_at, ends_at, reminder_sent_at, created_at)
		VALUES (:user_id, :subject, :starts_at, :ends_at, :reminder_sent_at, :created_at)
	`
	result, err := tx.NamedExecContext(ctx, insert, appt)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error inserting appointment during booking",
			"user_id", appt.UserID, "error", err)
		return fmt.Errorf("failed to insert appointment for user %d: %w", appt.UserID, err)
	}
	if id, idErr := result.LastInsertId(); idErr == nil {
		//nolint:gosec // integer overflow conversion is acceptable here
		appt.ID = uint(id)
	}

	update := `
		UPDATE user_profiles SET
			total_appointments = total_appointments + 1,
			last_appointment = ?,
			updated_at = ?
		WHERE user_id = ?
	`
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, update, appt.StartsAt.UTC(), now, appt.UserID); err != nil {
		s.logger.ErrorContext(ctx, "Error updating booking statistics",
			"user_id", appt.UserID, "error", err)
		return fmt.Errorf("failed to update booking statistics for user %d: %w", appt.UserID, err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to commit booking transaction",
			"user_id", appt.UserID, "error", err)
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}
	tx = nil

	s.logger.InfoContext(ctx, "Appointment recorded",
		"user_id", appt.UserID, "appointment_id", appt.ID, "starts_at", appt.StartsAt)
	return nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	return nil
}

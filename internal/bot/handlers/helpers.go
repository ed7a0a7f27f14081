package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/stedbrown/ste-clone-bot/internal/calendar"
	"github.com/stedbrown/ste-clone-bot/internal/database"
)

const (
	dbOperationTimeout = 5 * time.Second
	sendMessageTimeout = 10 * time.Second
	aiReplyTimeout     = 2 * time.Minute

	displayDateTimeLayout = "02/01/2006 alle 15:04"
)

// sendText sends a plain text message with a bounded timeout, logging failures.
func sendText(ctx context.Context, b *bot.Bot, deps HandlerDeps, chatID int64, text string) {
	log := deps.Logger.With("component", "handlers")
	if text == "" || chatID == 0 {
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()

	if _, err := b.SendMessage(sendCtx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// loadOrCreateProfile fetches the caller's profile, creating a fresh one
// (with the immutable registration date) on first contact.
func loadOrCreateProfile(ctx context.Context, deps HandlerDeps, from *models.User) (*database.UserProfile, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	p, err := deps.Store.GetUserProfile(dbCtx, from.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for user %d: %w", from.ID, err)
	}
	if p != nil {
		return p, nil
	}

	p = &database.UserProfile{
		UserID:           from.ID,
		TelegramName:     from.FirstName,
		RegistrationDate: time.Now().UTC(),
	}
	saveCtx, cancelSave := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancelSave()
	if err := deps.Store.SaveUserProfile(saveCtx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile for user %d: %w", from.ID, err)
	}

	deps.Logger.InfoContext(ctx, "Created new user profile", "user_id", from.ID)
	return p, nil
}

// saveProfile persists a profile with a bounded timeout.
func saveProfile(ctx context.Context, deps HandlerDeps, p *database.UserProfile) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()
	return deps.Store.SaveUserProfile(dbCtx, p)
}

// companyInfo maps the fixed business configuration into the renderer input.
func companyInfo(deps HandlerDeps) calendar.CompanyInfo {
	return calendar.CompanyInfo{
		Name:    deps.Config.Company.Name,
		Email:   deps.Config.Company.Email,
		Phone:   deps.Config.Company.Phone,
		Website: deps.Config.Company.Website,
		Address: deps.Config.Company.Address,
	}
}

// completeBooking records the appointment, notifies the business calendar
// channel (the admin chat) with the full internal description, and hands the
// customer the calendar file. The two artifacts have opposite privacy rules:
// the internal one carries the whole profile, the user one only company data.
func completeBooking(ctx context.Context, b *bot.Bot, deps HandlerDeps, chatID int64, p *database.UserProfile, subject string, startsAt time.Time) {
	log := deps.Logger.With("component", "handlers")

	appt := &database.Appointment{
		UserID:   p.UserID,
		Subject:  subject,
		StartsAt: startsAt,
		EndsAt:   startsAt.Add(time.Duration(deps.Config.Booking.DurationMinutes) * time.Minute),
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	err := deps.Store.RecordAppointment(dbCtx, appt)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to record appointment", "error", err, "user_id", p.UserID)
		sendText(ctx, b, deps, chatID, deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	company := companyInfo(deps)

	// Business-facing artifact: full customer details, admin chat only.
	title := calendar.EventTitle(appt.Subject, p.FullName())
	description := calendar.InternalDescription(p, appt, company)
	if adminID := deps.Config.Telegram.AdminUserID; adminID != 0 && adminID != p.UserID {
		sendText(ctx, b, deps, adminID, "📅 "+title+"\n\n"+description)
	}
	log.InfoContext(ctx, "Booked appointment", "user_id", p.UserID, "title", title, "starts_at", appt.StartsAt)

	// User-facing artifact: the calendar file, company metadata only.
	ics := calendar.RenderICS(appt, company)

	confirmation := fmt.Sprintf(deps.Config.Messages.BookingConfirmed, appt.StartsAt.In(deps.Location).Format(displayDateTimeLayout))
	sendText(ctx, b, deps, chatID, confirmation)

	sendCtx, cancelSend := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancelSend()
	_, err = b.SendDocument(sendCtx, &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: "appuntamento.ics",
			Data:     bytes.NewReader(ics),
		},
		Caption: "📎 " + appt.Subject,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send calendar file", "error", err, "chat_id", chatID)
	}
}

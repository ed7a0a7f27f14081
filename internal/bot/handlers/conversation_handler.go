package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/stedbrown/ste-clone-bot/internal/booking"
	"github.com/stedbrown/ste-clone-bot/internal/config"
	"github.com/stedbrown/ste-clone-bot/internal/database"
	"github.com/stedbrown/ste-clone-bot/internal/extract"
	"github.com/stedbrown/ste-clone-bot/internal/profile"
	"github.com/stedbrown/ste-clone-bot/internal/validation"
)

// NewConversationHandler returns the default handler for plain text messages.
// It drives the registration conversation until the profile is complete, then
// watches for booking intent, and falls back to a conversational AI reply.
func NewConversationHandler(deps HandlerDeps) bot.HandlerFunc {
	return conversationHandler{deps}.Handle
}

type conversationHandler struct {
	deps HandlerDeps
}

func (h conversationHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "conversation")

	if update.Message == nil || update.Message.From == nil {
		return
	}
	text := strings.TrimSpace(update.Message.Text)
	if text == "" || strings.HasPrefix(text, "/") {
		return
	}
	chatID := update.Message.Chat.ID

	p, err := loadOrCreateProfile(ctx, h.deps, update.Message.From)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load profile", "error", err)
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	if kind, missing := profile.NextMissing(p); missing {
		h.handleRegistration(ctx, b, chatID, p, kind, text)
		return
	}

	if h.handleBooking(ctx, b, chatID, p, text) {
		return
	}

	h.handleChat(ctx, b, chatID, p, text)
}

// handleRegistration consumes one message as the answer to the next missing
// profile field, then prompts for the following one.
func (h conversationHandler) handleRegistration(ctx context.Context, b *bot.Bot, chatID int64, p *database.UserProfile, kind profile.FieldKind, text string) {
	log := h.deps.Logger.With("handler", "conversation")

	candidate, ok := h.fieldCandidate(ctx, kind, text)
	if !ok {
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.RepeatPlease+"\n\n"+askFor(h.deps.Config.Messages, kind))
		return
	}

	profile.Apply(p, kind, candidate)
	if err := saveProfile(ctx, h.deps, p); err != nil {
		log.ErrorContext(ctx, "Failed to save profile field", "error", err, "field", string(kind))
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}
	log.InfoContext(ctx, "Stored profile field", "user_id", p.UserID, "field", string(kind))

	if next, missing := profile.NextMissing(p); missing {
		sendText(ctx, b, h.deps, chatID, askFor(h.deps.Config.Messages, next))
		return
	}
	sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.RegistrationDone)
}

// fieldCandidate validates one message against the field being collected.
// Names and surnames go through the extraction cascade; the remaining fields
// use their direct validators.
func (h conversationHandler) fieldCandidate(ctx context.Context, kind profile.FieldKind, text string) (string, bool) {
	switch kind {
	case profile.FieldName:
		res := h.deps.Extractor.Extract(ctx, extract.KindName, text)
		return res.Candidate, res.Found()
	case profile.FieldSurname:
		res := h.deps.Extractor.Extract(ctx, extract.KindSurname, text)
		return res.Candidate, res.Found()
	case profile.FieldEmail:
		candidate := strings.TrimSpace(text)
		return candidate, validation.ValidEmail(candidate)
	case profile.FieldPhone:
		candidate := strings.TrimSpace(text)
		return candidate, validation.ValidPhone(candidate)
	case profile.FieldStreet, profile.FieldCity:
		candidate := strings.TrimSpace(text)
		return candidate, candidate != ""
	}
	return "", false
}

// askFor returns the configured prompt for a registration field.
func askFor(msgs config.MessagesConfig, kind profile.FieldKind) string {
	switch kind {
	case profile.FieldName:
		return msgs.AskName
	case profile.FieldSurname:
		return msgs.AskSurname
	case profile.FieldEmail:
		return msgs.AskEmail
	case profile.FieldPhone:
		return msgs.AskPhone
	case profile.FieldStreet:
		return msgs.AskStreet
	case profile.FieldCity:
		return msgs.AskCity
	}
	return msgs.RepeatPlease
}

// handleBooking reports whether the message was consumed by the booking flow.
// A message with booking intent but no parseable date parks the subject and
// asks for the date; the next parseable date completes the booking.
func (h conversationHandler) handleBooking(ctx context.Context, b *bot.Bot, chatID int64, p *database.UserProfile, text string) bool {
	if booking.HasIntent(text) {
		subject := booking.Subject(text)
		startsAt, err := booking.ParseDateTime(text, time.Now(), h.deps.Location)
		if err != nil {
			h.deps.Pending.Set(p.UserID, subject)
			sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.AskBookingDate)
			return true
		}
		h.deps.Pending.Pop(p.UserID)
		completeBooking(ctx, b, h.deps, chatID, p, subject, startsAt)
		return true
	}

	if subject, waiting := h.deps.Pending.Peek(p.UserID); waiting {
		startsAt, err := booking.ParseDateTime(text, time.Now(), h.deps.Location)
		if err != nil {
			sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.AskBookingDate)
			return true
		}
		h.deps.Pending.Pop(p.UserID)
		completeBooking(ctx, b, h.deps, chatID, p, subject, startsAt)
		return true
	}

	return false
}

// handleChat answers a registered user's message conversationally.
func (h conversationHandler) handleChat(ctx context.Context, b *bot.Bot, chatID int64, p *database.UserProfile, text string) {
	log := h.deps.Logger.With("handler", "conversation")

	if h.deps.GeminiClient == nil {
		return
	}

	aiCtx, cancel := context.WithTimeout(ctx, aiReplyTimeout)
	defer cancel()

	userName := p.Name
	if userName == "" {
		userName = p.TelegramName
	}
	reply, err := h.deps.GeminiClient.GenerateReply(aiCtx, userName, text)
	if err != nil {
		log.ErrorContext(ctx, "Failed to generate AI reply", "error", err, "user_id", p.UserID)
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}
	sendText(ctx, b, h.deps, chatID, reply)
}

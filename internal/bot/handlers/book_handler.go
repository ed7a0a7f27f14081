package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/stedbrown/ste-clone-bot/internal/booking"
	"github.com/stedbrown/ste-clone-bot/internal/profile"
)

// NewBookHandler returns a handler for the /prenota command. The command
// accepts a free-form argument, e.g. "/prenota riparazione domani alle 15".
func NewBookHandler(deps HandlerDeps) bot.HandlerFunc {
	return bookHandler{deps}.Handle
}

type bookHandler struct {
	deps HandlerDeps
}

func (h bookHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "book")

	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID

	p, err := loadOrCreateProfile(ctx, h.deps, update.Message.From)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load profile", "error", err)
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	// Booking needs a complete profile; resume registration instead.
	if kind, missing := profile.NextMissing(p); missing {
		sendText(ctx, b, h.deps, chatID, askFor(h.deps.Config.Messages, kind))
		return
	}

	args := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/prenota"))
	subject := booking.Subject(args)

	startsAt, err := booking.ParseDateTime(args, time.Now(), h.deps.Location)
	if err != nil {
		h.deps.Pending.Set(p.UserID, subject)
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.AskBookingDate)
		return
	}

	completeBooking(ctx, b, h.deps, chatID, p, subject, startsAt)
}

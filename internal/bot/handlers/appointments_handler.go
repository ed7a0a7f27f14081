package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewAppointmentsHandler returns a handler for the /appuntamenti command,
// which lists the caller's upcoming appointments.
func NewAppointmentsHandler(deps HandlerDeps) bot.HandlerFunc {
	return appointmentsHandler{deps}.Handle
}

type appointmentsHandler struct {
	deps HandlerDeps
}

func (h appointmentsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "appointments")

	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	appts, err := h.deps.Store.GetUpcomingAppointments(dbCtx, userID, time.Now().UTC())
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to list appointments", "error", err, "user_id", userID)
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	if len(appts) == 0 {
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.NoAppointments)
		return
	}

	var sb strings.Builder
	sb.WriteString("📅 I tuoi appuntamenti:\n\n")
	for i, a := range appts {
		sb.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, a.Subject, a.StartsAt.In(h.deps.Location).Format(displayDateTimeLayout)))
	}

	sendText(ctx, b, h.deps, chatID, sb.String())
}

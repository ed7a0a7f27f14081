package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewCancelHandler returns a handler for the /cancella command, which
// abandons a booking that is still waiting for a date. Without it a parked
// booking would keep swallowing every message as a date attempt.
func NewCancelHandler(deps HandlerDeps) bot.HandlerFunc {
	return cancelHandler{deps}.Handle
}

type cancelHandler struct {
	deps HandlerDeps
}

func (h cancelHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "cancel")

	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	if _, ok := h.deps.Pending.Pop(userID); !ok {
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.NothingToCancel)
		return
	}

	log.InfoContext(ctx, "Cancelled pending booking", "user_id", userID)
	sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.BookingCancelled)
}

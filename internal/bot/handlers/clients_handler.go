package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewClientsHandler returns the admin-only /clienti handler, which lists all
// registered customer profiles.
func NewClientsHandler(deps HandlerDeps) bot.HandlerFunc {
	return clientsHandler{deps}.Handle
}

type clientsHandler struct {
	deps HandlerDeps
}

func (h clientsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "clients")

	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	profiles, err := h.deps.Store.GetAllUserProfiles(dbCtx)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to list profiles", "error", err)
		sendText(ctx, b, h.deps, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	if len(profiles) == 0 {
		sendText(ctx, b, h.deps, chatID, "Nessun cliente registrato.")
		return
	}

	ids := make([]int64, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Clienti registrati: %d\n\n", len(profiles)))
	for _, id := range ids {
		p := profiles[id]
		name := p.FullName()
		if name == "" {
			name = p.TelegramName
		}
		sb.WriteString(fmt.Sprintf("• %s (ID %d) — appuntamenti: %d\n", name, id, p.TotalAppointments))
	}

	sendText(ctx, b, h.deps, chatID, sb.String())
}

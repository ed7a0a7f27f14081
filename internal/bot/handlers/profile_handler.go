package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewProfileHandler returns a handler for the /profilo command, which shows
// the caller their own stored data.
func NewProfileHandler(deps HandlerDeps) bot.HandlerFunc {
	return profileHandler{deps}.Handle
}

type profileHandler struct {
	deps HandlerDeps
}

func (h profileHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "profile")

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

	var sb strings.Builder
	sb.WriteString("👤 Il tuo profilo\n\n")
	writeLine := func(label, value string) {
		if value != "" {
			sb.WriteString(label + ": " + value + "\n")
		}
	}
	writeLine("Nome", p.Name)
	writeLine("Cognome", p.Surname)
	writeLine("Email", p.Email)
	writeLine("Telefono", p.Phone)
	writeLine("Via", p.Street)
	writeLine("Città", p.City)

	sb.WriteString(fmt.Sprintf("\nAppuntamenti totali: %d\n", p.TotalAppointments))
	if p.LastAppointment.Valid {
		sb.WriteString("Ultimo appuntamento: " + p.LastAppointment.Time.In(h.deps.Location).Format(displayDateTimeLayout) + "\n")
	}
	sb.WriteString("Registrato il: " + p.RegistrationDate.Format("02/01/2006"))

	sendText(ctx, b, h.deps, chatID, sb.String())
}

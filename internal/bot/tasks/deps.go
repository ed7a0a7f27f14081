// Package tasks implements scheduled tasks for the appointment bot.
// It includes task definitions, dependencies, and registration mechanisms.
package tasks

import (
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/stedbrown/ste-clone-bot/internal/config"
	"github.com/stedbrown/ste-clone-bot/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
// It provides access to logging, database, the Telegram client, and configuration.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	TgBot  *tgbot.Bot
	Config *config.Config
}

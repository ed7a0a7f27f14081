// Package config provides configuration loading, validation, and management
// for the appointment bot. It handles reading from YAML files, environment
// variables, default values, and validating configuration parameters.
package config

import (
	"github.com/go-telegram/bot/models"
)

// Config defines the application configuration parameters for all components.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Company   CompanyConfig   `mapstructure:"company"`
	Booking   BookingConfig   `mapstructure:"booking"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot token, the admin user, and runtime bot info.
type TelegramConfig struct {
	Token       string `mapstructure:"token"         validate:"required"`
	AdminUserID int64  `mapstructure:"admin_user_id" validate:"required,gt=0"`

	// BotInfo is populated at startup from GetMe, not from the config file.
	BotInfo *models.User `mapstructure:"-"`
}

// DatabaseConfig holds SQLite connection settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// GeminiConfig holds Gemini API client settings.
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key" validate:"required"`
	ModelName         string  `mapstructure:"model_name" validate:"required"`
	Temperature       float32 `mapstructure:"temperature" validate:"min=0,max=2"`
	MaxRetries        int     `mapstructure:"max_retries" validate:"min=0,max=5"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"min=1,max=60"`
	SystemInstruction string  `mapstructure:"system_instruction"`
}

// CompanyConfig is the fixed business metadata rendered into calendar
// artifacts. Read-only after startup.
type CompanyConfig struct {
	Name    string `mapstructure:"name"    validate:"required"`
	Email   string `mapstructure:"email"   validate:"required,email"`
	Phone   string `mapstructure:"phone"   validate:"required"`
	Website string `mapstructure:"website" validate:"required"`
	Address string `mapstructure:"address" validate:"required"`
}

// BookingConfig controls appointment defaults.
type BookingConfig struct {
	Timezone        string `mapstructure:"timezone"         validate:"required"`
	DurationMinutes int    `mapstructure:"duration_minutes" validate:"min=15,max=480"`
}

// SchedulerConfig holds the scheduled task table.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a named task and sets its cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// MessagesConfig collects the user-visible Italian strings so operators can
// adjust the bot's voice without touching code.
type MessagesConfig struct {
	Welcome              string `mapstructure:"welcome"`
	ErrorUnauthorizedMsg string `mapstructure:"error_unauthorized"`
	ErrorGeneralMsg      string `mapstructure:"error_general"`

	AskName    string `mapstructure:"ask_name"`
	AskSurname string `mapstructure:"ask_surname"`
	AskEmail   string `mapstructure:"ask_email"`
	AskPhone   string `mapstructure:"ask_phone"`
	AskStreet  string `mapstructure:"ask_street"`
	AskCity    string `mapstructure:"ask_city"`

	RepeatPlease     string `mapstructure:"repeat_please"`
	RegistrationDone string `mapstructure:"registration_done"`

	AskBookingDate   string `mapstructure:"ask_booking_date"`
	BookingConfirmed string `mapstructure:"booking_confirmed"`
	BookingCancelled string `mapstructure:"booking_cancelled"`
	NothingToCancel  string `mapstructure:"nothing_to_cancel"`
	NoAppointments   string `mapstructure:"no_appointments"`
	Reminder         string `mapstructure:"reminder"`
}

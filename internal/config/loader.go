package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration from:
// 1. Default values
// 2. The YAML file at configPath (optional)
// 3. BOT_* environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath)))
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Dir(configPath))

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing config file is fine; env vars and defaults apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	v.SetDefault("database.path", "storage.db")

	v.SetDefault("gemini.model_name", "gemini-2.0-flash")
	v.SetDefault("gemini.temperature", 0.7)
	v.SetDefault("gemini.max_retries", 2)
	v.SetDefault("gemini.retry_delay_seconds", 2)
	v.SetDefault("gemini.system_instruction",
		"Sei l'assistente virtuale di un'azienda informatica. Rispondi in italiano, in modo cordiale e conciso.")

	v.SetDefault("booking.timezone", "Europe/Rome")
	v.SetDefault("booking.duration_minutes", 60)

	v.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.sql_maintenance.schedule", "0 0 4 * * *")
	v.SetDefault("scheduler.tasks.appointment_reminder.enabled", true)
	v.SetDefault("scheduler.tasks.appointment_reminder.schedule", "0 */5 * * * *")

	v.SetDefault("messages.welcome",
		"👋 Ciao! Sono l'assistente virtuale. Per iniziare, come ti chiami?")
	v.SetDefault("messages.error_unauthorized", "🚫 Non sei autorizzato a usare questo comando.")
	v.SetDefault("messages.error_general", "❌ Si è verificato un errore. Riprova più tardi.")

	v.SetDefault("messages.ask_name", "Come ti chiami?")
	v.SetDefault("messages.ask_surname", "Qual è il tuo cognome?")
	v.SetDefault("messages.ask_email", "Qual è la tua email?")
	v.SetDefault("messages.ask_phone", "Qual è il tuo numero di telefono?")
	v.SetDefault("messages.ask_street", "In che via abiti?")
	v.SetDefault("messages.ask_city", "In che città abiti?")

	v.SetDefault("messages.repeat_please", "Non ho capito, puoi ripetere? 🙏")
	v.SetDefault("messages.registration_done",
		"✅ Registrazione completata! Ora puoi prenotare un appuntamento quando vuoi.")

	v.SetDefault("messages.ask_booking_date",
		"Quando vorresti l'appuntamento? (es. \"domani alle 15\", \"venerdì alle 10:30\", \"20/10 alle 16\")")
	v.SetDefault("messages.booking_confirmed", "✅ Appuntamento confermato per il %s! In allegato trovi il file per il tuo calendario. 📅")
	v.SetDefault("messages.booking_cancelled", "❌ Prenotazione annullata. Quando vuoi ricominciare, scrivimi pure!")
	v.SetDefault("messages.nothing_to_cancel", "Non c'è nessuna prenotazione in corso da annullare.")
	v.SetDefault("messages.no_appointments", "Non hai appuntamenti in programma.")
	v.SetDefault("messages.reminder", "⏰ Promemoria: hai un appuntamento (%s) il %s.")
}

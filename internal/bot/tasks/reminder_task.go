package tasks

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
)

// reminderWindow is how far ahead the reminder task looks for appointments.
const reminderWindow = time.Hour

// newAppointmentReminderTask creates the scheduled task that messages users
// about appointments starting within the next hour. Each appointment is
// reminded at most once; the sent marker is persisted in the same run.
func newAppointmentReminderTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "appointment_reminder")

	return func(ctx context.Context) error {
		now := time.Now().UTC()

		due, err := deps.Store.GetAppointmentsDue(ctx, now, now.Add(reminderWindow))
		if err != nil {
			log.ErrorContext(ctx, "Failed to query due appointments", "error", err)
			return fmt.Errorf("failed to query due appointments: %w", err)
		}
		if len(due) == 0 {
			return nil
		}

		loc := time.UTC
		if tz, tzErr := time.LoadLocation(deps.Config.Booking.Timezone); tzErr == nil {
			loc = tz
		}

		sent := make([]uint, 0, len(due))
		for _, appt := range due {
			text := fmt.Sprintf(deps.Config.Messages.Reminder,
				appt.Subject, appt.StartsAt.In(loc).Format("02/01/2006 alle 15:04"))

			_, sendErr := deps.TgBot.SendMessage(ctx, &tgbot.SendMessageParams{
				ChatID: appt.UserID,
				Text:   text,
			})
			if sendErr != nil {
				log.ErrorContext(ctx, "Failed to send reminder",
					"error", sendErr, "appointment_id", appt.ID, "user_id", appt.UserID)
				continue
			}
			sent = append(sent, appt.ID)
		}

		if len(sent) > 0 {
			if err := deps.Store.MarkRemindersSent(ctx, sent); err != nil {
				log.ErrorContext(ctx, "Failed to mark reminders as sent", "error", err)
				return fmt.Errorf("failed to mark reminders as sent: %w", err)
			}
		}

		log.InfoContext(ctx, "Reminder task completed", "due", len(due), "sent", len(sent))
		return nil
	}
}

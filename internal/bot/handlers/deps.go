package handlers

import (
	"log/slog"
	"sync"
	"time"

	"github.com/stedbrown/ste-clone-bot/internal/config"
	"github.com/stedbrown/ste-clone-bot/internal/database"
	"github.com/stedbrown/ste-clone-bot/internal/extract"
	"github.com/stedbrown/ste-clone-bot/internal/gemini"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger       *slog.Logger
	Config       *config.Config
	Store        database.Store
	GeminiClient gemini.Client
	Extractor    *extract.Cascade
	Pending      *PendingBookings

	// Location is the booking timezone resolved at startup.
	Location *time.Location
}

// PendingBookings tracks, per user, the subject of a booking that is still
// waiting for a date. State is in-memory only; a restart just means the user
// has to repeat the date.
type PendingBookings struct {
	mu       sync.Mutex
	subjects map[int64]string
}

// NewPendingBookings creates an empty pending-booking table.
func NewPendingBookings() *PendingBookings {
	return &PendingBookings{subjects: make(map[int64]string)}
}

// Set parks a booking subject for the user until a date arrives.
func (pb *PendingBookings) Set(userID int64, subject string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.subjects[userID] = subject
}

// Pop returns and clears the user's parked subject, if any.
func (pb *PendingBookings) Pop(userID int64) (string, bool) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	subject, ok := pb.subjects[userID]
	if ok {
		delete(pb.subjects, userID)
	}
	return subject, ok
}

// Peek reports the user's parked subject without clearing it.
func (pb *PendingBookings) Peek(userID int64) (string, bool) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	subject, ok := pb.subjects[userID]
	return subject, ok
}

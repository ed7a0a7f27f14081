package handlers_test

import (
	"testing"

	"github.com/stedbrown/ste-clone-bot/internal/bot/handlers"
)

func TestPendingBookings(t *testing.T) {
	t.Parallel()

	pb := handlers.NewPendingBookings()

	if _, ok := pb.Peek(1); ok {
		t.Fatal("Peek() on empty table reported a pending booking")
	}
	if _, ok := pb.Pop(1); ok {
		t.Fatal("Pop() on empty table reported a pending booking")
	}

	pb.Set(1, "Riparazione")
	pb.Set(2, "Consulenza")

	if subject, ok := pb.Peek(1); !ok || subject != "Riparazione" {
		t.Errorf("Peek(1) = %q, %v, want %q, true", subject, ok, "Riparazione")
	}
	if subject, ok := pb.Peek(1); !ok || subject != "Riparazione" {
		t.Errorf("second Peek(1) = %q, %v, want value preserved", subject, ok)
	}

	if subject, ok := pb.Pop(1); !ok || subject != "Riparazione" {
		t.Errorf("Pop(1) = %q, %v, want %q, true", subject, ok, "Riparazione")
	}
	if _, ok := pb.Peek(1); ok {
		t.Error("Peek(1) after Pop still reports a pending booking")
	}

	if subject, ok := pb.Pop(2); !ok || subject != "Consulenza" {
		t.Errorf("Pop(2) = %q, %v, want %q, true", subject, ok, "Consulenza")
	}
}

func TestPendingBookingsOverwrite(t *testing.T) {
	t.Parallel()

	pb := handlers.NewPendingBookings()
	pb.Set(7, "Consulenza")
	pb.Set(7, "Preventivo")

	if subject, ok := pb.Pop(7); !ok || subject != "Preventivo" {
		t.Errorf("Pop(7) = %q, %v, want latest subject %q", subject, ok, "Preventivo")
	}
}

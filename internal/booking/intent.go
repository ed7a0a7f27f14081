// Package booking implements appointment intent detection and natural
// Italian date/time parsing for the booking conversation.
package booking

import "strings"

// intentKeywords are the phrases that mark a message as a booking request.
var intentKeywords = []string{
	"prenota",
	"prenotare",
	"prenotazione",
	"appuntamento",
	"fissare",
	"fissiamo",
	"consulenza",
	"riparazione",
	"preventivo",
	"assistenza",
	"sopralluogo",
}

// subjectKeywords map trigger words to the canonical appointment subject.
// Order matters: the first match wins.
var subjectKeywords = []struct {
	keyword string
	subject string
}{
	{"consulenza", "Consulenza"},
	{"riparazione", "Riparazione"},
	{"preventivo", "Preventivo"},
	{"assistenza", "Assistenza"},
	{"sopralluogo", "Sopralluogo"},
	{"installazione", "Installazione"},
}

// DefaultSubject is used when the message carries no recognizable subject.
const DefaultSubject = "Appuntamento"

// HasIntent reports whether the message looks like a booking request.
func HasIntent(text string) bool {
	text = strings.ToLower(text)
	for _, kw := range intentKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Subject derives the appointment subject from the message, falling back to
// DefaultSubject when no known keyword appears.
func Subject(text string) string {
	text = strings.ToLower(text)
	for _, sk := range subjectKeywords {
		if strings.Contains(text, sk.keyword) {
			return sk.subject
		}
	}
	return DefaultSubject
}

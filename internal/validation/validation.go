// Package validation provides pure field validators and normalizers for
// customer data extracted from conversational text.
package validation

import (
	"strings"
	"unicode"
)

const (
	minNameLength = 2
	maxNameLength = 30

	minPhoneDigits = 6
	maxPhoneDigits = 15
)

// fillerWords lists Italian conversational words that are never valid names.
// Extraction frequently captures fragments of the surrounding phrase; any
// candidate containing one of these is rejected outright.
var fillerWords = map[string]struct{}{
	"ciao":    {},
	"salve":   {},
	"come":    {},
	"stai":    {},
	"sto":     {},
	"sono":    {},
	"mi":      {},
	"chiamo":  {},
	"chiamano": {},
	"il":      {},
	"la":      {},
	"mio":     {},
	"mia":     {},
	"nome":    {},
	"cognome": {},
	"si":      {},
	"no":      {},
	"ok":      {},
	"grazie":  {},
	"prego":   {},
	"bene":    {},
	"male":    {},
	"scusa":   {},
	"aiuto":   {},
	"tu":      {},
	"lei":     {},
	"voi":     {},
	"buongiorno": {},
	"buonasera":  {},
}

// ValidName reports whether candidate is acceptable as a person's name or
// surname: 2-30 characters, letters/spaces/apostrophes only, and no
// conversational filler words.
func ValidName(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if len([]rune(candidate)) < minNameLength || len([]rune(candidate)) > maxNameLength {
		return false
	}

	for _, r := range candidate {
		if !unicode.IsLetter(r) && r != ' ' && r != '\'' {
			return false
		}
	}

	for _, word := range strings.Fields(strings.ToLower(candidate)) {
		if _, banned := fillerWords[word]; banned {
			return false
		}
		// Single-letter words are conjunctions or fragments, never names.
		if len([]rune(word)) < minNameLength {
			return false
		}
	}

	return true
}

// CleanName strips characters that cannot appear in a name, collapses
// whitespace, and title-cases each word. It does not validate the result;
// callers run ValidName on the cleaned value.
func CleanName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || r == ' ' || r == '\'' {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ValidEmail performs the minimal structural check used throughout the bot:
// the address must contain both "@" and "." and no whitespace.
func ValidEmail(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || strings.ContainsAny(candidate, " \t\n") {
		return false
	}
	at := strings.Index(candidate, "@")
	if at <= 0 || at == len(candidate)-1 {
		return false
	}
	return strings.Contains(candidate[at:], ".")
}

// ValidPhone reports whether candidate looks like a phone number:
// digits plus common separators, with 6-15 digits total.
func ValidPhone(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}

	digits := 0
	for i, r := range candidate {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

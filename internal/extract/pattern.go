// Package extract implements the name-extraction cascade: a single AI
// attempt with a deterministic pattern-matching fallback over Italian
// self-introduction phrasings.
package extract

import (
	"regexp"
	"strings"

	"github.com/stedbrown/ste-clone-bot/internal/validation"
)

// Kind selects which field a cascade run targets.
type Kind int

const (
	KindName Kind = iota
	KindSurname
)

func (k Kind) String() string {
	if k == KindSurname {
		return "surname"
	}
	return "name"
}

// Patterns are tried in order against the lowercased utterance; the first
// capture that survives cleaning and validation wins. The bare pattern
// handles single-token answers ("francesco") to a direct question.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`mi chiamo\s+([a-zA-ZÀ-ÿ' ]+)`),
	regexp.MustCompile(`il mio nome è\s+([a-zA-ZÀ-ÿ' ]+)`),
	regexp.MustCompile(`mi chiamano\s+([a-zA-ZÀ-ÿ' ]+)`),
	regexp.MustCompile(`sono\s+([a-zA-ZÀ-ÿ' ]+)`),
	regexp.MustCompile(`^([a-zA-ZÀ-ÿ']+)$`),
}

var surnamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`il mio cognome è\s+([a-zA-ZÀ-ÿ' ]+)`),
	regexp.MustCompile(`di cognome faccio\s+([a-zA-ZÀ-ÿ' ]+)`),
	regexp.MustCompile(`cognome\s+([a-zA-ZÀ-ÿ' ]+)`),
	regexp.MustCompile(`^([a-zA-ZÀ-ÿ']+)$`),
}

// ByPattern runs the deterministic template patterns for the given kind.
// It returns the cleaned, title-cased candidate and whether one validated.
func ByPattern(kind Kind, text string) (string, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}

	patterns := namePatterns
	if kind == KindSurname {
		patterns = surnamePatterns
	}

	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		candidate := validation.CleanName(m[1])
		if validation.ValidName(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Package profile implements merge rules for writing extracted fields into
// user profiles and tracking registration progress.
package profile

import (
	"strings"

	"github.com/stedbrown/ste-clone-bot/internal/database"
)

// FieldKind identifies which profile field an extracted candidate targets.
type FieldKind string

const (
	FieldName    FieldKind = "name"
	FieldSurname FieldKind = "surname"
	FieldEmail   FieldKind = "email"
	FieldPhone   FieldKind = "phone"
	FieldStreet  FieldKind = "street"
	FieldCity    FieldKind = "city"
)

// registrationOrder is the sequence of fields the registration conversation
// collects. NextMissing walks it front to back.
var registrationOrder = []FieldKind{
	FieldName,
	FieldSurname,
	FieldEmail,
	FieldPhone,
	FieldStreet,
	FieldCity,
}

// Apply writes a validated candidate into the profile field selected by kind.
// Empty candidates are ignored so a failed extraction can never clear a field
// that was already set. Returns whether the profile was modified.
func Apply(p *database.UserProfile, kind FieldKind, candidate string) bool {
	if p == nil {
		return false
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}

	switch kind {
	case FieldName:
		if p.Name == candidate {
			return false
		}
		p.Name = candidate
	case FieldSurname:
		if p.Surname == candidate {
			return false
		}
		p.Surname = candidate
	case FieldEmail:
		if p.Email == candidate {
			return false
		}
		p.Email = candidate
	case FieldPhone:
		if p.Phone == candidate {
			return false
		}
		p.Phone = candidate
	case FieldStreet:
		if p.Street == candidate {
			return false
		}
		p.Street = candidate
	case FieldCity:
		if p.City == candidate {
			return false
		}
		p.City = candidate
	default:
		return false
	}
	return true
}

// Get returns the current value of the profile field selected by kind.
func Get(p *database.UserProfile, kind FieldKind) string {
	if p == nil {
		return ""
	}
	switch kind {
	case FieldName:
		return p.Name
	case FieldSurname:
		return p.Surname
	case FieldEmail:
		return p.Email
	case FieldPhone:
		return p.Phone
	case FieldStreet:
		return p.Street
	case FieldCity:
		return p.City
	}
	return ""
}

// NextMissing returns the first registration field that is still empty and
// whether one exists. A profile with no missing fields is fully registered.
func NextMissing(p *database.UserProfile) (FieldKind, bool) {
	if p == nil {
		return FieldName, true
	}
	for _, kind := range registrationOrder {
		if strings.TrimSpace(Get(p, kind)) == "" {
			return kind, true
		}
	}
	return "", false
}

// Complete reports whether every registration field is populated.
func Complete(p *database.UserProfile) bool {
	_, missing := NextMissing(p)
	return !missing
}

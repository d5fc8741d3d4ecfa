package handlers

import (
	"strings"
	"unicode/utf8"

	"ceremony/internal/models"
)

// Validation limits for RSVP form fields.
const (
	maxNameLen      = 200
	maxAllergiesLen = 500
	maxMessageLen   = 2_000
	maxPartySize    = 20
)

// validateRSVP checks a submission and returns the first error found, or
// the empty string when the submission is acceptable. The name is trimmed
// in place.
func validateRSVP(sub *models.RSVPSubmission) string {
	sub.Name = strings.TrimSpace(sub.Name)
	if sub.Name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(sub.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if sub.Status != models.RSVPStatusAttending && sub.Status != models.RSVPStatusDeclined {
		return "Status must be attending or declined."
	}
	if sub.Adults < 0 || sub.Adults > maxPartySize {
		return "Adults must be between 0 and 20."
	}
	if sub.Children < 0 || sub.Children > maxPartySize {
		return "Children must be between 0 and 20."
	}
	if sub.Status == models.RSVPStatusAttending && sub.Adults == 0 {
		return "At least one adult is required when attending."
	}
	if utf8.RuneCountInString(sub.Allergies) > maxAllergiesLen {
		return "Allergies note is too long (max 500 characters)."
	}
	if utf8.RuneCountInString(sub.Message) > maxMessageLen {
		return "Message is too long (max 2,000 characters)."
	}
	return ""
}

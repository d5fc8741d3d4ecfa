// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// RSVPStatus is a guest's answer to an invitation.
type RSVPStatus string

const (
	RSVPStatusAttending RSVPStatus = "attending"
	RSVPStatusDeclined  RSVPStatus = "declined"
)

// RSVPSubmission is the completion event produced when a guest fills the
// RSVP form. The rendering core does not persist it; it is handed off to
// the external submission collaborator as-is.
type RSVPSubmission struct {
	Name      string     `json:"name"`
	Status    RSVPStatus `json:"status"`
	Adults    int        `json:"adults"`
	Children  int        `json:"children"`
	Allergies string     `json:"allergies,omitempty"`
	Message   string     `json:"message,omitempty"`
}

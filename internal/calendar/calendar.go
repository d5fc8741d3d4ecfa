// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package calendar produces downloadable iCalendar artifacts for
// invitations, so guests can add the event to their own calendars.
package calendar

import (
	"strings"
	"time"
)

// DefaultDuration is assumed when the event has no explicit end time.
const DefaultDuration = 4 * time.Hour

const prodID = "-//Invitation Web App//NONSGML v1.0//EN"

// Event is the input contract for calendar export.
type Event struct {
	Title       string
	Date        time.Time
	Location    string
	Description string
}

// ICS renders the event as an iCalendar (RFC 5545) document. Lines are
// CRLF-separated as the format requires.
func ICS(ev Event) []byte {
	start := ev.Date.UTC()
	end := start.Add(DefaultDuration)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"BEGIN:VEVENT",
		"DTSTART:" + formatICSTime(start),
		"DTEND:" + formatICSTime(end),
		"SUMMARY:" + escapeText(ev.Title),
		"LOCATION:" + escapeText(ev.Location),
		"DESCRIPTION:" + escapeText(ev.Description),
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return []byte(strings.Join(lines, "\r\n"))
}

// Filename derives the download filename from the event title.
func Filename(title string) string {
	name := strings.Join(strings.Fields(title), "_")
	if name == "" {
		name = "event"
	}
	return name + ".ics"
}

func formatICSTime(t time.Time) string {
	return t.Format("20060102T150405Z")
}

// escapeText escapes the characters RFC 5545 reserves in text values.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

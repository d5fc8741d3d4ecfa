// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"fmt"

	"ceremony/internal/models"
)

// French month names, indexed by time.Month-1.
var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// formatEventDate renders the event date in the fixed French long format
// used everywhere in invitations: "24 décembre 2026 à 18h30". Unparseable
// values pass through unchanged rather than erroring.
func formatEventDate(ev *models.EventData) string {
	t, ok := ev.Date()
	if !ok {
		return ev.EventDate
	}
	return fmt.Sprintf("%d %s %d à %02dh%02d",
		t.Day(), frenchMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

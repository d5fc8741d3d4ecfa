// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package eventdata

import "ceremony/internal/models"

// DemoEvent returns canned event data for the demo tokens used in sales
// previews, or false when the token is not a demo token. A fresh value is
// returned on every call so no caller can mutate shared state.
func DemoEvent(token string) (*models.EventData, bool) {
	switch token {
	case "demo", "demo-token", "wedding":
		return demoWedding(), true
	case "birthday":
		ev := demoWedding()
		ev.TemplateID = 7
		ev.EventType = models.EventTypeBirthday
		ev.Title = "Sweet 16th Anniversary"
		ev.CelebrantName = "Dribbble"
		ev.Age = models.FlexInt{Value: 16, Set: true}
		ev.CelebrantPhotoURL = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=400"
		return ev, true
	case "corporate":
		ev := demoWedding()
		ev.EventType = models.EventTypeCorporate
		ev.Title = "Sommet de l'Innovation 2026"
		ev.CompanyName = "TechElite Global"
		ev.CompanyLogoURL = "https://images.unsplash.com/photo-1560179707-f14e90ef3623?auto=format&fit=crop&q=80&w=400"
		ev.Agenda = models.Agenda{"09:00 - Keynote", "12:00 - Déjeuner Networking", "15:00 - Workshops"}
		return ev, true
	}
	return nil, false
}

func demoWedding() *models.EventData {
	return &models.EventData{
		TemplateID: 1,
		Title:      "Mariage d'Elegance & Prestige",
		EventDate:  "2026-12-24T18:30:00Z",
		EventType:  models.EventTypeWedding,
		DressCode:  "Black Tie / Tenue de Soirée",
		Host:       "La Famille Royale",
		Location: &models.Location{
			Name:    "Palais Bourbon",
			Address: "126 Rue de l'Université, 75007 Paris",
			City:    "Paris",
			Country: "FR",
			Lat:     48.8618,
			Lng:     2.3186,
		},
		GroomName:     "Jean-Baptiste",
		BrideName:     "Marie-Antoinette",
		GroomPhotoURL: "https://images.unsplash.com/photo-1550005816-19aa849a502c?auto=format&fit=crop&q=80&w=400",
		BridePhotoURL: "https://images.unsplash.com/photo-1594462753934-895842be4a1b?auto=format&fit=crop&q=80&w=400",
	}
}

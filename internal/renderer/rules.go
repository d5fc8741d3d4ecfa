// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package renderer

import (
	"fmt"

	"ceremony/internal/catalog"
	"ceremony/internal/models"
)

// Names shown for a wedding couple when one side is missing.
const (
	defaultGroomName = "Le Marié"
	defaultBrideName = "La Mariée"
)

// Fallback stock photos used when the event carries no uploaded image.
const (
	fallbackGroomPhotoURL    = "https://images.unsplash.com/photo-1550005816-19aa849a502c?auto=format&fit=crop&q=80&w=400"
	fallbackBridePhotoURL    = "https://images.unsplash.com/photo-1594462753934-895842be4a1b?auto=format&fit=crop&q=80&w=400"
	fallbackPortraitPhotoURL = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=400"
	fallbackLogoURL          = "https://images.unsplash.com/photo-1560179707-f14e90ef3623?auto=format&fit=crop&q=80&w=400"
)

// textRules maps a text element id to its resolution function. Each rule
// recovers missing data into an empty or fallback string; none may error.
// Ids absent from this table fall back to the element's literal content.
var textRules = map[string]func(*models.EventData) string{
	"title": func(ev *models.EventData) string { return ev.Title },
	"host": func(ev *models.EventData) string {
		if ev.Host != "" {
			return ev.Host
		}
		return ev.Title
	},
	"date": formatEventDate,
	"location": func(ev *models.EventData) string {
		loc := ev.ResolvedLocation()
		if loc == nil {
			return ""
		}
		return loc.Name + "\n" + loc.Address
	},
	"dress_code": func(ev *models.EventData) string { return ev.DressCode },
	"hashtag":    func(ev *models.EventData) string { return ev.CustomString("hashtag") },

	"names":        coupleNames,
	"couple_names": coupleNames,

	"groom_name":     func(ev *models.EventData) string { return ev.GroomName },
	"bride_name":     func(ev *models.EventData) string { return ev.BrideName },
	"celebrant_name": func(ev *models.EventData) string { return ev.CelebrantName },
	"age": func(ev *models.EventData) string {
		if !ev.Age.Set {
			return ""
		}
		return fmt.Sprintf("%d Ans", ev.Age.Value)
	},
	"company_name": func(ev *models.EventData) string { return ev.CompanyName },
	"agenda":       func(ev *models.EventData) string { return ev.Agenda.Join() },
}

// resolveText applies the id-keyed rule table, falling back to the
// element's literal content (possibly empty) for unmatched ids.
func resolveText(el catalog.TemplateElement, ev *models.EventData) string {
	if rule, ok := textRules[el.ID]; ok {
		return rule(ev)
	}
	return el.Content
}

// coupleNames renders the headline names per event type: the couple for
// weddings, the celebrant for birthdays, the company for corporate events.
func coupleNames(ev *models.EventData) string {
	switch ev.EventType {
	case models.EventTypeWedding:
		groom := ev.GroomName
		if groom == "" {
			groom = defaultGroomName
		}
		bride := ev.BrideName
		if bride == "" {
			bride = defaultBrideName
		}
		return groom + " & " + bride
	case models.EventTypeBirthday:
		return ev.CelebrantName
	case models.EventTypeCorporate:
		return ev.CompanyName
	}
	return ""
}

// resolveImage applies the (id, event type) image rules. Wedding couple
// photos produce a two-image result; corporate logos get a rectangular
// mask while everything else clips to a circle.
func resolveImage(el catalog.TemplateElement, ev *models.EventData) *ResolvedContent {
	switch ev.EventType {
	case models.EventTypeWedding:
		switch el.ID {
		case "groom_photo":
			return singleImage(orFallback(ev.GroomPhotoURL, fallbackGroomPhotoURL), MaskCircle)
		case "bride_photo":
			return singleImage(orFallback(ev.BridePhotoURL, fallbackBridePhotoURL), MaskCircle)
		case "photo", "couple_photo":
			return &ResolvedContent{Kind: ContentImagePair, Images: &ImagePairPayload{
				Groom: ImagePayload{URL: orFallback(ev.GroomPhotoURL, fallbackGroomPhotoURL), Mask: MaskCircle},
				Bride: ImagePayload{URL: orFallback(ev.BridePhotoURL, fallbackBridePhotoURL), Mask: MaskCircle},
			}}
		}

	case models.EventTypeBirthday:
		switch el.ID {
		case "photo", "celebrant_photo":
			return singleImage(orFallback(ev.CelebrantPhotoURL, fallbackPortraitPhotoURL), MaskCircle)
		}

	case models.EventTypeCorporate:
		switch el.ID {
		case "logo", "company_logo":
			return singleImage(orFallback(ev.CompanyLogoURL, fallbackLogoURL), MaskRectangle)
		}
	}

	return singleImage(orFallback(el.Content, fallbackPortraitPhotoURL), MaskCircle)
}

func singleImage(url string, mask ImageMask) *ResolvedContent {
	return &ResolvedContent{Kind: ContentImage, Image: &ImagePayload{URL: url, Mask: mask}}
}

func orFallback(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

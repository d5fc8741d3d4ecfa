// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the static invitation template definitions and the
// registry used to look them up by slug or numeric id.
package catalog

import "strings"

// ElementType enumerates the kinds of positioned elements a template page
// can carry. Unknown types are skipped by the renderer, so catalog entries
// may reference element kinds newer than the running binary.
type ElementType string

const (
	ElementText      ElementType = "text"
	ElementImage     ElementType = "image"
	ElementQRCode    ElementType = "qrcode"
	ElementRSVPForm  ElementType = "rsvp-form"
	ElementMap       ElementType = "map"
	ElementCountdown ElementType = "countdown"
	ElementGiftList  ElementType = "gift-list"
)

// StyleSpec carries the visual styling of an element. FontSize is in pixels
// at the 500-unit reference width and must be scaled before use; Width is a
// percentage of the page canvas. Zero values mean "unset".
type StyleSpec struct {
	FontSize      float64 `json:"fontSize,omitempty"`
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontWeight    string  `json:"fontWeight,omitempty"`
	Color         string  `json:"color,omitempty"`
	TextAlign     string  `json:"textAlign,omitempty"`
	Width         float64 `json:"width,omitempty"`
	LetterSpacing string  `json:"letterSpacing,omitempty"`
	TextTransform string  `json:"textTransform,omitempty"`
	Italic        bool    `json:"italic,omitempty"`
}

// TemplateElement is a single positioned unit of content on a page. X and Y
// locate the element's centerpoint as percentages of the page canvas. The
// element id, together with its type, selects the resolution rule that maps
// it to concrete event data.
type TemplateElement struct {
	ID      string      `json:"id"`
	Type    ElementType `json:"type"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Style   StyleSpec   `json:"style"`
	Content string      `json:"content,omitempty"`
}

// TemplatePage is one screen of a multi-page invitation. Element order only
// affects z-order between siblings. Two page ids carry special meaning:
// "dashboard" marks the scrollable terminal page of story templates, and
// ids starting with "story" participate in story decoration and
// auto-advance.
type TemplatePage struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	BgURL    string            `json:"bgUrl,omitempty"`
	BgColor  string            `json:"bgColor,omitempty"`
	Elements []TemplateElement `json:"elements"`
}

// IsDashboard reports whether this is the scrollable terminal dashboard page.
func (p *TemplatePage) IsDashboard() bool {
	return p.ID == "dashboard"
}

// IsStory reports whether this page belongs to a story sequence.
func (p *TemplatePage) IsStory() bool {
	return strings.HasPrefix(p.ID, "story")
}

// TemplateConfig is a complete invitation template: metadata, fonts, and an
// ordered, non-empty sequence of pages. Instances are immutable and live in
// the static catalog for the whole process lifetime. ID (slug) and
// NumericID are equally valid lookup keys.
type TemplateConfig struct {
	ID              string         `json:"id"`
	NumericID       int            `json:"numericId"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	PreviewURL      string         `json:"previewUrl"`
	BgURL           string         `json:"bgUrl,omitempty"`
	BgColor         string         `json:"bgColor"`
	AccentColor     string         `json:"accentColor"`
	Fonts           []string       `json:"fonts"`
	OpeningVideoURL string         `json:"openingVideoUrl,omitempty"`
	Story           bool           `json:"story,omitempty"`
	Pages           []TemplatePage `json:"pages"`
}

// Summary projects the template into the lightweight listing shape served
// by the catalog listing endpoint. The external id is the numeric one.
func (t *TemplateConfig) Summary() TemplateSummary {
	return TemplateSummary{
		ID:          t.NumericID,
		Slug:        t.ID,
		Name:        t.Name,
		Description: t.Description,
		PreviewURL:  t.PreviewURL,
		BgColor:     t.BgColor,
		AccentColor: t.AccentColor,
	}
}

// TemplateSummary is the listing projection of a template.
type TemplateSummary struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PreviewURL  string `json:"previewUrl"`
	BgColor     string `json:"bgColor"`
	AccentColor string `json:"accentColor"`
}

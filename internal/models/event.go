// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the shared data types consumed across the
// invitation rendering pipeline: the normalized event payload delivered
// by the remote event API and the RSVP submission contract.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes an event; it selects which resolution rules apply
// when template elements are filled with event data.
type EventType string

const (
	EventTypeWedding   EventType = "wedding"
	EventTypeBirthday  EventType = "birthday"
	EventTypeCorporate EventType = "corporate"
	EventTypeOther     EventType = "other"
)

// Location is a single venue attached to an event. Multi-venue events
// (ceremony + reception) carry a list; the renderer uses the first entry.
type Location struct {
	Type    string  `json:"type,omitempty"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
	Time    string  `json:"time,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// Agenda holds a corporate event programme. The remote API has shipped it
// both as a plain string and as an array of entries, so it unmarshals from
// either shape.
type Agenda []string

// UnmarshalJSON accepts a JSON array of strings, a single string, or null.
func (a *Agenda) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*a = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Agenda{s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*a = Agenda(items)
	return nil
}

// Join returns the agenda entries joined with newlines, or the empty
// string when no agenda is set.
func (a Agenda) Join() string {
	return strings.Join(a, "\n")
}

// FlexInt is an integer that the remote API delivers either as a JSON
// number or as a quoted string (the celebrant age field).
type FlexInt struct {
	Value int64
	Set   bool
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	trimmed := strings.Trim(strings.TrimSpace(string(b)), "\"")
	if trimmed == "null" || trimmed == "" {
		f.Set = false
		return nil
	}
	var n json.Number = json.Number(trimmed)
	v, err := n.Int64()
	if err != nil {
		return err
	}
	f.Value = v
	f.Set = true
	return nil
}

// MarshalJSON writes the value as a number, or null when unset.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// EventData is the canonical, normalized per-invitation payload. It is
// produced by the eventdata package from the remote API response (or demo
// fixtures) and read, never mutated, by the rendering core. Optional
// fields are zero values when absent; the renderer applies per-field
// fallbacks instead of erroring.
type EventData struct {
	Slug       string    `json:"slug,omitempty"`
	TemplateID int64     `json:"template_id"`
	Title      string    `json:"title"`
	EventDate  string    `json:"event_date"`
	EventType  EventType `json:"event_type"`
	DressCode  string    `json:"dress_code,omitempty"`
	Host       string    `json:"host,omitempty"`

	Location  *Location  `json:"location,omitempty"`
	Locations []Location `json:"locations,omitempty"`

	// Wedding fields.
	GroomName     string `json:"groom_name,omitempty"`
	BrideName     string `json:"bride_name,omitempty"`
	GroomPhotoURL string `json:"groom_photo_url,omitempty"`
	BridePhotoURL string `json:"bride_photo_url,omitempty"`

	// Birthday fields.
	CelebrantName     string  `json:"celebrant_name,omitempty"`
	CelebrantPhotoURL string  `json:"celebrant_photo_url,omitempty"`
	Age               FlexInt `json:"age,omitzero"`

	// Corporate fields.
	CompanyName    string `json:"company_name,omitempty"`
	CompanyLogoURL string `json:"company_logo_url,omitempty"`
	Agenda         Agenda `json:"agenda,omitempty"`

	CustomData   map[string]any `json:"custom_data,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`

	MusicURL string `json:"musicUrl,omitempty"`
}

// ResolvedLocation returns the event's venue: the single location when
// present, else the first of the locations list, else nil. Elements that
// need a venue render nothing when this returns nil.
func (e *EventData) ResolvedLocation() *Location {
	if e.Location != nil {
		return e.Location
	}
	if len(e.Locations) > 0 {
		return &e.Locations[0]
	}
	return nil
}

// CustomString reads a string value from the custom_data map, returning
// the empty string when the key is absent or not a string.
func (e *EventData) CustomString(key string) string {
	if e.CustomData == nil {
		return ""
	}
	if s, ok := e.CustomData[key].(string); ok {
		return s
	}
	return ""
}

// CustomFieldString reads a string value from the custom_fields map.
func (e *EventData) CustomFieldString(key string) string {
	if e.CustomFields == nil {
		return ""
	}
	if s, ok := e.CustomFields[key].(string); ok {
		return s
	}
	return ""
}

// Date parses the event date. The API delivers RFC 3339 timestamps; older
// records may carry a date-only string.
func (e *EventData) Date() (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, e.EventDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package eventdata fetches and normalizes per-invitation event payloads
// from the remote event API. It owns the ingestion boundary: the two
// historical response shapes and the legacy photo-field locations are
// adapted here so the rendering core sees a single canonical EventData.
package eventdata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ceremony/internal/models"
)

// envelope matches the newer response shape where event fields are nested
// under a "data" key. Older responses are the flat event object itself.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Normalize parses a raw API payload into the canonical EventData. The
// nested "data" payload is preferred when present; otherwise the raw
// object itself is the payload. Missing optional fields stay zero values;
// downstream resolution supplies per-field fallbacks.
func Normalize(raw []byte) (*models.EventData, error) {
	payload := raw

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if len(env.Data) > 0 && !bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
			payload = env.Data
		}
	}

	var ev models.EventData
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("event payload: %w", err)
	}

	migrateLegacyFields(&ev)

	if ev.EventType == "" {
		ev.EventType = models.EventTypeOther
	}
	return &ev, nil
}

// migrateLegacyFields lifts photo URLs that older records stored inside
// custom_data into the flat fields the resolver reads. Flat fields win
// when both are present.
func migrateLegacyFields(ev *models.EventData) {
	if ev.GroomPhotoURL == "" {
		ev.GroomPhotoURL = ev.CustomString("groom_photo")
	}
	if ev.BridePhotoURL == "" {
		ev.BridePhotoURL = ev.CustomString("bride_photo")
	}
	if ev.CelebrantPhotoURL == "" {
		ev.CelebrantPhotoURL = ev.CustomString("celebrant_photo")
	}
}

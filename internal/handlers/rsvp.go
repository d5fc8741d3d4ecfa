// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ceremony/internal/models"
)

// RSVP accepts a guest's completed RSVP form and forwards it to the event
// API. Responses are never stored here.
func (h *Invitations) RSVP(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var sub models.RSVPSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := validateRSVP(&sub); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if err := h.events.ForwardRSVP(r.Context(), token, &sub); err != nil {
		h.writeFetchError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

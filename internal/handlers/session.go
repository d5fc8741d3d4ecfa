// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ceremony/internal/session"
)

// sessionState is the navigation snapshot returned by every session
// endpoint.
type sessionState struct {
	SessionID string `json:"sessionId"`
	Template  string `json:"template"`
	PageID    string `json:"pageId"`
	PageTitle string `json:"pageTitle"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	InFlight  bool   `json:"inFlight"`
}

func snapshot(s *session.Session) sessionState {
	page := s.Seq.Current()
	return sessionState{
		SessionID: s.ID,
		Template:  s.Template.ID,
		PageID:    page.ID,
		PageTitle: page.Title,
		Index:     s.Seq.Index(),
		Total:     s.Seq.Count(),
		InFlight:  s.Seq.InFlight(),
	}
}

// SessionCreate starts a rendering session for an invitation. The session
// owns the page sequencer; story templates begin auto-advancing from the
// first page immediately.
func (h *Invitations) SessionCreate(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	ev, err := h.events.Fetch(r.Context(), token)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	cfg := h.pickTemplate(r.URL.Query().Get("template"), ev)
	s := h.sessions.Create(token, cfg)
	writeJSON(w, http.StatusCreated, snapshot(s))
}

// SessionState returns the current navigation state of a session.
func (h *Invitations) SessionState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, snapshot(s))
}

// SessionAdvance moves the session one page forward or backward. The body
// carries {"delta": 1} or {"delta": -1}; a request that loses the
// single-flight race or runs off the page bounds is reported as not moved
// rather than failing.
func (h *Invitations) SessionAdvance(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	moved := s.Seq.Advance(body.Delta)
	writeJSON(w, http.StatusOK, map[string]any{"moved": moved, "state": snapshot(s)})
}

// SessionJump navigates directly to a page index (progress indicator
// taps, and the dashboard's "replay" action jumping back to page 0).
func (h *Invitations) SessionJump(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	moved := s.Seq.JumpTo(body.Index)
	writeJSON(w, http.StatusOK, map[string]any{"moved": moved, "state": snapshot(s)})
}

// SessionComplete is the presentation layer's signal that the page
// transition animation finished, releasing the single-flight guard.
func (h *Invitations) SessionComplete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	s.Seq.CompleteTransition()
	writeJSON(w, http.StatusOK, snapshot(s))
}

// SessionDelete tears a session down, cancelling any pending auto-advance.
func (h *Invitations) SessionDelete(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Close(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

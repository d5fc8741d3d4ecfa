// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ceremony/internal/calendar"
	"ceremony/internal/catalog"
	"ceremony/internal/eventdata"
	"ceremony/internal/layout"
	"ceremony/internal/metrics"
	"ceremony/internal/models"
	"ceremony/internal/qr"
	"ceremony/internal/renderer"
	"ceremony/internal/session"
)

// Invitations serves rendered invitation pages and the per-invitation
// artifacts derived from them (calendar file, QR pass, RSVP forwarding).
type Invitations struct {
	events   *eventdata.Client
	resolver *renderer.Resolver
	sessions *session.Registry
}

// NewInvitations creates the invitation handler group.
func NewInvitations(events *eventdata.Client, resolver *renderer.Resolver, sessions *session.Registry) *Invitations {
	return &Invitations{events: events, resolver: resolver, sessions: sessions}
}

// templateMeta is the template header of a rendered page response.
type templateMeta struct {
	Slug            string `json:"slug"`
	NumericID       int    `json:"numericId"`
	Name            string `json:"name"`
	BgColor         string `json:"bgColor"`
	AccentColor     string `json:"accentColor"`
	Story           bool   `json:"story,omitempty"`
	OpeningVideoURL string `json:"openingVideoUrl,omitempty"`
	FontsURL        string `json:"fontsUrl,omitempty"`
}

// pageMeta describes the active page, with background fields already
// merged against the template-level defaults.
type pageMeta struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	BgURL     string `json:"bgUrl,omitempty"`
	BgColor   string `json:"bgColor"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	Dashboard bool   `json:"dashboard,omitempty"`
}

// renderedElement is one element with its computed placement and content.
// Elements whose content resolved to nothing are omitted entirely.
type renderedElement struct {
	ID      string                    `json:"id"`
	Type    catalog.ElementType       `json:"type"`
	Frame   layout.Frame              `json:"frame"`
	Style   catalog.StyleSpec         `json:"style"`
	Content *renderer.ResolvedContent `json:"content"`
}

type pageResponse struct {
	Template templateMeta      `json:"template"`
	Page     pageMeta          `json:"page"`
	Elements []renderedElement `json:"elements"`
}

// Show resolves and returns one page of an invitation. Query parameters:
// width (container width in px, default 500), page (index, default 0),
// and template (optional slug/id override of the event's template).
func (h *Invitations) Show(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	ev, err := h.events.Fetch(r.Context(), token)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	cfg := h.pickTemplate(r.URL.Query().Get("template"), ev)

	pageIndex := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		pageIndex, err = strconv.Atoi(raw)
		if err != nil || pageIndex < 0 || pageIndex >= len(cfg.Pages) {
			writeError(w, http.StatusBadRequest, "page index out of range")
			return
		}
	}

	width := layout.ReferenceWidth
	if raw := r.URL.Query().Get("width"); raw != "" {
		width, err = strconv.ParseFloat(raw, 64)
		if err != nil || width <= 0 {
			writeError(w, http.StatusBadRequest, "invalid container width")
			return
		}
	}

	writeJSON(w, http.StatusOK, h.renderPage(cfg, pageIndex, ev, width))
	metrics.PagesRendered.WithLabelValues(cfg.ID).Inc()
}

// renderPage resolves content and placement for every element of a page.
func (h *Invitations) renderPage(cfg *catalog.TemplateConfig, pageIndex int, ev *models.EventData, width float64) pageResponse {
	page := &cfg.Pages[pageIndex]
	scale := layout.Scale(width)

	elements := make([]renderedElement, 0, len(page.Elements))
	for _, el := range page.Elements {
		content := h.resolver.ResolveContent(el, ev, cfg, scale)
		if content == nil {
			continue
		}
		elements = append(elements, renderedElement{
			ID:      el.ID,
			Type:    el.Type,
			Frame:   layout.Place(el, scale),
			Style:   el.Style,
			Content: content,
		})
	}

	bgURL := page.BgURL
	if bgURL == "" {
		bgURL = cfg.BgURL
	}
	bgColor := page.BgColor
	if bgColor == "" {
		bgColor = cfg.BgColor
	}

	return pageResponse{
		Template: templateMeta{
			Slug:            cfg.ID,
			NumericID:       cfg.NumericID,
			Name:            cfg.Name,
			BgColor:         cfg.BgColor,
			AccentColor:     cfg.AccentColor,
			Story:           cfg.Story,
			OpeningVideoURL: cfg.OpeningVideoURL,
			FontsURL:        renderer.FontStylesheetURL(cfg),
		},
		Page: pageMeta{
			ID:        page.ID,
			Title:     page.Title,
			BgURL:     bgURL,
			BgColor:   bgColor,
			Index:     pageIndex,
			Total:     len(cfg.Pages),
			Dashboard: page.IsDashboard(),
		},
		Elements: elements,
	}
}

// Calendar produces the downloadable .ics artifact for an invitation.
func (h *Invitations) Calendar(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	ev, err := h.events.Fetch(r.Context(), token)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	date, ok := ev.Date()
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "event has no parseable date")
		return
	}

	location := ""
	if loc := ev.ResolvedLocation(); loc != nil {
		location = loc.Name + ", " + loc.Address
	}

	ics := calendar.ICS(calendar.Event{
		Title:       ev.Title,
		Date:        date,
		Location:    location,
		Description: ev.DressCode,
	})

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+calendar.Filename(ev.Title)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(ics)
}

// QRCode serves the entry-pass QR as a PNG. Query parameter size sets the
// edge length in pixels.
func (h *Invitations) QRCode(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	ev, err := h.events.Fetch(r.Context(), token)
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	size := qr.DefaultSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid size")
			return
		}
	}

	png, err := qr.PNG(h.resolver.PassURL(ev.TemplateID), size)
	if err != nil {
		slog.Error("qr encode failed", "token", token, "error", err)
		writeError(w, http.StatusInternalServerError, "could not generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// writeFetchError maps the fetch error taxonomy onto user-facing
// responses: an expired/incorrect link reads differently from a transient
// upstream failure, and neither is retried.
func (h *Invitations) writeFetchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventdata.ErrNotFound):
		writeError(w, http.StatusNotFound,
			"L'invitation demandée est introuvable. Le lien est peut-être expiré ou incorrect.")
	case errors.Is(err, eventdata.ErrUnavailable):
		writeError(w, http.StatusBadGateway,
			"Erreur serveur. Veuillez réessayer plus tard.")
	default:
		slog.Error("event fetch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Une erreur inattendue s'est produite.")
	}
}

// pickTemplate chooses the template for a render: an explicit override
// wins, else the event's template id, defaulting when neither matches.
func (h *Invitations) pickTemplate(override string, ev *models.EventData) *catalog.TemplateConfig {
	if override != "" {
		return catalog.Resolve(override)
	}
	return catalog.ResolveNumeric(int(ev.TemplateID))
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"ceremony/internal/catalog"
	"ceremony/internal/eventdata"
	"ceremony/internal/renderer"
	"ceremony/internal/session"
)

// newTestInvitations wires an invitation handler group whose fetch client
// points at a dead address, so only demo tokens resolve.
func newTestInvitations() *Invitations {
	return NewInvitations(
		eventdata.NewClient("http://127.0.0.1:1", nil),
		renderer.New(),
		session.NewRegistry(),
	)
}

// request builds an httptest request with chi URL params attached.
func request(method, target string, body []byte, params map[string]string) *http.Request {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestShowDemoInvitation(t *testing.T) {
	h := newTestInvitations()
	rr := httptest.NewRecorder()
	h.Show(rr, request(http.MethodGet, "/invitations/demo", nil, map[string]string{"token": "demo"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Template struct {
			Slug      string `json:"slug"`
			NumericID int    `json:"numericId"`
			FontsURL  string `json:"fontsUrl"`
		} `json:"template"`
		Page struct {
			ID    string `json:"id"`
			Index int    `json:"index"`
			Total int    `json:"total"`
		} `json:"page"`
		Elements []struct {
			ID      string          `json:"id"`
			Type    string          `json:"type"`
			Content json.RawMessage `json:"content"`
		} `json:"elements"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// The demo wedding uses template 1 (royal).
	if resp.Template.Slug != "royal" || resp.Template.NumericID != 1 {
		t.Errorf("template = %+v", resp.Template)
	}
	if resp.Page.ID != "cover" || resp.Page.Index != 0 {
		t.Errorf("page = %+v", resp.Page)
	}
	if resp.Page.Total != len(catalog.Default().Pages) {
		t.Errorf("total = %d", resp.Page.Total)
	}
	if len(resp.Elements) == 0 {
		t.Fatal("cover page should render elements")
	}
	if !strings.Contains(resp.Template.FontsURL, "fonts.googleapis.com") {
		t.Errorf("fontsUrl = %q", resp.Template.FontsURL)
	}
	for _, el := range resp.Elements {
		if len(el.Content) == 0 || string(el.Content) == "null" {
			t.Errorf("element %q has no content", el.ID)
		}
	}
}

func TestShowTemplateOverride(t *testing.T) {
	h := newTestInvitations()
	rr := httptest.NewRecorder()
	h.Show(rr, request(http.MethodGet, "/invitations/demo?template=minimal", nil, map[string]string{"token": "demo"}))

	var resp struct {
		Template struct {
			Slug string `json:"slug"`
		} `json:"template"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Template.Slug != "minimal" {
		t.Errorf("slug = %q, want override", resp.Template.Slug)
	}

	// An unknown override falls back to the default, never failing.
	rr = httptest.NewRecorder()
	h.Show(rr, request(http.MethodGet, "/invitations/demo?template=unknown", nil, map[string]string{"token": "demo"}))
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if rr.Code != http.StatusOK || resp.Template.Slug != catalog.DefaultSlug {
		t.Errorf("status %d slug %q", rr.Code, resp.Template.Slug)
	}
}

func TestShowBadQueryParams(t *testing.T) {
	h := newTestInvitations()

	tests := []struct {
		name  string
		query string
	}{
		{"page out of range", "?page=99"},
		{"negative page", "?page=-1"},
		{"page not a number", "?page=two"},
		{"zero width", "?width=0"},
		{"negative width", "?width=-100"},
		{"width not a number", "?width=wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Show(rr, request(http.MethodGet, "/invitations/demo"+tt.query, nil, map[string]string{"token": "demo"}))
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestShowScalesFontSizes(t *testing.T) {
	h := newTestInvitations()
	rr := httptest.NewRecorder()
	h.Show(rr, request(http.MethodGet, "/invitations/demo?width=250", nil, map[string]string{"token": "demo"}))

	var resp struct {
		Elements []struct {
			ID    string `json:"id"`
			Frame struct {
				FontSizePx float64 `json:"fontSizePx"`
			} `json:"frame"`
		} `json:"elements"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)

	for _, el := range resp.Elements {
		// The royal cover title is 48px at reference width.
		if el.ID == "title" && el.Frame.FontSizePx != 24 {
			t.Errorf("title font = %v, want 24 at half width", el.Frame.FontSizePx)
		}
	}
}

func TestFetchErrorMapping(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	h := NewInvitations(eventdata.NewClient(notFound.URL, nil), renderer.New(), session.NewRegistry())
	rr := httptest.NewRecorder()
	h.Show(rr, request(http.MethodGet, "/invitations/gone", nil, map[string]string{"token": "gone"}))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "introuvable") {
		t.Errorf("body = %s", rr.Body.String())
	}

	// An upstream failure maps to 502 with different wording.
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	h = NewInvitations(eventdata.NewClient(broken.URL, nil), renderer.New(), session.NewRegistry())
	rr = httptest.NewRecorder()
	h.Show(rr, request(http.MethodGet, "/invitations/x", nil, map[string]string{"token": "x"}))
	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rr.Code)
	}
}

func TestCalendarDownload(t *testing.T) {
	h := newTestInvitations()
	rr := httptest.NewRecorder()
	h.Calendar(rr, request(http.MethodGet, "/invitations/demo/calendar.ics", nil, map[string]string{"token": "demo"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type = %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, ".ics") {
		t.Errorf("content disposition = %q", cd)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "DTSTART:20261224T183000Z") {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, "Palais Bourbon") {
		t.Error("location missing from calendar")
	}
}

func TestQRCodePNG(t *testing.T) {
	h := newTestInvitations()
	rr := httptest.NewRecorder()
	h.QRCode(rr, request(http.MethodGet, "/invitations/demo/qr.png?size=128", nil, map[string]string{"token": "demo"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(rr.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("body is not a PNG")
	}

	rr = httptest.NewRecorder()
	h.QRCode(rr, request(http.MethodGet, "/invitations/demo/qr.png?size=big", nil, map[string]string{"token": "demo"}))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad size: status = %d, want 400", rr.Code)
	}
}

func TestRSVPHandler(t *testing.T) {
	h := newTestInvitations()

	body, _ := json.Marshal(map[string]any{
		"name":   "Claire Fontaine",
		"status": "attending",
		"adults": 2,
	})
	rr := httptest.NewRecorder()
	h.RSVP(rr, request(http.MethodPost, "/invitations/demo/rsvp", body, map[string]string{"token": "demo"}))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	// Validation failures are 422 with a message.
	body, _ = json.Marshal(map[string]any{"name": "", "status": "attending", "adults": 1})
	rr = httptest.NewRecorder()
	h.RSVP(rr, request(http.MethodPost, "/invitations/demo/rsvp", body, map[string]string{"token": "demo"}))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rr.Code)
	}

	// Malformed JSON is a 400.
	rr = httptest.NewRecorder()
	h.RSVP(rr, request(http.MethodPost, "/invitations/demo/rsvp", []byte("{bad"), map[string]string{"token": "demo"}))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	h := newTestInvitations()

	// Create against the demo invitation.
	rr := httptest.NewRecorder()
	h.SessionCreate(rr, request(http.MethodPost, "/invitations/demo/session", nil, map[string]string{"token": "demo"}))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rr.Code, rr.Body.String())
	}

	var state sessionState
	if err := json.Unmarshal(rr.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.SessionID == "" || state.Index != 0 {
		t.Fatalf("state = %+v", state)
	}
	id := state.SessionID

	// Advance forward.
	body, _ := json.Marshal(map[string]int{"delta": 1})
	rr = httptest.NewRecorder()
	h.SessionAdvance(rr, request(http.MethodPost, "/sessions/"+id+"/advance", body, map[string]string{"id": id}))

	var moveResp struct {
		Moved bool         `json:"moved"`
		State sessionState `json:"state"`
	}
	json.Unmarshal(rr.Body.Bytes(), &moveResp)
	if !moveResp.Moved || moveResp.State.Index != 1 {
		t.Fatalf("advance = %+v", moveResp)
	}
	if !moveResp.State.InFlight {
		t.Error("advance should leave a transition in flight")
	}

	// A second advance during the in-flight transition does not move.
	rr = httptest.NewRecorder()
	h.SessionAdvance(rr, request(http.MethodPost, "/sessions/"+id+"/advance", body, map[string]string{"id": id}))
	json.Unmarshal(rr.Body.Bytes(), &moveResp)
	if moveResp.Moved {
		t.Error("advance during transition should not move")
	}

	// Complete, then jump back to the start.
	rr = httptest.NewRecorder()
	h.SessionComplete(rr, request(http.MethodPost, "/sessions/"+id+"/complete", nil, map[string]string{"id": id}))
	if rr.Code != http.StatusOK {
		t.Fatalf("complete: status = %d", rr.Code)
	}

	body, _ = json.Marshal(map[string]int{"index": 0})
	rr = httptest.NewRecorder()
	h.SessionJump(rr, request(http.MethodPost, "/sessions/"+id+"/jump", body, map[string]string{"id": id}))
	json.Unmarshal(rr.Body.Bytes(), &moveResp)
	if !moveResp.Moved || moveResp.State.Index != 0 {
		t.Fatalf("jump = %+v", moveResp)
	}

	// Delete, then every endpoint misses.
	rr = httptest.NewRecorder()
	h.SessionDelete(rr, request(http.MethodDelete, "/sessions/"+id, nil, map[string]string{"id": id}))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.SessionState(rr, request(http.MethodGet, "/sessions/"+id, nil, map[string]string{"id": id}))
	if rr.Code != http.StatusNotFound {
		t.Errorf("state after delete: status = %d, want 404", rr.Code)
	}
}

func TestSessionUnknownID(t *testing.T) {
	h := newTestInvitations()
	rr := httptest.NewRecorder()
	h.SessionState(rr, request(http.MethodGet, "/sessions/nope", nil, map[string]string{"id": "nope"}))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

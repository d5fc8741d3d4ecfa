// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ceremony/internal/catalog"
)

// Templates serves the template catalog. Lookups here are strict: a key
// matching neither a slug nor a numeric id is a 404, never a default
// substitution. Only the rendering path falls back.
type Templates struct{}

// NewTemplates creates the catalog handler group.
func NewTemplates() *Templates {
	return &Templates{}
}

// List returns lightweight summaries of every template, in catalog order.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.List())
}

// Get returns the full config of one template. The id path segment may be
// a slug ("royal") or a numeric id ("1").
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "id")
	tmpl, ok := catalog.Lookup(key)
	if !ok {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

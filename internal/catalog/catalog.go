// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"
	"strconv"
)

// DefaultSlug identifies the template served when rendering-path resolution
// finds no match for the requested key.
const DefaultSlug = "royal"

// The two lookup indexes are built once at startup; the catalog never
// changes afterwards. bySlug and byNumericID point into the templates slice.
var (
	bySlug      map[string]*TemplateConfig
	byNumericID map[int]*TemplateConfig
)

func init() {
	bySlug = make(map[string]*TemplateConfig, len(templates))
	byNumericID = make(map[int]*TemplateConfig, len(templates))

	for i := range templates {
		t := &templates[i]
		if len(t.Pages) == 0 {
			panic(fmt.Sprintf("catalog: template %q has no pages", t.ID))
		}
		if _, dup := bySlug[t.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate template slug %q", t.ID))
		}
		if _, dup := byNumericID[t.NumericID]; dup {
			panic(fmt.Sprintf("catalog: duplicate template numeric id %d", t.NumericID))
		}
		bySlug[t.ID] = t
		byNumericID[t.NumericID] = t
	}

	if _, ok := bySlug[DefaultSlug]; !ok {
		panic(fmt.Sprintf("catalog: default template %q missing", DefaultSlug))
	}
}

// Default returns the fallback template used by the rendering path.
func Default() *TemplateConfig {
	return bySlug[DefaultSlug]
}

// Resolve finds the template for a requested key, which may be a slug or
// the decimal form of a numeric id. It tries an exact slug match first,
// then the numeric id, and finally falls back to the default template.
// Resolve never fails; the strict Lookup variants below report misses.
func Resolve(key string) *TemplateConfig {
	if key != "" {
		if t, ok := bySlug[key]; ok {
			return t
		}
		if n, err := strconv.Atoi(key); err == nil {
			if t, ok := byNumericID[n]; ok {
				return t
			}
		}
	}
	return Default()
}

// ResolveNumeric is the numeric-key entry point of the same resolution:
// a matching numeric id wins, anything else yields the default.
func ResolveNumeric(id int) *TemplateConfig {
	if t, ok := byNumericID[id]; ok {
		return t
	}
	return Default()
}

// BySlug returns the template with the exact slug, with no defaulting.
func BySlug(slug string) (*TemplateConfig, bool) {
	t, ok := bySlug[slug]
	return t, ok
}

// ByNumericID returns the template with the numeric id, with no defaulting.
func ByNumericID(id int) (*TemplateConfig, bool) {
	t, ok := byNumericID[id]
	return t, ok
}

// Lookup is the strict two-key lookup used by the catalog API: exact slug
// first, then numeric id. A miss returns ok=false; this path never
// substitutes the default template.
func Lookup(key string) (*TemplateConfig, bool) {
	if t, ok := bySlug[key]; ok {
		return t, true
	}
	if n, err := strconv.Atoi(key); err == nil {
		if t, ok := byNumericID[n]; ok {
			return t, true
		}
	}
	return nil, false
}

// List returns lightweight summaries of every template in insertion order.
func List() []TemplateSummary {
	out := make([]TemplateSummary, 0, len(templates))
	for i := range templates {
		out = append(out, templates[i].Summary())
	}
	return out
}

// All returns every template config in insertion order.
func All() []*TemplateConfig {
	out := make([]*TemplateConfig, 0, len(templates))
	for i := range templates {
		out = append(out, &templates[i])
	}
	return out
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"testing"
	"time"

	"ceremony/internal/catalog"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry()
	tmpl := catalog.Default()

	s := r.Create("demo", tmpl)
	if s.ID == "" {
		t.Fatal("session should get an id")
	}
	if s.Token != "demo" || s.Template != tmpl {
		t.Error("session fields not set")
	}
	if s.Seq == nil || s.Seq.Count() != len(tmpl.Pages) {
		t.Error("sequencer not initialized for the template")
	}

	got, ok := r.Get(s.ID)
	if !ok || got != s {
		t.Error("Get should return the created session")
	}
	if _, ok := r.Get("nope"); ok {
		t.Error("unknown id should miss")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry()
	s := r.Create("demo", catalog.Default())

	if !r.Close(s.ID) {
		t.Fatal("close should succeed")
	}
	if _, ok := r.Get(s.ID); ok {
		t.Error("closed session should be gone")
	}
	if r.Close(s.ID) {
		t.Error("double close should report a miss")
	}

	// The sequencer is torn down with the session.
	if s.Seq.Advance(1) {
		t.Error("sequencer should refuse navigation after close")
	}
}

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry()
	r.ttl = 10 * time.Millisecond

	stale := r.Create("old", catalog.Default())
	stale.lastSeen = time.Now().Add(-time.Minute)
	fresh := r.Create("new", catalog.Default())

	if n := r.Sweep(); n != 1 {
		t.Fatalf("Sweep removed %d sessions, want 1", n)
	}
	if _, ok := r.Get(stale.ID); ok {
		t.Error("stale session should be swept")
	}
	if _, ok := r.Get(fresh.ID); !ok {
		t.Error("fresh session should survive")
	}
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	r := NewRegistry()
	r.ttl = time.Hour

	s := r.Create("demo", catalog.Default())
	s.lastSeen = time.Now().Add(-2 * time.Hour)

	// Touching the session resets its idle clock.
	r.Get(s.ID)
	if n := r.Sweep(); n != 0 {
		t.Errorf("Sweep removed %d sessions after a touch, want 0", n)
	}
}

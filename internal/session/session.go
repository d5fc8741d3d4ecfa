// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session tracks active rendering sessions. Each invitation view
// owns one session holding its page sequencer; sessions are identified by
// a random UUID and expire after a period of inactivity. State is
// in-process only; sequencer timers cannot outlive the process anyway.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ceremony/internal/catalog"
	"ceremony/internal/sequencer"
)

// DefaultTTL is how long an idle session survives before the sweeper
// closes it.
const DefaultTTL = 30 * time.Minute

// Session is one invitation view: the resolved template plus the page
// sequencer owning its navigation state.
type Session struct {
	ID       string
	Token    string
	Template *catalog.TemplateConfig
	Seq      *sequencer.Sequencer

	lastSeen time.Time
}

// Registry holds the live sessions for this process.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
	}
}

// Create starts a rendering session for the given invitation token and
// template, returning the session with a fresh UUID.
func (r *Registry) Create(token string, tmpl *catalog.TemplateConfig) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Token:    token,
		Template: tmpl,
		Seq:      sequencer.New(tmpl),
		lastSeen: time.Now(),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session with the given id, refreshing its idle timer.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	return s, ok
}

// Close tears down a session, cancelling any pending auto-advance timer.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Seq.Close()
	}
	return ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes every session idle longer than the TTL and returns how
// many were removed. Call it periodically from the server.
func (r *Registry) Sweep() int {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Seq.Close()
	}
	return len(expired)
}

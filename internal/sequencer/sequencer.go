// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sequencer manages which page of a multi-page invitation is
// active. It enforces a single-flight guarantee on page transitions and
// drives the timed auto-advance of story templates with cancellable
// timers keyed to the current page.
package sequencer

import (
	"sync"
	"time"

	"ceremony/internal/catalog"
)

// DefaultDwell is how long a story page stays on screen before the
// sequencer advances to the next one.
const DefaultDwell = 5 * time.Second

// timer is the cancellable handle returned by the timer factory.
// time.Timer satisfies it; tests substitute a fake.
type timer interface {
	Stop() bool
}

type timerFactory func(d time.Duration, f func()) timer

func afterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}

// Sequencer holds one rendering session's pagination state. All state
// transitions run under a single mutex, so timer fires and navigation
// requests serialize the way UI event-loop handlers would.
type Sequencer struct {
	mu       sync.Mutex
	cfg      *catalog.TemplateConfig
	index    int
	inFlight bool
	closed   bool

	dwell    time.Duration
	newTimer timerFactory
	pending  timer
	gen      uint64 // invalidates stale timer fires
}

// New creates a sequencer for the given template, starting on the first
// page. For story templates the first auto-advance timer is armed
// immediately.
func New(cfg *catalog.TemplateConfig) *Sequencer {
	return newSequencer(cfg, DefaultDwell, afterFunc)
}

func newSequencer(cfg *catalog.TemplateConfig, dwell time.Duration, factory timerFactory) *Sequencer {
	s := &Sequencer{cfg: cfg, dwell: dwell, newTimer: factory}
	s.mu.Lock()
	s.scheduleAutoLocked()
	s.mu.Unlock()
	return s
}

// Index returns the active page index.
func (s *Sequencer) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Count returns the total page count.
func (s *Sequencer) Count() int {
	return len(s.cfg.Pages)
}

// Current returns the active page.
func (s *Sequencer) Current() *catalog.TemplatePage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &s.cfg.Pages[s.index]
}

// InFlight reports whether a transition is awaiting its completion signal.
func (s *Sequencer) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Advance moves one page forward or backward. It is a no-op (returning
// false) while a transition is in flight, when delta is not ±1, or when
// the target index is out of bounds.
func (s *Sequencer) Advance(delta int) bool {
	if delta != 1 && delta != -1 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveLocked(s.index + delta)
}

// JumpTo navigates directly to a page index, with the same bounds and
// in-flight guards as Advance. Jumping to the current page is a no-op.
func (s *Sequencer) JumpTo(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index == s.index {
		return false
	}
	return s.moveLocked(index)
}

func (s *Sequencer) moveLocked(target int) bool {
	if s.closed || s.inFlight {
		return false
	}
	if target < 0 || target >= len(s.cfg.Pages) {
		return false
	}
	s.cancelTimerLocked()
	s.index = target
	s.inFlight = true
	return true
}

// CompleteTransition is called by the presentation layer when the exit
// animation of the previous page finishes. It releases the single-flight
// guard and, on story templates, arms the next auto-advance timer for the
// page just arrived at.
func (s *Sequencer) CompleteTransition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.inFlight = false
	s.scheduleAutoLocked()
}

// Close tears the session down and cancels any pending timer. All
// subsequent navigation is a no-op.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cancelTimerLocked()
}

// scheduleAutoLocked arms the dwell timer when the template is a story,
// the active page is not the terminal dashboard, there is a next page to
// go to, and no transition is in flight.
func (s *Sequencer) scheduleAutoLocked() {
	s.cancelTimerLocked()
	if s.closed || !s.cfg.Story || s.inFlight {
		return
	}
	if s.cfg.Pages[s.index].IsDashboard() {
		return
	}
	if s.index >= len(s.cfg.Pages)-1 {
		return
	}
	gen := s.gen
	s.pending = s.newTimer(s.dwell, func() { s.autoFire(gen) })
}

// autoFire runs when the dwell timer elapses. A generation check drops
// fires that outlived the page they were armed for.
func (s *Sequencer) autoFire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen || s.inFlight {
		return
	}
	s.moveLocked(s.index + 1)
}

func (s *Sequencer) cancelTimerLocked() {
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

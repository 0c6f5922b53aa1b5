// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"sync"
	"time"
)

type sessionEntry struct {
	flow     *Flow
	lastSeen time.Time
}

// Sessions holds in-progress flows keyed by voter code. Idle entries expire
// after ttl and are pruned on access.
type Sessions struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*sessionEntry
}

func NewSessions(ttl time.Duration, now func() time.Time) *Sessions {
	if now == nil {
		now = time.Now
	}
	return &Sessions{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]*sessionEntry),
	}
}

// Get returns the live flow for token and refreshes its idle timer.
func (s *Sessions) Get(token string) (*Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	e, ok := s.entries[token]
	if !ok {
		return nil, false
	}
	e.lastSeen = now
	return e.flow, true
}

// PutIfAbsent stores flow unless token already has one, and returns the
// flow that ends up registered.
func (s *Sessions) PutIfAbsent(token string, flow *Flow) *Flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if e, ok := s.entries[token]; ok {
		e.lastSeen = now
		return e.flow
	}
	s.entries[token] = &sessionEntry{flow: flow, lastSeen: now}
	return flow
}

// Drop forgets the flow for token.
func (s *Sessions) Drop(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(s.now())
	return len(s.entries)
}

func (s *Sessions) pruneLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for token, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, token)
		}
	}
}

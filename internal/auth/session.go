package auth

import (
	"sync"

	"calog/internal/model"
)

// Session holds the current identity for the lifetime of one invocation.
// It replaces ambient global lookup: populated on sign-in, cleared on
// sign-out, and passed explicitly to whatever needs it.
//
// The generation counter increments on every change, letting in-flight
// profile lookups detect that their result is stale and discard it.
type Session struct {
	mu    sync.Mutex
	ident *model.Identity
	gen   uint64
}

// NewSession returns an empty (anonymous) session.
func NewSession() *Session {
	return &Session{}
}

// SignIn installs an identity and bumps the generation.
func (s *Session) SignIn(ident model.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ident = &ident
	s.gen++
}

// SignOut clears the identity and bumps the generation.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ident = nil
	s.gen++
}

// Snapshot returns the current identity (nil when anonymous) together with
// the generation it was observed at.
func (s *Session) Snapshot() (*model.Identity, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ident, s.gen
}

// Generation returns the current generation counter.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

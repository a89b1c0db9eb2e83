package session

import (
	"sync"
	"time"

	"textbook-rag/internal/model"
)

// Session is one conversation. Its turns are only mutated through the Store.
type Session struct {
	id        string
	createdAt time.Time

	mu           sync.Mutex
	lastActivity time.Time
	turns        ring
}

func newSession(id string, now time.Time, maxTurns int) *Session {
	return &Session{
		id:           id,
		createdAt:    now,
		lastActivity: now,
		turns:        newRing(2 * maxTurns),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// CreatedAt returns the creation time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// LastActivity returns the time of the last resolve or recorded exchange.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// History returns a chronological copy of the retained turns.
func (s *Session) History() []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns.items()
}

func (s *Session) expired(now time.Time, timeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActivity) > timeout
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActivity = now
	s.mu.Unlock()
}

// ring is a fixed-capacity turn buffer that overwrites the oldest entry when full.
type ring struct {
	buf   []model.Turn
	start int
	n     int
}

func newRing(capacity int) ring {
	return ring{buf: make([]model.Turn, capacity)}
}

func (r *ring) push(t model.Turn) {
	if len(r.buf) == 0 {
		return
	}
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = t
		r.n++
		return
	}
	r.buf[r.start] = t
	r.start = (r.start + 1) % len(r.buf)
}

func (r *ring) items() []model.Turn {
	out := make([]model.Turn, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	return out
}

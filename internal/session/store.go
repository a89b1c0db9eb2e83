package session

import (
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"textbook-rag/internal/model"
)

const (
	DefaultMaxTurns = 10
	DefaultTimeout  = 30 * time.Minute
	MaxIDLength     = 128
)

// ErrInvalidID is returned for client-supplied ids outside [A-Za-z0-9_-]{1,128}.
var ErrInvalidID = errors.New("invalid session id")

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidID reports whether id may be used as a session identifier.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Config bounds session history and idle lifetime.
type Config struct {
	MaxTurns int           // exchanges retained per session
	Timeout  time.Duration // idle time after which a session expires
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the process-local registry of chat sessions.
// Lock order is Store.mu then Session.mu.
type Store struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty Store.
func NewStore(cfg Config, opts ...Option) *Store {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	s := &Store{
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveOrCreate returns the live session named by id, refreshing its activity.
// An expired session is replaced by an empty one under the same id; an empty id
// gets a fresh random one. The bool reports whether a new session was created.
func (st *Store) ResolveOrCreate(id string) (*Session, bool) {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	} else if s, ok := st.sessions[id]; ok {
		if !s.expired(now, st.cfg.Timeout) {
			s.touch(now)
			return s, false
		}
		delete(st.sessions, id)
	}

	s := newSession(id, now, st.cfg.MaxTurns)
	st.sessions[id] = s
	return s, true
}

// RecordExchange appends the user turn then the assistant turn, dropping the
// oldest exchange once MaxTurns exchanges are retained.
func (st *Store) RecordExchange(s *Session, userText, assistantText string) {
	now := st.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns.push(model.Turn{Role: model.RoleUser, Content: userText, Timestamp: now})
	s.turns.push(model.Turn{Role: model.RoleAssistant, Content: assistantText, Timestamp: now})
	s.lastActivity = now
}

// Sweep removes every session idle longer than the timeout and returns how many were removed.
func (st *Store) Sweep() int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.expired(now, st.cfg.Timeout) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Delete removes the session and reports whether a live one existed.
// An expired session is removed too but reported as absent.
func (st *Store) Delete(id string) bool {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return false
	}
	delete(st.sessions, id)
	return !s.expired(now, st.cfg.Timeout)
}

// Len returns the number of sessions held, expired or not.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

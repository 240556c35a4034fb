package reward

import (
	"sync"
	"time"
)

type session struct {
	misses       int
	lastAccepted time.Time
}

// SessionStore keeps per-player pity and debounce state while the player is online
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*session)}
}

// Accept records a kill event at `at` unless it falls within window of the
// last accepted one. It returns the player's current miss count.
func (s *SessionStore) Accept(playerID int64, at time.Time, window time.Duration) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[playerID]
	if !ok {
		sess = &session{}
		s.sessions[playerID] = sess
	} else if !sess.lastAccepted.IsZero() && at.Sub(sess.lastAccepted) < window {
		return sess.misses, false
	}
	sess.lastAccepted = at
	return sess.misses, true
}

// SetMisses stores the miss counter of a player with a live session
func (s *SessionStore) SetMisses(playerID int64, misses int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[playerID]; ok {
		sess.misses = misses
	}
}

// Misses returns the miss counter of a player, zero without a session
func (s *SessionStore) Misses(playerID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[playerID]; ok {
		return sess.misses
	}
	return 0
}

// Evict drops the session of a player
func (s *SessionStore) Evict(playerID int64) {
	s.mu.Lock()
	delete(s.sessions, playerID)
	s.mu.Unlock()
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

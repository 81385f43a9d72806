package mind

import (
	"math/rand"
	"sync"
	"time"
)

// Store owns all per-user state: sessions, rolling histories, long-term
// memory, last-used tone, and the welcomed set. Safe for concurrent use.
// Session, history, and last-tone for a user are always created, reset,
// and destroyed together; memory deliberately survives session teardown.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*UserSession
	histories map[string][]Turn
	memories  map[string]*UserMemory
	lastTone  map[string]Tone
	welcomed  map[string]bool

	userMu sync.Mutex
	users  map[string]*sync.Mutex

	now       func() time.Time
	randFloat func() float64
}

func NewStore() *Store {
	return &Store{
		sessions:  make(map[string]*UserSession),
		histories: make(map[string][]Turn),
		memories:  make(map[string]*UserMemory),
		lastTone:  make(map[string]Tone),
		welcomed:  make(map[string]bool),
		users:     make(map[string]*sync.Mutex),
		now:       time.Now,
		randFloat: rand.Float64,
	}
}

// LockUser serializes handling of concurrent messages from the same
// user. Returns the unlock func. Different users are never blocked by
// each other here.
func (s *Store) LockUser(userID string) func() {
	s.userMu.Lock()
	mu := s.users[userID]
	if mu == nil {
		mu = &sync.Mutex{}
		s.users[userID] = mu
	}
	s.userMu.Unlock()
	mu.Lock()
	return mu.Unlock
}

// Session returns the user's session, creating it with defaults on
// first access.
func (s *Store) Session(userID string) *UserSession {
	s.mu.RLock()
	sess := s.sessions[userID]
	s.mu.RUnlock()
	if sess != nil {
		return sess
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess = s.sessions[userID]; sess != nil {
		return sess
	}
	sess = &UserSession{Mode: ModeBestie, LastActivity: s.now()}
	s.sessions[userID] = sess
	return sess
}

// Touch updates lastActivity, creating the session if absent.
func (s *Store) Touch(userID string) {
	sess := s.Session(userID)
	s.mu.Lock()
	sess.LastActivity = s.now()
	s.mu.Unlock()
}

// Expired reports whether the session sat idle past the timeout.
func (s *Store) Expired(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[userID]
	if sess == nil {
		return false
	}
	return s.now().Sub(sess.LastActivity) > SessionIdleTimeout
}

// EvictIfExpired resets a stale session in one shot: mode back to
// default, flags cleared, history and last tone deleted. Must run
// before any tone or mode decision for an inbound message.
func (s *Store) EvictIfExpired(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	if sess == nil || s.now().Sub(sess.LastActivity) <= SessionIdleTimeout {
		return false
	}
	sess.Mode = ModeBestie
	sess.TeachingMode = false
	sess.Active = false
	delete(s.histories, userID)
	delete(s.lastTone, userID)
	return true
}

// StartSession activates the session and stamps activity.
func (s *Store) StartSession(userID string) {
	sess := s.Session(userID)
	s.mu.Lock()
	sess.Active = true
	sess.LastActivity = s.now()
	s.mu.Unlock()
}

// EndSession tears down session, history, and last tone as one unit.
func (s *Store) EndSession(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	delete(s.histories, userID)
	delete(s.lastTone, userID)
}

// HasActiveSession reports whether a non-expired active session exists.
func (s *Store) HasActiveSession(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[userID]
	return sess != nil && sess.Active
}

func (s *Store) SetMode(userID string, m Mode) {
	sess := s.Session(userID)
	s.mu.Lock()
	sess.Mode = m
	s.mu.Unlock()
}

func (s *Store) SetTeaching(userID string, on bool) {
	sess := s.Session(userID)
	s.mu.Lock()
	sess.TeachingMode = on
	s.mu.Unlock()
}

// History returns a copy of the user's rolling history.
func (s *Store) History(userID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := s.histories[userID]
	out := make([]Turn, len(h))
	copy(out, h)
	return out
}

// AppendExchange records one user turn and the assistant reply, then
// slides the window to cap, dropping oldest turns first.
func (s *Store) AppendExchange(userID, userText, reply string, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := append(s.histories[userID],
		Turn{Role: "user", Content: userText},
		Turn{Role: "assistant", Content: reply},
	)
	if len(h) > limit {
		h = h[len(h)-limit:]
	}
	s.histories[userID] = h
}

// Memory returns the user's long-term memory, creating it lazily.
func (s *Store) Memory(userID string) *UserMemory {
	s.mu.RLock()
	m := s.memories[userID]
	s.mu.RUnlock()
	if m != nil {
		return m
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m = s.memories[userID]; m != nil {
		return m
	}
	m = &UserMemory{Stress: StressMedium}
	s.memories[userID] = m
	return m
}

// AddSubjects unions detected subjects into memory, preserving
// insertion order and de-duplicating.
func (s *Store) AddSubjects(userID string, subjects []string) {
	m := s.Memory(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range subjects {
		seen := false
		for _, have := range m.Subjects {
			if have == sub {
				seen = true
				break
			}
		}
		if !seen {
			m.Subjects = append(m.Subjects, sub)
		}
	}
}

func (s *Store) SetStress(userID string, lvl StressLevel) {
	m := s.Memory(userID)
	s.mu.Lock()
	m.Stress = lvl
	s.mu.Unlock()
}

func (s *Store) SetProcrastinates(userID string) {
	m := s.Memory(userID)
	s.mu.Lock()
	m.Procrastinates = true
	s.mu.Unlock()
}

func (s *Store) SetCrams(userID string) {
	m := s.Memory(userID)
	s.mu.Lock()
	m.Crams = true
	s.mu.Unlock()
}

func (s *Store) LastTone(userID string) (Tone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.lastTone[userID]
	return t, ok
}

func (s *Store) SetLastTone(userID string, t Tone) {
	s.mu.Lock()
	s.lastTone[userID] = t
	s.mu.Unlock()
}

func (s *Store) ClearLastTone(userID string) {
	s.mu.Lock()
	delete(s.lastTone, userID)
	s.mu.Unlock()
}

func (s *Store) Welcomed(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.welcomed[userID]
}

func (s *Store) MarkWelcomed(userID string) {
	s.mu.Lock()
	s.welcomed[userID] = true
	s.mu.Unlock()
}

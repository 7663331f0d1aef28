// Package memory: хранилище сессий калькулятора в памяти процесса.
// Состояние калькулятора не переживает рестарт, поэтому внешнего хранилища тут нет.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"keypadCalc/internal/keypad"
	"keypadCalc/internal/ports"
)

var (
	_ ports.ISessionStore = (*SessionStore)(nil)
	_ ports.ISession      = (*Session)(nil)
)

// Session: состояние одной сессии под собственным замком.
type Session struct {
	id       string
	mu       sync.Mutex
	state    keypad.State
	lastUsed time.Time
	now      func() time.Time
}

// ID возвращает идентификатор сессии.
func (s *Session) ID() string {
	return s.id
}

// Update применяет fn к состоянию под замком сессии и возвращает новое состояние.
func (s *Session) Update(fn func(keypad.State) keypad.State) keypad.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	s.lastUsed = s.now()
	return s.state
}

// State возвращает текущее состояние.
func (s *Session) State() keypad.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = s.now()
	return s.state
}

func (s *Session) idleSince(t time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Sub(s.lastUsed)
}

// SessionStore реализует ports.ISessionStore.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionStore создаёт пустое хранилище.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session), now: time.Now}
}

// Create заводит сессию в начальном состоянии калькулятора.
func (st *SessionStore) Create() ports.ISession {
	s := &Session{
		id:       uuid.NewString(),
		state:    keypad.Initial(),
		lastUsed: st.now(),
		now:      st.now,
	}
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
	return s
}

// Get возвращает сессию по id.
func (st *SessionStore) Get(id string) (ports.ISession, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return s, true
}

// Delete удаляет сессию; false, если её не было.
func (st *SessionStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Sweep удаляет сессии, к которым не обращались дольше idle.
func (st *SessionStore) Sweep(idle time.Duration) int {
	now := st.now()
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince(now) > idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Len: число живых сессий.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

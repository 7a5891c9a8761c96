package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Limits bound the sessions a Store keeps. Zero values mean no limit.
type Limits struct {
	// sessions idle for longer than TTL are dropped
	TTL time.Duration

	// creating a session beyond MaxSessions evicts the least recently used one
	MaxSessions int
}

type entry struct {
	state    *State
	lastSeen time.Time
}

// Store keeps one State per client.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	limits   Limits
	opts     []Option
	now      func() time.Time
}

// NewStore creates a store whose sessions are built with opts.
func NewStore(limits Limits, opts ...Option) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		limits:   limits,
		opts:     opts,
		now:      time.Now,
	}
}

// Create starts a new session and returns its id. Expired sessions are
// dropped first.
func (st *Store) Create() (string, *State) {
	id := uuid.NewString()
	s := New(st.opts...)

	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	st.sweep(now)
	if st.limits.MaxSessions > 0 {
		for len(st.sessions) >= st.limits.MaxSessions {
			st.evictOldest()
		}
	}
	st.sessions[id] = &entry{state: s, lastSeen: now}
	return id, s
}

// Get returns the session with id and marks it as used. An expired session
// is removed and reported as missing.
func (st *Store) Get(id string) (*State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if st.expired(e, now) {
		delete(st.sessions, id)
		return nil, false
	}
	e.lastSeen = now
	return e.state, true
}

// Delete removes the session with id and reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Sweep drops every expired session and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sweep(st.now())
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) expired(e *entry, now time.Time) bool {
	return st.limits.TTL > 0 && now.Sub(e.lastSeen) > st.limits.TTL
}

func (st *Store) sweep(now time.Time) int {
	n := 0
	for id, e := range st.sessions {
		if st.expired(e, now) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

func (st *Store) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, e := range st.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(st.sessions, oldestID)
}

package session

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const CookieName = "foto2latex_session"

var ErrBusy = errors.New("an extraction is already running for this session")

type entry struct {
	state    State
	inFlight bool
	seen     time.Time
}

// Store keeps session state in memory. Nothing survives a restart.
// Sessions without a result are dropped as soon as their extraction ends;
// the rest are evicted once idle for longer than the store's ttl.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Load(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return State{}
	}
	if s.expired(e) && !e.inFlight {
		delete(s.sessions, id)
		return State{}
	}
	e.seen = s.now()
	return e.state
}

func (s *Store) Save(id string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !st.HasResult() {
		if e, ok := s.sessions[id]; ok && !e.inFlight {
			delete(s.sessions, id)
		}
		return
	}
	s.get(id).state = st
}

// Begin marks an extraction as running for id. The returned func must be
// called when it finishes. ErrBusy is returned if one is already running.
func (s *Store) Begin(id string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.get(id)
	if e.inFlight {
		return nil, ErrBusy
	}
	e.inFlight = true

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			e, ok := s.sessions[id]
			if !ok {
				return
			}
			e.inFlight = false
			if !e.state.HasResult() {
				delete(s.sessions, id)
			}
		})
	}, nil
}

// Len returns the number of sessions currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) get(id string) *entry {
	e, ok := s.sessions[id]
	if !ok {
		s.evictIdle()
		e = &entry{}
		s.sessions[id] = e
	}
	e.seen = s.now()
	return e
}

func (s *Store) evictIdle() {
	for id, e := range s.sessions {
		if s.expired(e) && !e.inFlight {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.seen) > s.ttl
}

// ID returns the session id carried by r, issuing a new cookie on w when absent.
// The cookie lives as long as an idle session does.
func (s *Store) ID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Package session holds the signed-in user of the client and the UI flags
// that travel with it.
//
// Every change produces a new immutable [Snapshot]; readers never see a
// partially applied update. Views learn about changes through a single
// Subscribe point instead of polling.
package session

import (
	"sync"

	"github.com/MKhiriev/veepo/models"
)

// Snapshot is the session at one point in time. It is never mutated after
// publication.
type Snapshot struct {
	User  models.User
	Token string
}

// Listener receives the new snapshot after every change. ok is false once the
// session was cleared.
type Listener func(snapshot Snapshot, ok bool)

// Store is safe for concurrent use. The zero value is not usable; call
// [NewStore].
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
	prefs   models.Preferences

	listenersMu sync.Mutex
	listeners   map[uint64]Listener
	nextID      uint64

	// notifyMu orders deliveries the same way changes were applied.
	notifyMu sync.Mutex
}

func NewStore() *Store {
	return &Store{
		prefs:     models.DefaultPreferences(),
		listeners: make(map[uint64]Listener),
	}
}

// Current returns the active session. ok is false when nobody is signed in.
func (s *Store) Current() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}

// Set replaces the session, typically after login or a restored run.
func (s *Store) Set(user models.User, token string) {
	s.mu.Lock()
	s.current = &Snapshot{User: user, Token: token}
	s.publishLocked()
}

// UpdateUser swaps the user of the active session and keeps its token. It
// does nothing when nobody is signed in.
func (s *Store) UpdateUser(user models.User) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = &Snapshot{User: user, Token: s.current.Token}
	s.publishLocked()
}

// Clear signs out. Clearing an empty store notifies nobody.
func (s *Store) Clear() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.publishLocked()
}

// Token returns the bearer token of the active session or "".
func (s *Store) Token() string {
	snapshot, _ := s.Current()
	return snapshot.Token
}

// Preferences returns the UI flags.
func (s *Store) Preferences() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetPreferences replaces the UI flags. Preferences survive sign-out.
func (s *Store) SetPreferences(prefs models.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = prefs
}

// Subscribe registers l for every later change and returns a function that
// removes it. Listeners run synchronously in change order and must not call
// Set, UpdateUser or Clear.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// publishLocked must be called with mu held; it releases mu before the
// listeners run.
func (s *Store) publishLocked() {
	var snapshot Snapshot
	ok := s.current != nil
	if ok {
		snapshot = *s.current
	}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(snapshot, ok)
	}
}

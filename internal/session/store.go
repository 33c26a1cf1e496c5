// Package session holds the console's single authentication credential: the
// bearer token issued by the remote API on login. The token survives restarts
// through a Stash and every mutation is broadcast to subscribers.
package session

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Stash persists the token under a fixed key so it outlives the process.
type Stash interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type Store struct {
	stash Stash
	token atomic.String

	mu   sync.Mutex
	subs []func(token string)
}

// NewStore loads the previously persisted token, if any, to determine the
// initial authentication state.
func NewStore(stash Stash) (*Store, error) {
	token, err := stash.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load persisted session token")
	}

	s := &Store{stash: stash}
	s.token.Store(token)
	return s, nil
}

// Set persists the token and broadcasts it to subscribers.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stash.Save(token); err != nil {
		return errors.Wrap(err, "failed to persist session token")
	}
	s.token.Store(token)
	s.broadcast(token)
	return nil
}

// Clear removes the token and broadcasts the empty credential.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stash.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear session token")
	}
	s.token.Store("")
	s.broadcast("")
	return nil
}

// Current returns the stored token, or "" when unauthenticated.
func (s *Store) Current() string {
	return s.token.Load()
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != ""
}

// Subscribe registers fn to be called with the new token on every mutation.
// Subscriptions are permanent.
func (s *Store) Subscribe(fn func(token string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// callers hold s.mu
func (s *Store) broadcast(token string) {
	for _, fn := range s.subs {
		fn(token)
	}
}

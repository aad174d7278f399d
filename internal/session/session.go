// Package session holds the authenticated state of one actor: the core API
// bearer token, the role, and the theme usage samples. State lives in an
// external key-value store and is passed around explicitly; there is no
// package-level singleton.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/lokaclean/backoffice/internal/domain"
)

var ErrNotFound = errors.New("session not found")

// MaxUsageSamples caps the theme histogram; older samples are dropped first.
const MaxUsageSamples = 200

// State is what survives between requests.
type State struct {
	Token        string       `json:"token"`
	Actor        domain.Actor `json:"actor"`
	UsageSamples []int        `json:"usage_samples,omitempty"`
}

// Store persists session state under an opaque id.
type Store interface {
	Put(ctx context.Context, id string, st State) error
	Get(ctx context.Context, id string) (State, error)
	Delete(ctx context.Context, id string) error
}

// Session is one live session, loaded from or created in a Store.
type Session struct {
	ID string
	State

	store Store
}

// Manager creates, loads and clears sessions against one store.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Create opens a fresh session for a logged-in actor.
func (m *Manager) Create(ctx context.Context, token string, actor domain.Actor) (*Session, error) {
	s := &Session{
		ID:    uuid.NewString(),
		State: State{Token: token, Actor: actor},
		store: m.store,
	}
	if err := m.store.Put(ctx, s.ID, s.State); err != nil {
		return nil, err
	}
	return s, nil
}

// Load restores a session by id; ErrNotFound when expired or cleared.
func (m *Manager) Load(ctx context.Context, id string) (*Session, error) {
	st, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Session{ID: id, State: st, store: m.store}, nil
}

// Destroy removes a session by id; unknown ids are not an error for redis,
// and callers treat teardown as best effort anyway.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

// Save writes the current state back.
func (s *Session) Save(ctx context.Context) error {
	return s.store.Put(ctx, s.ID, s.State)
}

// Clear removes the session from the store and blanks the in-memory state.
func (s *Session) Clear(ctx context.Context) error {
	err := s.store.Delete(ctx, s.ID)
	s.State = State{}
	return err
}

// RecordUsage appends one hour-of-day sample, trimming to MaxUsageSamples.
func (s *Session) RecordUsage(hour int) {
	if hour < 0 || hour > 23 {
		return
	}
	s.UsageSamples = append(s.UsageSamples, hour)
	if n := len(s.UsageSamples); n > MaxUsageSamples {
		s.UsageSamples = s.UsageSamples[n-MaxUsageSamples:]
	}
}

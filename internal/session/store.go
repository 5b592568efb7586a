package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
)

// StorageKey is the durable storage key holding the serialized session
const StorageKey = "fleetUser"

// LoginPath is where the dashboard navigates after a logout
const LoginPath = "/login"

// State is the authentication state of the Store
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Store holds the current dashboard identity and mirrors it to Storage.
// The only transitions are Anonymous -> Authenticated via Login or
// Restore, and Authenticated -> Anonymous via Logout.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	log     *logger.Logger
	current *models.Session
}

// NewStore returns an anonymous store backed by storage
func NewStore(storage Storage, log *logger.Logger) *Store {
	return &Store{storage: storage, log: log}
}

// Restore loads the persisted session. Missing, unreadable or malformed
// data leaves the store anonymous; it never fails.
func (s *Store) Restore(ctx context.Context) State {
	raw, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WithError(err).Warn("⚠️  Session storage read failed, starting anonymous")
		}
		return s.set(nil)
	}

	var identity models.Session
	if err := json.Unmarshal([]byte(raw), &identity); err != nil || identity.Email == "" || identity.Name == "" {
		s.log.WithField("key", StorageKey).Warn("⚠️  Ignoring malformed persisted session")
		return s.set(nil)
	}

	s.log.WithField("email", identity.Email).Info("🔐 Session restored")
	return s.set(&identity)
}

// Login makes identity the active session and persists it. The session is
// active even when the storage write fails; the write error is returned
// so callers can report that it will not survive a restart.
func (s *Store) Login(ctx context.Context, identity models.Session) error {
	s.set(&identity)

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, StorageKey, string(data)); err != nil {
		s.log.WithError(err).Error("❌ Failed to persist session")
		return err
	}

	s.log.WithField("email", identity.Email).Info("✅ Login successful")
	return nil
}

// Logout clears the session and its storage entry and returns the path the
// client should navigate to.
func (s *Store) Logout(ctx context.Context) string {
	s.set(nil)
	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		s.log.WithError(err).Error("❌ Failed to remove persisted session")
	}
	s.log.Info("🔴 Logged out")
	return LoginPath
}

// Current returns the active identity, if any
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == Authenticated
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Anonymous
	}
	return Authenticated
}

// Dispose forgets the in-memory session without touching storage, so a
// later Restore on a new Store picks it up again.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *Store) set(identity *models.Session) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = identity
	if identity == nil {
		return Anonymous
	}
	return Authenticated
}

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

// SessionStore holds the single authenticated identity for this client and
// mirrors it into a SessionRepository so the identity survives restarts.
//
// The directory client this serves is single-user, but the store is still
// safe for concurrent readers because the HTTP layer calls it from multiple
// goroutines.
type SessionStore struct {
	mu            sync.RWMutex
	current       *domain.User
	auth          ports.Authenticator
	directory     ports.Directory
	repo          ports.SessionRepository
	strictRestore bool
	log           zerolog.Logger
}

// NewSessionStore returns an empty (unauthenticated) session store.
//
// strictRestore controls what Restore does with a persisted record: when
// true, the record is re-validated against the directory and discarded if it
// no longer matches; when false, the record is adopted as-is, reproducing the
// original trust-on-read behaviour.
func NewSessionStore(
	auth ports.Authenticator,
	directory ports.Directory,
	repo ports.SessionRepository,
	strictRestore bool,
	log zerolog.Logger,
) *SessionStore {
	return &SessionStore{
		auth:          auth,
		directory:     directory,
		repo:          repo,
		strictRestore: strictRestore,
		log:           log,
	}
}

// Restore loads the persisted identity, if any. A missing record leaves the
// session unauthenticated and is not an error. In strict mode a record that
// no longer matches the directory is deleted and reported as
// domain.ErrSessionCorrupt; the session stays unauthenticated.
func (s *SessionStore) Restore(ctx context.Context) error {
	user, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil
		}
		if errors.Is(err, domain.ErrSessionCorrupt) {
			// Undecodable blob: drop it and start unauthenticated.
			s.log.Warn().Err(err).Msg("persisted session unreadable, discarding")
			if delErr := s.repo.Delete(ctx); delErr != nil {
				s.log.Error().Err(delErr).Msg("failed to delete corrupt session record")
			}
			return domain.ErrSessionCorrupt
		}
		return err
	}

	if s.strictRestore {
		if !s.matchesDirectory(user) {
			s.log.Warn().
				Str("role", string(user.Role)).
				Str("identifier", user.Identifier()).
				Msg("persisted session does not match directory, discarding")
			if err := s.repo.Delete(ctx); err != nil {
				s.log.Error().Err(err).Msg("failed to delete corrupt session record")
			}
			return domain.ErrSessionCorrupt
		}
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	s.log.Info().
		Str("role", string(user.Role)).
		Str("name", user.Name).
		Msg("session restored")
	return nil
}

// matchesDirectory re-runs the directory lookup for a restored snapshot:
// same (role, identifier) key the authenticator uses, plus password equality
// so a snapshot taken before a credential change is rejected.
func (s *SessionStore) matchesDirectory(user *domain.User) bool {
	if user == nil || !user.Role.Valid() || user.Identifier() == "" {
		return false
	}
	for _, u := range s.directory.ByRole(user.Role) {
		if u.Identifier() == user.Identifier() &&
			subtle.ConstantTimeCompare([]byte(u.Password), []byte(user.Password)) == 1 {
			return true
		}
	}
	return false
}

// Login authenticates the triple and, on success, replaces the current
// identity and persists it. A mismatch returns (false, nil) and leaves the
// session exactly as it was — a failed re-login never logs anyone out.
func (s *SessionStore) Login(ctx context.Context, identifier, password string, role domain.Role) (bool, error) {
	user, err := s.auth.Authenticate(identifier, password, role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return false, nil
		}
		return false, err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	// Persistence failure is logged, not fatal: the in-memory session is
	// already live, the identity just won't survive a restart.
	if err := s.repo.Save(ctx, user); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session record")
	}

	s.log.Info().
		Str("role", string(role)).
		Str("name", user.Name).
		Msg("login succeeded")
	return true, nil
}

// Logout clears the session and deletes the persisted record. Calling it on
// an already-empty session is a no-op.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to delete session record")
		return err
	}
	return nil
}

// CurrentUser returns a copy of the authenticated identity, or nil.
func (s *SessionStore) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsAuthenticated reports whether a user is logged in.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

package ports

import (
	"context"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

// SessionStore holds the zero-or-one authenticated identity for this client.
// Login replaces any existing identity; Logout is idempotent.
type SessionStore interface {
	// Restore adopts a previously persisted identity, if one exists. Called
	// once at startup before the store is handed to anything else.
	Restore(ctx context.Context) error
	// Login authenticates and, on success, adopts and persists the identity.
	// A failed attempt leaves the current session untouched and returns false
	// with a nil error.
	Login(ctx context.Context, identifier, password string, role domain.Role) (bool, error)
	Logout(ctx context.Context) error
	CurrentUser() *domain.User
	IsAuthenticated() bool
}

// SessionRepository persists the single session record under one named key.
// Load returns domain.ErrNoSession when no record exists.
type SessionRepository interface {
	Load(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context) error
}

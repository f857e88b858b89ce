package ports

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// Authenticator resolves a credential triple against the directory. It is
// pure: no side effects, deterministic for a fixed directory.
type Authenticator interface {
	// Authenticate searches the partition selected by role — never any other —
	// for the first record whose identifier and password both match exactly.
	// Returns domain.ErrInvalidCredentials when nothing matches.
	Authenticate(identifier, password string, role domain.Role) (*domain.User, error)
}

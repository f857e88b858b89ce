package ports

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// Directory exposes the three role partitions of the club roster. All slices
// are ordered; All preserves members-then-bearers-then-admins order. The
// directory is read-only for the lifetime of the process.
type Directory interface {
	Members() []domain.User
	Bearers() []domain.User
	Admins() []domain.User
	All() []domain.User
	// ByRole returns the partition for a role, or nil for an unknown role.
	ByRole(role domain.Role) []domain.User
}

package ports

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// ViewRouter maps the current session to a top-level dashboard variant.
type ViewRouter interface {
	// SelectView returns the variant for the given session state. Nil user,
	// unknown role, or anything else unexpected falls back to the login view.
	SelectView(user *domain.User) domain.ViewVariant
}

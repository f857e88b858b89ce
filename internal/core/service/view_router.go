package service

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// ViewRouter selects the top-level dashboard variant for a session.
type ViewRouter struct{}

func NewViewRouter() *ViewRouter {
	return &ViewRouter{}
}

// SelectView dispatches on the session's role. No session, or a role the
// switch does not recognise, falls back to the login view; an unknown role is
// a defensive default, not a distinct state.
func (r *ViewRouter) SelectView(user *domain.User) domain.ViewVariant {
	if user == nil {
		return domain.ViewLogin
	}
	switch user.Role {
	case domain.RoleMember:
		return domain.ViewMember
	case domain.RoleBearer:
		return domain.ViewBearer
	case domain.RoleAdmin:
		return domain.ViewAdmin
	default:
		return domain.ViewLogin
	}
}

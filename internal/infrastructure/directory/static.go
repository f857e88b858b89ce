// Package directory provides the compiled-in club roster. It is the default
// backing for the Directory port; the mongo package offers the same contract
// over a real datastore.
package directory

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// StaticDirectory serves the seed roster. Partition order is fixed at
// construction and never changes; every accessor returns a fresh copy.
type StaticDirectory struct {
	members []domain.User
	bearers []domain.User
	admins  []domain.User
}

// NewStatic returns a directory over the built-in seed data.
func NewStatic() *StaticDirectory {
	return &StaticDirectory{members: seedMembers, bearers: seedBearers, admins: seedAdmins}
}

// NewStaticFrom returns a directory over caller-supplied partitions. Used by
// tests to build small fixture rosters.
func NewStaticFrom(members, bearers, admins []domain.User) *StaticDirectory {
	return &StaticDirectory{members: members, bearers: bearers, admins: admins}
}

func (d *StaticDirectory) Members() []domain.User { return clone(d.members) }
func (d *StaticDirectory) Bearers() []domain.User { return clone(d.bearers) }
func (d *StaticDirectory) Admins() []domain.User  { return clone(d.admins) }

// All concatenates the partitions preserving members, bearers, admins order.
func (d *StaticDirectory) All() []domain.User {
	all := make([]domain.User, 0, len(d.members)+len(d.bearers)+len(d.admins))
	all = append(all, d.members...)
	all = append(all, d.bearers...)
	all = append(all, d.admins...)
	return all
}

func (d *StaticDirectory) ByRole(role domain.Role) []domain.User {
	switch role {
	case domain.RoleMember:
		return d.Members()
	case domain.RoleBearer:
		return d.Bearers()
	case domain.RoleAdmin:
		return d.Admins()
	default:
		return nil
	}
}

func clone(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	return out
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/ports"
)

// ManagementService backs the admin screens. The directory and catalog are
// immutable, so each operation checks the actor, validates its input against
// the directory where one applies, and reports the simulated outcome through
// the notifier. Nothing here mutates anything.
type ManagementService struct {
	directory ports.Directory
	notifier  ports.Notifier
	log       zerolog.Logger
}

func NewManagementService(directory ports.Directory, notifier ports.Notifier, log zerolog.Logger) *ManagementService {
	return &ManagementService{directory: directory, notifier: notifier, log: log}
}

func (s *ManagementService) requireAdmin(actor *domain.User) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// findManaged looks a user up by RID across the member and bearer partitions.
// The admin screens operate on every non-admin user, bearers included, and
// never key on id, which is not unique across the roster.
func (s *ManagementService) findManaged(rid string) (*domain.User, error) {
	for _, partition := range [][]domain.User{s.directory.Members(), s.directory.Bearers()} {
		for _, u := range partition {
			if u.RID == rid {
				match := u
				return &match, nil
			}
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *ManagementService) emit(actor *domain.User, entity, action, message string) {
	s.notifier.Notify(domain.Notification{
		Entity:  entity,
		Action:  action,
		Actor:   actor.Name,
		Message: message,
	})
}

func (s *ManagementService) AddMember(ctx context.Context, actor *domain.User, name string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	s.emit(actor, "member", "add", fmt.Sprintf("member %s added", name))
	return nil
}

func (s *ManagementService) UpdateMember(ctx context.Context, actor *domain.User, rid, name string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.findManaged(rid); err != nil {
		return err
	}
	s.emit(actor, "member", "update", fmt.Sprintf("member %s updated", name))
	return nil
}

func (s *ManagementService) DeleteMember(ctx context.Context, actor *domain.User, rid string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	member, err := s.findManaged(rid)
	if err != nil {
		return err
	}
	s.emit(actor, "member", "delete", fmt.Sprintf("member %s deleted", member.Name))
	return nil
}

func (s *ManagementService) SaveProject(ctx context.Context, actor *domain.User, title string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	s.emit(actor, "project", "save", fmt.Sprintf("project %q saved", title))
	return nil
}

func (s *ManagementService) DeleteProject(ctx context.Context, actor *domain.User, id string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	s.emit(actor, "project", "delete", fmt.Sprintf("project %s deleted", id))
	return nil
}

func (s *ManagementService) SaveAnnouncement(ctx context.Context, actor *domain.User, title string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	s.emit(actor, "announcement", "save", fmt.Sprintf("announcement %q published", title))
	return nil
}

func (s *ManagementService) DeleteAnnouncement(ctx context.Context, actor *domain.User, id string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	s.emit(actor, "announcement", "delete", fmt.Sprintf("announcement %s deleted", id))
	return nil
}

func (s *ManagementService) UpdateAttendance(ctx context.Context, actor *domain.User, rid string, attendance int) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	member, err := s.findManaged(rid)
	if err != nil {
		return err
	}
	s.emit(actor, "attendance", "update",
		fmt.Sprintf("attendance for %s set to %d%%", member.Name, attendance))
	return nil
}

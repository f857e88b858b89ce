package ports

import (
	"context"

	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
)

// ManagementService implements the admin screens' operations. The directory
// and club content are immutable, so every operation only validates, reports
// the outcome through the notification surface, and returns.
type ManagementService interface {
	AddMember(ctx context.Context, actor *domain.User, name string) error
	UpdateMember(ctx context.Context, actor *domain.User, rid, name string) error
	DeleteMember(ctx context.Context, actor *domain.User, rid string) error
	SaveProject(ctx context.Context, actor *domain.User, title string) error
	DeleteProject(ctx context.Context, actor *domain.User, id string) error
	SaveAnnouncement(ctx context.Context, actor *domain.User, title string) error
	DeleteAnnouncement(ctx context.Context, actor *domain.User, id string) error
	UpdateAttendance(ctx context.Context, actor *domain.User, rid string, attendance int) error
}

// Notifier is the fire-and-forget outcome sink used by management operations.
type Notifier interface {
	Notify(notification domain.Notification)
}

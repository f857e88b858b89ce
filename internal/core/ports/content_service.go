package ports

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// ContentService serves the read-only club content shown on the dashboards.
type ContentService interface {
	Projects() []domain.Project
	Announcements() []domain.Announcement
	// MyProjects returns the project participation history for a user.
	MyProjects(user *domain.User) []domain.Participation
	MemberGrowth() []domain.GrowthPoint
	ProjectDistribution() []domain.DistributionSlice
}

package service

import "github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"

// Catalog bundles the static club content served to the dashboards.
type Catalog struct {
	Projects      []domain.Project
	Announcements []domain.Announcement
	Participation []domain.Participation
	Growth        []domain.GrowthPoint
	Distribution  []domain.DistributionSlice
}

// ContentService serves read-only club content. Everything is copied on the
// way out so callers cannot mutate the shared catalog.
type ContentService struct {
	catalog Catalog
}

func NewContentService(catalog Catalog) *ContentService {
	return &ContentService{catalog: catalog}
}

func (s *ContentService) Projects() []domain.Project {
	out := make([]domain.Project, len(s.catalog.Projects))
	copy(out, s.catalog.Projects)
	return out
}

func (s *ContentService) Announcements() []domain.Announcement {
	out := make([]domain.Announcement, len(s.catalog.Announcements))
	copy(out, s.catalog.Announcements)
	return out
}

// MyProjects returns the participation history for a user. Admins have no
// participation record; everyone else currently shares the club-wide mock
// history, matching the source data.
func (s *ContentService) MyProjects(user *domain.User) []domain.Participation {
	if user == nil || user.Role == domain.RoleAdmin {
		return nil
	}
	out := make([]domain.Participation, len(s.catalog.Participation))
	copy(out, s.catalog.Participation)
	return out
}

func (s *ContentService) MemberGrowth() []domain.GrowthPoint {
	out := make([]domain.GrowthPoint, len(s.catalog.Growth))
	copy(out, s.catalog.Growth)
	return out
}

func (s *ContentService) ProjectDistribution() []domain.DistributionSlice {
	out := make([]domain.DistributionSlice, len(s.catalog.Distribution))
	copy(out, s.catalog.Distribution)
	return out
}

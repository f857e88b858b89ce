package domain

// ProjectStatus represents the lifecycle state of a club project.
type ProjectStatus string

const (
	ProjectCompleted ProjectStatus = "Completed"
	ProjectOngoing   ProjectStatus = "Ongoing"
	ProjectPlanned   ProjectStatus = "Planned"
)

// Project is a club service project shown on the dashboards.
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Status       ProjectStatus `json:"status"`
	Date         string        `json:"date"`
	Participants int           `json:"participants"`
	DPPAwarded   int           `json:"dpp_awarded"`
	Category     string        `json:"category"`
	Image        string        `json:"image,omitempty"`
}

// AnnouncementPriority ranks announcements for display ordering.
type AnnouncementPriority string

const (
	PriorityHigh   AnnouncementPriority = "High"
	PriorityMedium AnnouncementPriority = "Medium"
	PriorityLow    AnnouncementPriority = "Low"
)

// Announcement is a club-wide notice authored by an office bearer or admin.
type Announcement struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Message  string               `json:"message"`
	Date     string               `json:"date"`
	Priority AnnouncementPriority `json:"priority"`
	Author   string               `json:"author"`
}

// Participation records a member's involvement in a single project.
type Participation struct {
	ProjectID    string `json:"project_id"`
	ProjectTitle string `json:"project_title"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	DPPEarned    int    `json:"dpp_earned"`
}

// GrowthPoint is one month of the membership growth series.
type GrowthPoint struct {
	Month   string `json:"month"`
	Members int    `json:"members"`
}

// DistributionSlice is one category of the project distribution breakdown.
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Package content holds the static club catalog: projects, announcements,
// participation history, and the analytics series shown on the bearer
// dashboard. Demo data carried over from the club's original dataset.
package content

import (
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/domain"
	"github.com/V-HUB-cpu/rotaract-dashboard/internal/core/service"
)

// Seed returns the full static catalog.
func Seed() service.Catalog {
	return service.Catalog{
		Projects:      projects,
		Announcements: announcements,
		Participation: participation,
		Growth:        memberGrowth,
		Distribution:  projectDistribution,
	}
}

var projects = []domain.Project{
	{
		ID: "1", Title: "Beach Cleanup Drive",
		Description:  "Community service project to clean local beaches and raise awareness about marine pollution.",
		Status:       domain.ProjectCompleted,
		Date:         "2024-01-15", Participants: 45, DPPAwarded: 150, Category: "Environment",
	},
	{
		ID: "2", Title: "Digital Literacy Program",
		Description:  "Teaching basic computer skills to underprivileged children in rural areas.",
		Status:       domain.ProjectOngoing,
		Date:         "2024-01-10", Participants: 32, DPPAwarded: 120, Category: "Education",
	},
	{
		ID: "3", Title: "Blood Donation Camp",
		Description:  "Organizing blood donation drive in partnership with local hospitals.",
		Status:       domain.ProjectCompleted,
		Date:         "2023-12-20", Participants: 58, DPPAwarded: 180, Category: "Health",
	},
	{
		ID: "4", Title: "Career Guidance Workshop",
		Description:  "Professional development workshop for college students with industry experts.",
		Status:       domain.ProjectOngoing,
		Date:         "2024-01-08", Participants: 28, DPPAwarded: 100, Category: "Professional Development",
	},
	{
		ID: "5", Title: "Tree Plantation Drive",
		Description:  "Planting 1000 trees across the city to combat climate change.",
		Status:       domain.ProjectCompleted,
		Date:         "2023-12-10", Participants: 52, DPPAwarded: 160, Category: "Environment",
	},
	{
		ID: "6", Title: "Sports Day for Kids",
		Description:  "Organizing sports activities for children from local orphanages.",
		Status:       domain.ProjectPlanned,
		Date:         "2024-02-05", Participants: 0, DPPAwarded: 0, Category: "Club Service",
	},
	{
		ID: "7", Title: "Food Distribution",
		Description:  "Weekly food distribution program for homeless people.",
		Status:       domain.ProjectOngoing,
		Date:         "2024-01-01", Participants: 38, DPPAwarded: 140, Category: "Community Service",
	},
	{
		ID: "8", Title: "International Night",
		Description:  "Cultural exchange event celebrating diversity and international understanding.",
		Status:       domain.ProjectPlanned,
		Date:         "2024-02-14", Participants: 0, DPPAwarded: 0, Category: "International Service",
	},
}

var announcements = []domain.Announcement{
	{
		ID: "1", Title: "General Body Meeting",
		Message:  "Monthly GBM scheduled for January 20, 2024 at 6:00 PM. Attendance is mandatory for all members.",
		Date:     "2024-01-12", Priority: domain.PriorityHigh, Author: "Rahul Venkatesh",
	},
	{
		ID: "2", Title: "Project Registration Open",
		Message:  "Registration is now open for upcoming Beach Cleanup Drive. Please register by January 18th.",
		Date:     "2024-01-10", Priority: domain.PriorityMedium, Author: "Anjali Subramaniam",
	},
	{
		ID: "3", Title: "DPP Update",
		Message:  "DPP points for December projects have been updated. Check your profile for details.",
		Date:     "2024-01-08", Priority: domain.PriorityLow, Author: "Naveen Prakash",
	},
	{
		ID: "4", Title: "New Member Orientation",
		Message:  "Welcome session for new members on January 25, 2024. All new members must attend.",
		Date:     "2024-01-11", Priority: domain.PriorityMedium, Author: "Kavya Balakrishnan",
	},
	{
		ID: "5", Title: "District Conference",
		Message:  "Save the date! District Conference scheduled for March 15-17, 2024. Early bird registration open.",
		Date:     "2024-01-13", Priority: domain.PriorityHigh, Author: "Arjun Srinivasan",
	},
}

var participation = []domain.Participation{
	{ProjectID: "1", ProjectTitle: "Beach Cleanup Drive", Date: "2024-01-15", Status: "Completed", DPPEarned: 50},
	{ProjectID: "2", ProjectTitle: "Digital Literacy Program", Date: "2024-01-10", Status: "Ongoing", DPPEarned: 40},
	{ProjectID: "3", ProjectTitle: "Blood Donation Camp", Date: "2023-12-20", Status: "Completed", DPPEarned: 60},
	{ProjectID: "5", ProjectTitle: "Tree Plantation Drive", Date: "2023-12-10", Status: "Completed", DPPEarned: 55},
}

var memberGrowth = []domain.GrowthPoint{
	{Month: "Jul", Members: 45},
	{Month: "Aug", Members: 52},
	{Month: "Sep", Members: 58},
	{Month: "Oct", Members: 61},
	{Month: "Nov", Members: 63},
	{Month: "Dec", Members: 65},
}

var projectDistribution = []domain.DistributionSlice{
	{Name: "Community Service", Value: 25},
	{Name: "Environment", Value: 30},
	{Name: "Education", Value: 20},
	{Name: "Health", Value: 15},
	{Name: "Professional Dev", Value: 10},
}

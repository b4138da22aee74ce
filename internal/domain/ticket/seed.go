package ticket

import "dubhub/internal/domain/shared/values"

// Seed returns the starter collection used when no persisted data exists or
// the stored payload cannot be parsed.
func Seed() []Ticket {
	return []Ticket{
		{
			ID:              "T-1001",
			Type:            TypeFeatureRequest,
			Title:           "Add Dark Mode to Dashboard",
			StartDate:       "05/01/2024",
			LastUpdatedDate: "05/10/2024",
			SubmissionDate:  "04/28/2024",
			ProductArea:     AreaFullpath,
			Platform:        PlatformFOCUS,
			Location:        "Settings Page",
			Priority:        values.PriorityP2,
			Status:          StatusInProgress,
			Reason:          "High user demand",
			SubmitterName:   "John Doe",
			Client:          "Acme Corp",
			Summary:         "Implement a system-wide dark mode toggle.",
			Details:         "Users want a dark mode toggle in the header. This involves updating CSS variables and persisting state in local storage.",
			Updates: []Update{
				{ID: "u1", Author: "Jane Smith", Date: "05/02/2024", Comment: "Started working on CSS variables."},
			},
			IsFavorite: true,
		},
		{
			ID:              "T-1002",
			Type:            TypeIssue,
			Title:           "Login Timeout Incorrect",
			LastUpdatedDate: "05/11/2024",
			SubmissionDate:  "05/09/2024",
			ProductArea:     AreaReynolds,
			Platform:        PlatformUCP,
			Location:        "Auth Service",
			Priority:        values.PriorityP1,
			Status:          StatusTesting,
			Reason:          "Security vulnerability",
			SubmitterName:   "Security Team",
			Client:          "Reynolds Dealership",
			FPTicketNumber:  5042,
			Summary:         "Session timeouts are not respecting config.",
			Details:         "Session expires after 5 minutes instead of 30. This is causing issues for users filling out long forms.",
			Updates:         []Update{},
		},
		{
			ID:              "T-1003",
			Type:            TypeQuestion,
			Title:           "API Rate Limits",
			LastUpdatedDate: "05/05/2024",
			SubmissionDate:  "05/01/2024",
			ProductArea:     AreaFullpath,
			Platform:        PlatformCurator,
			Location:        "API Docs",
			Priority:        values.PriorityP3,
			Status:          StatusOnHold,
			Reason:          "Waiting for vendor response",
			SubmitterName:   "Alice Johnson",
			Client:          "TechDrive Inc.",
			Summary:         "Clarification needed on reporting endpoint limits.",
			Details:         "What is the current rate limit for the reporting endpoint? The documentation says 100 req/min but we are seeing 429s at 50 req/min.",
			Updates:         []Update{},
			IsFavorite:      true,
		},
		{
			ID:              "T-1004",
			Type:            TypeIssue,
			Title:           "Export Button Broken",
			LastUpdatedDate: "04/20/2024",
			SubmissionDate:  "04/15/2024",
			ProductArea:     AreaReynolds,
			Platform:        PlatformFOCUS,
			Location:        "Reports > Sales",
			Priority:        values.PriorityP2,
			Status:          StatusCompleted,
			Reason:          "Bug fix",
			SubmitterName:   "Bob Williams",
			Client:          "Global Motors",
			Summary:         "CSV Export fails with 500 error.",
			Details:         "Clicking CSV export throws a 500 error. Logs indicate a null pointer exception in the CSV generator service.",
			Updates: []Update{
				{ID: "u2", Author: "Dev Team", Date: "04/18/2024", Comment: "Fixed typo in backend handler."},
			},
		},
		{
			ID:              "T-1005",
			Type:            TypeFeatureRequest,
			Title:           "New Analytics Widget",
			StartDate:       "06/01/2024",
			LastUpdatedDate: "05/12/2024",
			SubmissionDate:  "05/10/2024",
			ProductArea:     AreaFullpath,
			Platform:        PlatformFOCUS,
			Location:        "Dashboard",
			Priority:        values.PriorityP3,
			Status:          StatusNotStarted,
			SubmitterName:   "Product Team",
			Client:          "Prestige Worldwide",
			Summary:         "Dashboard widget for MRR visualization.",
			Details:         "Add a widget showing monthly recurring revenue. It should allow filtering by date range and export to PDF.",
			Updates:         []Update{},
		},
		{
			ID:              "T-1006",
			Type:            TypeIssue,
			Title:           "Mobile View alignment",
			LastUpdatedDate: "05/12/2024",
			SubmissionDate:  "05/11/2024",
			ProductArea:     AreaFullpath,
			Platform:        PlatformCurator,
			Location:        "Landing Page",
			Priority:        values.PriorityP4,
			Status:          StatusPMReview,
			SubmitterName:   "QA Team",
			Client:          "TechDrive Inc.",
			Summary:         "Logo misalignment on small screens.",
			Details:         "Logo is slightly off-center on iPhone SE. Needs to be vertically centered in the navbar.",
			Updates:         []Update{},
		},
	}
}

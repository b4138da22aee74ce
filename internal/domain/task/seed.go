package task

import "dubhub/internal/domain/shared/values"

// Seed returns the starter tasks used when no stored collection exists.
func Seed() []Task {
	return []Task{
		{
			ID:              "TASK-1715700000000",
			Title:           "Review North Georgia Toyota go-live checklist",
			Description:     "Confirm all DMT order lines are active and the website links resolve before the go-live review call.",
			Status:          StatusInProgress,
			Priority:        values.PriorityP1,
			DueDate:         "05/20/2024",
			Assignee:        "Sarah Connor",
			CreatedDate:     "05/12/2024",
			LastUpdatedDate: "05/14/2024",
		},
		{
			ID:              "TASK-1715400000000",
			Title:           "Update DMT intake checklist for new product codes",
			Description:     "Checklist still references retired product codes, refresh it against the current catalog.",
			Status:          StatusToDo,
			Priority:        values.PriorityP3,
			DueDate:         "",
			Assignee:        "",
			CreatedDate:     "05/10/2024",
			LastUpdatedDate: "05/10/2024",
		},
		{
			ID:              "TASK-1715100000000",
			Title:           "Archive Q1 onboarding decks",
			Description:     "",
			Status:          StatusCompleted,
			Priority:        values.PriorityP4,
			DueDate:         "04/30/2024",
			Assignee:        "Tony Stark",
			CreatedDate:     "04/22/2024",
			LastUpdatedDate: "04/29/2024",
		},
	}
}

package task

import (
	"sort"
	"strings"

	"dubhub/internal/shared/dates"
)

// FilterAll is the wildcard value for dropdown filters.
const FilterAll = "All"

// FilterState carries the active dropdown filters and free-text search.
type FilterState struct {
	Status   string
	Priority string
	Search   string
}

// Counts holds the open/completed partition totals, ignoring filters.
type Counts struct {
	Open      int `json:"open"`
	Completed int `json:"completed"`
}

// CountTabs derives the open/completed totals for a collection.
func CountTabs(tasks []Task) Counts {
	var c Counts
	for _, t := range tasks {
		if t.Status.IsCompleted() {
			c.Completed++
		} else {
			c.Open++
		}
	}
	return c
}

// Filter returns the tasks passing every active filter, with completed
// tasks pushed to the end and each group ordered by last-updated date
// descending.
func Filter(tasks []Task, f FilterState) []Task {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !wildcard(f.Status) && t.Status.String() != f.Status {
			continue
		}
		if !wildcard(f.Priority) && t.Priority.String() != f.Priority {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		result = append(result, t)
	}
	sort.SliceStable(result, func(i, j int) bool {
		ci, cj := result[i].Status.IsCompleted(), result[j].Status.IsCompleted()
		if ci != cj {
			return !ci
		}
		return dates.Compare(result[i].LastUpdatedDate, result[j].LastUpdatedDate) > 0
	})
	return result
}

func matchesSearch(t Task, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Assignee), search)
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

package resource

import (
	"sort"
	"strings"

	"dubhub/internal/shared/dates"
)

// FilterAll is the wildcard value for dropdown filters.
const FilterAll = "All"

// FilterState carries the active dropdown filters and free-text search.
// A filter equal to FilterAll (or empty) is no constraint.
type FilterState struct {
	Category string
	Scope    string
	Search   string
}

// Filter returns the resources passing the category and scope filters whose
// title, topics, or description contain the search text, sorted by date
// descending.
func Filter(resources []Resource, f FilterState) []Resource {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	result := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if !wildcard(f.Category) && r.Category.String() != f.Category {
			continue
		}
		if !wildcard(f.Scope) && r.Scope.String() != f.Scope {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		result = append(result, r)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return dates.Compare(result[i].Date, result[j].Date) > 0
	})
	return result
}

func matchesSearch(r Resource, search string) bool {
	if strings.Contains(strings.ToLower(r.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Topics.String()), search) {
		return true
	}
	return strings.Contains(strings.ToLower(r.Description), search)
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

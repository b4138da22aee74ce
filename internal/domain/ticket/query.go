package ticket

import (
	"sort"
	"strconv"
	"strings"

	"dubhub/internal/shared/dates"
)

// Tab is the coarse status-derived partition applied before search and
// field filters.
type Tab string

const (
	TabActive    Tab = "Active"
	TabOnHold    Tab = "On Hold"
	TabCompleted Tab = "Completed"
	TabFavorites Tab = "Favorites"
)

// FilterAll is the wildcard value for dropdown filters.
const FilterAll = "All"

// FilterState carries the active dropdown filters and free-text search.
// A filter equal to FilterAll (or empty) is no constraint.
type FilterState struct {
	Search      string
	Status      string
	Priority    string
	Type        string
	ProductArea string
}

// Counts holds the per-tab totals derived from the tab predicate alone,
// ignoring search and field filters.
type Counts struct {
	Active    int `json:"active"`
	OnHold    int `json:"onHold"`
	Completed int `json:"completed"`
	Favorites int `json:"favorites"`
}

// CountTabs derives per-tab totals for a collection.
func CountTabs(tickets []Ticket) Counts {
	var c Counts
	for _, t := range tickets {
		if matchesTab(t, TabActive) {
			c.Active++
		}
		if matchesTab(t, TabOnHold) {
			c.OnHold++
		}
		if matchesTab(t, TabCompleted) {
			c.Completed++
		}
		if matchesTab(t, TabFavorites) {
			c.Favorites++
		}
	}
	return c
}

// Filter returns the tickets passing the tab predicate, the free-text search
// and every active dropdown filter, sorted by priority rank ascending with a
// last-updated-date descending tie-break.
func Filter(tickets []Ticket, tab Tab, filters FilterState, search string) []Ticket {
	result := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !matchesTab(t, tab) {
			continue
		}
		if !matchesSearch(t, search) {
			continue
		}
		if !matchesFilters(t, filters) {
			continue
		}
		result = append(result, t)
	}
	sortTickets(result)
	return result
}

func matchesTab(t Ticket, tab Tab) bool {
	switch tab {
	case TabActive:
		return !t.Status.IsCompleted() && !t.Status.IsOnHold()
	case TabOnHold:
		return t.Status.IsOnHold()
	case TabCompleted:
		return t.Status.IsCompleted()
	case TabFavorites:
		return t.IsFavorite
	default:
		return true
	}
}

func matchesSearch(t Ticket, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(t.ID), search) {
		return true
	}
	if t.PMRNumber != 0 && strings.Contains(strconv.FormatInt(t.PMRNumber, 10), search) {
		return true
	}
	if t.FPTicketNumber != 0 && strings.Contains(strconv.FormatInt(t.FPTicketNumber, 10), search) {
		return true
	}
	return false
}

func matchesFilters(t Ticket, f FilterState) bool {
	if !wildcard(f.Status) && t.Status.String() != f.Status {
		return false
	}
	if !wildcard(f.Priority) && t.Priority.String() != f.Priority {
		return false
	}
	if !wildcard(f.Type) && t.Type.String() != f.Type {
		return false
	}
	if !wildcard(f.ProductArea) && t.ProductArea.String() != f.ProductArea {
		return false
	}
	return true
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

func sortTickets(tickets []Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		wi, wj := tickets[i].Priority.Weight(), tickets[j].Priority.Weight()
		if wi != wj {
			return wi < wj
		}
		return dates.Compare(tickets[i].LastUpdatedDate, tickets[j].LastUpdatedDate) > 0
	})
}

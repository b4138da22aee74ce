package dealership

import (
	"sort"
	"strconv"
	"strings"
)

// Tab partitions accounts into the working set and the terminated set.
type Tab string

const (
	TabActive    Tab = "Active"
	TabCancelled Tab = "Cancelled"
)

// Counts holds the per-tab totals.
type Counts struct {
	Active    int `json:"active"`
	Cancelled int `json:"cancelled"`
}

// CountTabs derives per-tab totals for a collection.
func CountTabs(dealerships []Dealership) Counts {
	var c Counts
	for _, d := range dealerships {
		if d.Status.IsCancelled() {
			c.Cancelled++
		} else {
			c.Active++
		}
	}
	return c
}

// Filter returns the accounts passing the tab predicate and the free-text
// search, sorted alphabetically by account name.
func Filter(dealerships []Dealership, tab Tab, search string) []Dealership {
	result := make([]Dealership, 0, len(dealerships))
	for _, d := range dealerships {
		if !matchesTab(d, tab) {
			continue
		}
		if !matchesSearch(d, search) {
			continue
		}
		result = append(result, d)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].AccountName) < strings.ToLower(result[j].AccountName)
	})
	return result
}

func matchesTab(d Dealership, tab Tab) bool {
	if tab == TabCancelled {
		return d.Status.IsCancelled()
	}
	return !d.Status.IsCancelled()
}

func matchesSearch(d Dealership, search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	lower := strings.ToLower(search)
	if strings.Contains(strings.ToLower(d.AccountName), lower) {
		return true
	}
	if d.AccountNumber != 0 && strings.Contains(strconv.FormatInt(d.AccountNumber, 10), search) {
		return true
	}
	if d.StoreNumber != "" && strings.Contains(strings.ToLower(d.StoreNumber), lower) {
		return true
	}
	return false
}

// ClientNames collects the distinct, non-empty account names sorted
// alphabetically. The ticket edit surface offers these as client choices.
func ClientNames(dealerships []Dealership) []string {
	seen := make(map[string]struct{}, len(dealerships))
	names := make([]string, 0, len(dealerships))
	for _, d := range dealerships {
		name := strings.TrimSpace(d.AccountName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

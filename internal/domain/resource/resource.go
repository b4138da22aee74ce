// Package resource defines the reference-resource record: shared documents,
// decks, and exports the team links out to.
package resource

import (
	"encoding/json"
	"fmt"
	"strings"

	"dubhub/internal/shared/dates"
	"dubhub/internal/shared/id"
)

// Category is the resource file kind.
type Category string

const (
	CategoryPPT Category = "PPT"
	CategoryDOC Category = "DOC"
	CategoryPDF Category = "PDF"
	CategoryXML Category = "XML"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPPT, CategoryDOC, CategoryPDF, CategoryXML:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// NewCategory creates a Category from a string with validation.
func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid resource category: %s", s)
	}
	return c, nil
}

// Categories returns every valid category.
func Categories() []Category {
	return []Category{CategoryPPT, CategoryDOC, CategoryPDF, CategoryXML}
}

// Scope marks whether a resource may be shared outside the team.
type Scope string

const (
	ScopeInternal Scope = "Internal"
	ScopeExternal Scope = "External"
)

func (s Scope) IsValid() bool {
	return s == ScopeInternal || s == ScopeExternal
}

func (s Scope) String() string {
	return string(s)
}

// TopicList is the resource tag set. Older stored records carried topics as
// one comma-delimited string; UnmarshalJSON accepts both shapes so legacy
// collections hydrate without a migration.
type TopicList []string

func (tl *TopicList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*tl = normalizeTopics(list)
		return nil
	}
	var legacy string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("topics: expected string or array: %w", err)
	}
	*tl = ParseTopics(legacy)
	return nil
}

// ParseTopics splits a comma-delimited topic string into trimmed tags,
// dropping empties.
func ParseTopics(s string) TopicList {
	return normalizeTopics(strings.Split(s, ","))
}

func normalizeTopics(raw []string) TopicList {
	out := make(TopicList, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// String joins the tags back into the display form.
func (tl TopicList) String() string {
	return strings.Join(tl, ", ")
}

// Resource is the persisted record shape.
type Resource struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Version        string    `json:"version"`
	Category       Category  `json:"category"`
	Scope          Scope     `json:"scope"`
	Topics         TopicList `json:"topics"`
	Description    string    `json:"description"`
	LinkURL        string    `json:"linkUrl"`
	NavigationPath string    `json:"navigationPath"`
	LastUpdated    string    `json:"lastUpdated"`
}

// New returns a fully defaulted draft resource with a fresh id.
func New() Resource {
	today := dates.Today()
	return Resource{
		ID:          id.NewResourceID(),
		Date:        today,
		Version:     "v1.0",
		Category:    CategoryDOC,
		Scope:       ScopeInternal,
		Topics:      TopicList{},
		LastUpdated: today,
	}
}

// RecordID implements store.Record.
func (r Resource) RecordID() string {
	return r.ID
}

// Clone returns a deep copy.
func (r Resource) Clone() Resource {
	out := r
	out.Topics = make(TopicList, len(r.Topics))
	copy(out.Topics, r.Topics)
	return out
}

// Normalize repairs a record hydrated from loosely shaped stored data.
// Records written before the scope field existed default to Internal.
func (r *Resource) Normalize() {
	if r.Topics == nil {
		r.Topics = TopicList{}
	}
	if !r.Category.IsValid() {
		r.Category = CategoryDOC
	}
	if !r.Scope.IsValid() {
		r.Scope = ScopeInternal
	}
	if r.Version == "" {
		r.Version = "v1.0"
	}
	if r.LastUpdated == "" {
		r.LastUpdated = r.Date
	}
}

// Touch rewrites the last-updated date to today.
func (r *Resource) Touch() {
	r.LastUpdated = dates.Today()
}

// Package task defines the internal to-do record and its list ordering.
package task

import (
	"fmt"

	"dubhub/internal/domain/shared/values"
	"dubhub/internal/shared/dates"
	"dubhub/internal/shared/id"
)

// Status is the task workflow state.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusCompleted  Status = "Completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	}
	return false
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

// NewStatus creates a Status from a string with validation.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return status, nil
}

// Statuses returns every valid status in workflow order.
func Statuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusBlocked, StatusCompleted}
}

// Task is the persisted record shape.
type Task struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Status          Status          `json:"status"`
	Priority        values.Priority `json:"priority"`
	DueDate         string          `json:"dueDate,omitempty"`
	Assignee        string          `json:"assignee,omitempty"`
	CreatedDate     string          `json:"createdDate"`
	LastUpdatedDate string          `json:"lastUpdatedDate"`
}

// New returns a fully defaulted draft task with a fresh id.
func New() Task {
	today := dates.Today()
	return Task{
		ID:              id.NewTaskID(),
		Status:          StatusToDo,
		Priority:        values.PriorityP3,
		CreatedDate:     today,
		LastUpdatedDate: today,
	}
}

// NewWithTitle returns a quick-add task carrying only a title.
func NewWithTitle(title string) Task {
	t := New()
	t.Title = title
	return t
}

// RecordID implements store.Record.
func (t Task) RecordID() string {
	return t.ID
}

// Clone returns a copy. Tasks hold no nested collections.
func (t Task) Clone() Task {
	return t
}

// Normalize repairs a record hydrated from loosely shaped stored data.
func (t *Task) Normalize() {
	if !t.Status.IsValid() {
		t.Status = StatusToDo
	}
	if !t.Priority.IsValid() {
		t.Priority = values.PriorityP3
	}
	if t.LastUpdatedDate == "" {
		t.LastUpdatedDate = t.CreatedDate
	}
}

// Touch rewrites the last-updated date to today.
func (t *Task) Touch() {
	t.LastUpdatedDate = dates.Today()
}

// ToggleComplete flips between Completed and To Do.
func (t *Task) ToggleComplete() {
	if t.Status.IsCompleted() {
		t.Status = StatusToDo
	} else {
		t.Status = StatusCompleted
	}
	t.Touch()
}

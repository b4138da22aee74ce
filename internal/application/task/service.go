// Package task wires the task collection to the record store.
package task

import (
	"strings"

	"dubhub/internal/application/store"
	taskdomain "dubhub/internal/domain/task"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/logger"
)

// Service manages the task collection.
type Service struct {
	store *store.Store[taskdomain.Task]
	log   logger.Interface
}

// NewService builds the service and hydrates the collection.
func NewService(driver storage.Driver, log logger.Interface) (*Service, error) {
	s := store.New(store.Config[taskdomain.Task]{
		Key:       storage.KeyTasks,
		Driver:    driver,
		Seed:      taskdomain.Seed,
		Factory:   taskdomain.New,
		Normalize: (*taskdomain.Task).Normalize,
		Validate:  validate,
		Logger:    log,
	})
	if err := s.Hydrate(); err != nil {
		return nil, err
	}
	return &Service{store: s, log: log.Named("task")}, nil
}

func validate(t taskdomain.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.NewValidationError("task title is required")
	}
	return nil
}

// List returns the filtered view with completed tasks last.
func (s *Service) List(filters taskdomain.FilterState) []taskdomain.Task {
	return taskdomain.Filter(s.store.Records(), filters)
}

// Counts returns the open/completed totals.
func (s *Service) Counts() taskdomain.Counts {
	return taskdomain.CountTabs(s.store.Records())
}

// All returns the raw collection snapshot.
func (s *Service) All() []taskdomain.Task {
	return s.store.Records()
}

// Get returns the task with the given id.
func (s *Service) Get(taskID string) (taskdomain.Task, error) {
	return s.store.Get(taskID)
}

// NewDraft opens a fresh draft task.
func (s *Service) NewDraft() taskdomain.Task {
	return s.store.NewDraft()
}

// QuickAdd creates and immediately persists a task from a bare title,
// skipping the draft stage.
func (s *Service) QuickAdd(title string) (taskdomain.Task, error) {
	return s.store.Create(taskdomain.NewWithTitle(strings.TrimSpace(title)))
}

// Save persists a task, stamping the last-updated date.
func (s *Service) Save(t taskdomain.Task) (taskdomain.Task, error) {
	t.Touch()
	return s.store.Save(t)
}

// ToggleComplete flips a task between Completed and To Do.
func (s *Service) ToggleComplete(taskID string) error {
	return s.store.Apply([]string{taskID}, func(t *taskdomain.Task) {
		t.ToggleComplete()
	})
}

// Select opens the task with the given id.
func (s *Service) Select(taskID string) error {
	return s.store.Select(taskID)
}

// ClearSelection closes the open task.
func (s *Service) ClearSelection() {
	s.store.ClearSelection()
}

// Selected returns the open task.
func (s *Service) Selected() (taskdomain.Task, bool) {
	return s.store.Selected()
}

// RequestDelete stages a deletion and returns its confirmation token.
func (s *Service) RequestDelete(taskID string) (string, error) {
	return s.store.RequestDelete(taskID)
}

// ConfirmDelete executes a staged deletion.
func (s *Service) ConfirmDelete(token string) ([]string, error) {
	return s.store.ConfirmDelete(token)
}

// Package resource wires the resource collection to the record store.
package resource

import (
	"strings"

	"dubhub/internal/application/store"
	res "dubhub/internal/domain/resource"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/logger"
)

// Service manages the resource collection.
type Service struct {
	store *store.Store[res.Resource]
	log   logger.Interface
}

// NewService builds the service and hydrates the collection.
func NewService(driver storage.Driver, log logger.Interface) (*Service, error) {
	s := store.New(store.Config[res.Resource]{
		Key:       storage.KeyResources,
		Driver:    driver,
		Seed:      res.Seed,
		Factory:   res.New,
		Normalize: (*res.Resource).Normalize,
		Validate:  validate,
		Logger:    log,
	})
	if err := s.Hydrate(); err != nil {
		return nil, err
	}
	return &Service{store: s, log: log.Named("resource")}, nil
}

func validate(r res.Resource) error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.NewValidationError("resource title is required")
	}
	return nil
}

// List returns the filtered, date-sorted view of the collection.
func (s *Service) List(filters res.FilterState) []res.Resource {
	return res.Filter(s.store.Records(), filters)
}

// All returns the raw collection snapshot.
func (s *Service) All() []res.Resource {
	return s.store.Records()
}

// Get returns the resource with the given id.
func (s *Service) Get(resourceID string) (res.Resource, error) {
	return s.store.Get(resourceID)
}

// NewDraft opens a fresh draft resource.
func (s *Service) NewDraft() res.Resource {
	return s.store.NewDraft()
}

// Save persists a resource, stamping the last-updated date.
func (s *Service) Save(r res.Resource) (res.Resource, error) {
	r.Touch()
	return s.store.Save(r)
}

// Select opens the resource with the given id.
func (s *Service) Select(resourceID string) error {
	return s.store.Select(resourceID)
}

// ClearSelection closes the open resource or draft.
func (s *Service) ClearSelection() {
	s.store.ClearSelection()
}

// Selected returns the open resource or draft.
func (s *Service) Selected() (res.Resource, bool) {
	return s.store.Selected()
}

// Selection reports the selection state.
func (s *Service) Selection() store.Selection {
	return s.store.Selection()
}

// RequestDelete stages a deletion and returns its confirmation token.
func (s *Service) RequestDelete(resourceID string) (string, error) {
	return s.store.RequestDelete(resourceID)
}

// ConfirmDelete executes a staged deletion.
func (s *Service) ConfirmDelete(token string) ([]string, error) {
	return s.store.ConfirmDelete(token)
}

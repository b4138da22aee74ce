// Package ticket wires the ticket collection to the record store and
// exposes the operations the interfaces layer calls.
package ticket

import (
	"strings"

	"dubhub/internal/application/store"
	ticketdomain "dubhub/internal/domain/ticket"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/logger"
)

// Service manages the ticket collection.
type Service struct {
	store *store.Store[ticketdomain.Ticket]
	log   logger.Interface
}

// NewService builds the service and hydrates the collection.
func NewService(driver storage.Driver, log logger.Interface) (*Service, error) {
	s := store.New(store.Config[ticketdomain.Ticket]{
		Key:       storage.KeyTickets,
		Driver:    driver,
		Seed:      ticketdomain.Seed,
		Factory:   ticketdomain.New,
		Normalize: (*ticketdomain.Ticket).Normalize,
		Validate:  validate,
		Logger:    log,
	})
	if err := s.Hydrate(); err != nil {
		return nil, err
	}
	return &Service{store: s, log: log.Named("ticket")}, nil
}

func validate(t ticketdomain.Ticket) error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.NewValidationError("ticket title is required")
	}
	return nil
}

// List returns the filtered, sorted view of the collection.
func (s *Service) List(tab ticketdomain.Tab, filters ticketdomain.FilterState, search string) []ticketdomain.Ticket {
	return ticketdomain.Filter(s.store.Records(), tab, filters, search)
}

// Counts returns the per-tab totals.
func (s *Service) Counts() ticketdomain.Counts {
	return ticketdomain.CountTabs(s.store.Records())
}

// All returns the raw collection snapshot, unfiltered and unsorted.
func (s *Service) All() []ticketdomain.Ticket {
	return s.store.Records()
}

// Get returns the ticket with the given id.
func (s *Service) Get(ticketID string) (ticketdomain.Ticket, error) {
	return s.store.Get(ticketID)
}

// NewDraft opens a fresh draft ticket.
func (s *Service) NewDraft() ticketdomain.Ticket {
	return s.store.NewDraft()
}

// Save persists a ticket, stamping the last-updated date.
func (s *Service) Save(t ticketdomain.Ticket) (ticketdomain.Ticket, error) {
	t.Touch()
	return s.store.Save(t)
}

// Select opens the ticket with the given id.
func (s *Service) Select(ticketID string) error {
	return s.store.Select(ticketID)
}

// ClearSelection closes the open ticket or draft.
func (s *Service) ClearSelection() {
	s.store.ClearSelection()
}

// Selected returns the open ticket or draft.
func (s *Service) Selected() (ticketdomain.Ticket, bool) {
	return s.store.Selected()
}

// Selection reports the selection state.
func (s *Service) Selection() store.Selection {
	return s.store.Selection()
}

// RequestDelete stages a deletion and returns its confirmation token.
func (s *Service) RequestDelete(ticketID string) (string, error) {
	return s.store.RequestDelete(ticketID)
}

// RequestBulkDelete stages a multi-ticket deletion.
func (s *Service) RequestBulkDelete(ticketIDs []string) (string, error) {
	return s.store.RequestBulkDelete(ticketIDs)
}

// ConfirmDelete executes a staged deletion.
func (s *Service) ConfirmDelete(token string) ([]string, error) {
	return s.store.ConfirmDelete(token)
}

// ToggleFavorite flips the favorite flag and stamps the ticket.
func (s *Service) ToggleFavorite(ticketID string) error {
	return s.store.Apply([]string{ticketID}, func(t *ticketdomain.Ticket) {
		t.IsFavorite = !t.IsFavorite
		t.Touch()
	})
}

// BulkSetStatus moves every listed ticket to the given status.
func (s *Service) BulkSetStatus(ticketIDs []string, status ticketdomain.Status) error {
	if !status.IsValid() {
		return errors.NewValidationError("invalid ticket status", status.String())
	}
	return s.store.Apply(ticketIDs, func(t *ticketdomain.Ticket) {
		t.Status = status
		t.Touch()
	})
}

// AddUpdate prepends an activity entry to the ticket.
func (s *Service) AddUpdate(ticketID, author, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return errors.NewValidationError("update comment is required")
	}
	return s.store.Apply([]string{ticketID}, func(t *ticketdomain.Ticket) {
		t.AddUpdate(author, comment)
	})
}

// EditUpdate rewrites an activity entry.
func (s *Service) EditUpdate(ticketID, updateID, author, date, comment string) error {
	found := false
	err := s.store.Apply([]string{ticketID}, func(t *ticketdomain.Ticket) {
		found = t.EditUpdate(updateID, author, date, comment)
	})
	if err != nil {
		return err
	}
	if !found {
		return errors.NewNotFoundError("update not found", updateID)
	}
	return nil
}

// RemoveUpdate deletes an activity entry.
func (s *Service) RemoveUpdate(ticketID, updateID string) error {
	found := false
	err := s.store.Apply([]string{ticketID}, func(t *ticketdomain.Ticket) {
		found = t.RemoveUpdate(updateID)
	})
	if err != nil {
		return err
	}
	if !found {
		return errors.NewNotFoundError("update not found", updateID)
	}
	return nil
}

// Package dealership wires the dealership collection to the record store.
package dealership

import (
	"strings"

	"dubhub/internal/application/store"
	dlr "dubhub/internal/domain/dealership"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/logger"
)

// Service manages the dealership collection.
type Service struct {
	store *store.Store[dlr.Dealership]
	log   logger.Interface
}

// NewService builds the service and hydrates the collection.
func NewService(driver storage.Driver, log logger.Interface) (*Service, error) {
	s := store.New(store.Config[dlr.Dealership]{
		Key:       storage.KeyDealerships,
		Driver:    driver,
		Seed:      dlr.Seed,
		Factory:   dlr.New,
		Normalize: (*dlr.Dealership).Normalize,
		Validate:  validate,
		Logger:    log,
	})
	if err := s.Hydrate(); err != nil {
		return nil, err
	}
	return &Service{store: s, log: log.Named("dealership")}, nil
}

func validate(d dlr.Dealership) error {
	if strings.TrimSpace(d.AccountName) == "" {
		return errors.NewValidationError("account name is required")
	}
	return nil
}

// List returns the filtered, alphabetized view of the collection.
func (s *Service) List(tab dlr.Tab, search string) []dlr.Dealership {
	return dlr.Filter(s.store.Records(), tab, search)
}

// Counts returns the per-tab totals.
func (s *Service) Counts() dlr.Counts {
	return dlr.CountTabs(s.store.Records())
}

// All returns the raw collection snapshot.
func (s *Service) All() []dlr.Dealership {
	return s.store.Records()
}

// ClientNames returns the distinct account names for the ticket client
// dropdown.
func (s *Service) ClientNames() []string {
	return dlr.ClientNames(s.store.Records())
}

// Get returns the dealership with the given id.
func (s *Service) Get(dealershipID string) (dlr.Dealership, error) {
	return s.store.Get(dealershipID)
}

// NewDraft opens a fresh draft account.
func (s *Service) NewDraft() dlr.Dealership {
	return s.store.NewDraft()
}

// Save stamps and persists an account. Order-line prices are stored exactly
// as submitted, zero included; the account form seeds new lines with the
// catalog default via GET /catalog/products.
func (s *Service) Save(d dlr.Dealership) (dlr.Dealership, error) {
	d.Touch()
	return s.store.Save(d)
}

// Select opens the account with the given id.
func (s *Service) Select(dealershipID string) error {
	return s.store.Select(dealershipID)
}

// ClearSelection closes the open account or draft.
func (s *Service) ClearSelection() {
	s.store.ClearSelection()
}

// Selected returns the open account or draft.
func (s *Service) Selected() (dlr.Dealership, bool) {
	return s.store.Selected()
}

// Selection reports the selection state.
func (s *Service) Selection() store.Selection {
	return s.store.Selection()
}

// RequestDelete stages a deletion and returns its confirmation token.
func (s *Service) RequestDelete(dealershipID string) (string, error) {
	return s.store.RequestDelete(dealershipID)
}

// ConfirmDelete executes a staged deletion.
func (s *Service) ConfirmDelete(token string) ([]string, error) {
	return s.store.ConfirmDelete(token)
}

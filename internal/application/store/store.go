// Package store implements the generic record store shared by every
// collection: hydration with schema repair, draft lifecycle, selection
// tracking, confirm-gated deletion, and the mirror-on-mutation write path.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/id"
	"dubhub/internal/shared/logger"
)

// Record is the contract every stored entity satisfies.
type Record[T any] interface {
	RecordID() string
	Clone() T
}

// Config wires a Store to its collection key, driver, and entity hooks.
// Factory must return a fully defaulted record: hydration unmarshals each
// stored document over a fresh factory value so fields absent from old data
// keep their defaults.
type Config[T Record[T]] struct {
	Key       string
	Driver    storage.Driver
	Seed      func() []T
	Factory   func() T
	Normalize func(*T)
	Validate  func(T) error
	Logger    logger.Interface
}

// SelectionState is the discriminator of the tri-state selection.
type SelectionState int

const (
	// SelectionNone means no record is open.
	SelectionNone SelectionState = iota
	// SelectionDraft means an unsaved factory record is open.
	SelectionDraft
	// SelectionRecord means a persisted record is open.
	SelectionRecord
)

// Selection describes which record, if any, the collection has open.
// ID is set only in the SelectionRecord state.
type Selection struct {
	State SelectionState
	ID    string
}

// Store manages one record collection. All methods are safe for concurrent
// use; reads return deep copies so callers can never alias stored records.
type Store[T Record[T]] struct {
	cfg Config[T]
	log logger.Interface

	mu        sync.RWMutex
	records   []T
	draft     *T
	selection Selection
	pending   map[string][]string
}

// New builds a store. Call Hydrate before first use.
func New[T Record[T]](cfg Config[T]) *Store[T] {
	log := cfg.Logger
	if log == nil {
		log = logger.NewLogger()
	}
	return &Store[T]{
		cfg:     cfg,
		log:     log.With("collection", cfg.Key),
		pending: make(map[string][]string),
	}
}

// Hydrate loads the stored collection, repairing each record against the
// factory defaults. A missing or unparsable document falls back to the seed
// data; the failure is logged but never surfaced. Only a driver I/O failure
// is returned as an error.
func (s *Store[T]) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.cfg.Driver.Load(s.cfg.Key)
	if err != nil {
		return fmt.Errorf("failed to hydrate %s: %w", s.cfg.Key, err)
	}
	if !ok {
		s.records = s.cfg.Seed()
		s.log.Infow("no stored collection, using seed data", "count", len(s.records))
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.records = s.cfg.Seed()
		s.log.Warnw("stored collection unreadable, using seed data", "error", err)
		return nil
	}

	records := make([]T, 0, len(raw))
	for i, doc := range raw {
		rec := s.cfg.Factory()
		if err := json.Unmarshal(doc, &rec); err != nil {
			s.log.Warnw("dropping unreadable record", "index", i, "error", err)
			continue
		}
		if s.cfg.Normalize != nil {
			s.cfg.Normalize(&rec)
		}
		records = append(records, rec)
	}
	s.records = records
	s.log.Infow("collection hydrated", "count", len(records))
	return nil
}

// Records returns a deep-copied snapshot in collection order.
func (s *Store[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Get returns a copy of the record with the given id.
func (s *Store[T]) Get(recordID string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.RecordID() == recordID {
			return r.Clone(), nil
		}
	}
	var zero T
	return zero, errors.NewNotFoundError("record not found", recordID)
}

// Count returns the collection size.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// NewDraft opens a fresh factory record as the draft selection and returns
// a copy of it. Any previous draft is discarded.
func (s *Store[T]) NewDraft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.cfg.Factory()
	s.draft = &draft
	s.selection = Selection{State: SelectionDraft}
	s.log.Debugw("draft opened", "id", draft.RecordID())
	return draft.Clone()
}

// Draft returns a copy of the open draft, if one exists.
func (s *Store[T]) Draft() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.draft == nil {
		var zero T
		return zero, false
	}
	return (*s.draft).Clone(), true
}

// Save validates and persists a record. While a draft is open the record is
// prepended to the collection and becomes the selection; otherwise the
// record replaces the stored one with the same id in place. The collection
// is mirrored to storage before the method returns.
func (s *Store[T]) Save(rec T) (T, error) {
	if s.cfg.Validate != nil {
		if err := s.cfg.Validate(rec); err != nil {
			var zero T
			return zero, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection.State == SelectionDraft {
		if s.contains(rec.RecordID()) {
			var zero T
			return zero, errors.NewConflictError("record already exists", rec.RecordID())
		}
		s.records = append([]T{rec.Clone()}, s.records...)
		s.draft = nil
		s.selection = Selection{State: SelectionRecord, ID: rec.RecordID()}
		if err := s.mirror(); err != nil {
			return rec, err
		}
		s.log.Infow("record created", "id", rec.RecordID())
		return rec.Clone(), nil
	}

	for i, existing := range s.records {
		if existing.RecordID() == rec.RecordID() {
			s.records[i] = rec.Clone()
			if err := s.mirror(); err != nil {
				return rec, err
			}
			s.log.Infow("record updated", "id", rec.RecordID())
			return rec.Clone(), nil
		}
	}
	var zero T
	return zero, errors.NewNotFoundError("record not found", rec.RecordID())
}

// Create validates and prepends a record without going through the draft
// lifecycle, leaving the selection untouched. Used by quick-add flows.
// An id already present in the collection is a conflict.
func (s *Store[T]) Create(rec T) (T, error) {
	if s.cfg.Validate != nil {
		if err := s.cfg.Validate(rec); err != nil {
			var zero T
			return zero, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contains(rec.RecordID()) {
		var zero T
		return zero, errors.NewConflictError("record already exists", rec.RecordID())
	}
	s.records = append([]T{rec.Clone()}, s.records...)
	if err := s.mirror(); err != nil {
		return rec, err
	}
	s.log.Infow("record created", "id", rec.RecordID())
	return rec.Clone(), nil
}

// Select opens the record with the given id, discarding any draft.
func (s *Store[T]) Select(recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.RecordID() == recordID {
			s.draft = nil
			s.selection = Selection{State: SelectionRecord, ID: recordID}
			return nil
		}
	}
	return errors.NewNotFoundError("record not found", recordID)
}

// ClearSelection closes whatever is open, discarding any draft.
func (s *Store[T]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	s.selection = Selection{}
}

// Selection reports the current selection state.
func (s *Store[T]) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// Selected returns a copy of the open record: the draft in the draft state,
// or the persisted record in the selected state.
func (s *Store[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.selection.State {
	case SelectionDraft:
		if s.draft != nil {
			return (*s.draft).Clone(), true
		}
	case SelectionRecord:
		for _, r := range s.records {
			if r.RecordID() == s.selection.ID {
				return r.Clone(), true
			}
		}
	}
	var zero T
	return zero, false
}

// RequestDelete stages a single-record deletion and returns a confirmation
// token. Nothing is removed until ConfirmDelete is called with the token.
func (s *Store[T]) RequestDelete(recordID string) (string, error) {
	return s.RequestBulkDelete([]string{recordID})
}

// RequestBulkDelete stages a multi-record deletion and returns a
// confirmation token. Every id must exist.
func (s *Store[T]) RequestBulkDelete(recordIDs []string) (string, error) {
	if len(recordIDs) == 0 {
		return "", errors.NewValidationError("no records specified for deletion")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, recordID := range recordIDs {
		if !s.contains(recordID) {
			return "", errors.NewNotFoundError("record not found", recordID)
		}
	}

	token := id.NewChildID()
	s.pending[token] = append([]string(nil), recordIDs...)
	s.log.Debugw("deletion staged", "token", token, "count", len(recordIDs))
	return token, nil
}

// ConfirmDelete removes the records staged under the token and clears any
// selection or draft referencing them. It returns the removed ids.
func (s *Store[T]) ConfirmDelete(token string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordIDs, ok := s.pending[token]
	if !ok {
		return nil, errors.NewNotFoundError("no pending deletion for token")
	}
	delete(s.pending, token)

	doomed := make(map[string]struct{}, len(recordIDs))
	for _, recordID := range recordIDs {
		doomed[recordID] = struct{}{}
	}

	kept := s.records[:0]
	var removed []string
	for _, r := range s.records {
		if _, gone := doomed[r.RecordID()]; gone {
			removed = append(removed, r.RecordID())
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept

	if s.selection.State == SelectionRecord {
		if _, gone := doomed[s.selection.ID]; gone {
			s.selection = Selection{}
		}
	}

	if err := s.mirror(); err != nil {
		return removed, err
	}
	s.log.Infow("records deleted", "count", len(removed))
	return removed, nil
}

// Apply runs fn against each record with a matching id and mirrors the
// result. Records are mutated in place in collection order.
func (s *Store[T]) Apply(recordIDs []string, fn func(*T)) error {
	wanted := make(map[string]struct{}, len(recordIDs))
	for _, recordID := range recordIDs {
		wanted[recordID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	touched := 0
	for i := range s.records {
		if _, ok := wanted[s.records[i].RecordID()]; ok {
			fn(&s.records[i])
			touched++
		}
	}
	if touched == 0 {
		return errors.NewNotFoundError("no matching records")
	}
	return s.mirror()
}

func (s *Store[T]) contains(recordID string) bool {
	for _, r := range s.records {
		if r.RecordID() == recordID {
			return true
		}
	}
	return false
}

// mirror writes the full collection back to storage. Callers hold the lock.
func (s *Store[T]) mirror() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", s.cfg.Key, err)
	}
	if err := s.cfg.Driver.Save(s.cfg.Key, data); err != nil {
		s.log.Errorw("failed to mirror collection", "error", err)
		return fmt.Errorf("failed to persist %s: %w", s.cfg.Key, err)
	}
	return nil
}

package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/errors"
)

// note is a minimal record used to exercise the store machinery.
type note struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Tags []string `json:"tags"`
}

func (n note) RecordID() string { return n.ID }

func (n note) Clone() note {
	out := n
	out.Tags = make([]string, len(n.Tags))
	copy(out.Tags, n.Tags)
	return out
}

var nextID int

func newNoteStore(driver storage.Driver) *Store[note] {
	return New(Config[note]{
		Key:    "test-notes",
		Driver: driver,
		Seed: func() []note {
			return []note{{ID: "n-seed", Text: "seeded", Tags: []string{}}}
		},
		Factory: func() note {
			nextID++
			return note{ID: "n-" + string(rune('a'+nextID%26)), Text: "", Tags: []string{}}
		},
		Normalize: func(n *note) {
			if n.Tags == nil {
				n.Tags = []string{}
			}
		},
		Validate: func(n note) error {
			if n.Text == "" {
				return errors.NewValidationError("text is required")
			}
			return nil
		},
	})
}

func TestHydrateFallsBackToSeed(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	records := s.Records()
	assert.Len(t, records, 1)
	assert.Equal(t, "n-seed", records[0].ID)
}

func TestHydrateRepairsStoredRecords(t *testing.T) {
	driver := storage.NewMemoryDriver()
	assert.NoError(t, driver.Save("test-notes", []byte(`[{"id":"n-1","text":"kept"}]`)))

	s := newNoteStore(driver)
	assert.NoError(t, s.Hydrate())

	records := s.Records()
	assert.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Text)
	assert.NotNil(t, records[0].Tags)
}

func TestHydrateCorruptDocumentFallsBackToSeed(t *testing.T) {
	driver := storage.NewMemoryDriver()
	assert.NoError(t, driver.Save("test-notes", []byte(`{not json`)))

	s := newNoteStore(driver)
	assert.NoError(t, s.Hydrate())

	records := s.Records()
	assert.Len(t, records, 1)
	assert.Equal(t, "n-seed", records[0].ID)
}

func TestHydrateDropsUnreadableRecords(t *testing.T) {
	driver := storage.NewMemoryDriver()
	assert.NoError(t, driver.Save("test-notes",
		[]byte(`[{"id":"n-1","text":"ok"},{"id":42},{"id":"n-3","text":"ok too"}]`)))

	s := newNoteStore(driver)
	assert.NoError(t, s.Hydrate())

	records := s.Records()
	assert.Len(t, records, 2)
	assert.Equal(t, "n-1", records[0].ID)
	assert.Equal(t, "n-3", records[1].ID)
}

func TestDraftSavePrependsAndSelects(t *testing.T) {
	driver := storage.NewMemoryDriver()
	s := newNoteStore(driver)
	assert.NoError(t, s.Hydrate())

	draft := s.NewDraft()
	assert.Equal(t, SelectionDraft, s.Selection().State)

	draft.Text = "first note"
	saved, err := s.Save(draft)
	assert.NoError(t, err)

	records := s.Records()
	assert.Len(t, records, 2)
	assert.Equal(t, saved.ID, records[0].ID)

	sel := s.Selection()
	assert.Equal(t, SelectionRecord, sel.State)
	assert.Equal(t, saved.ID, sel.ID)

	_, ok := s.Draft()
	assert.False(t, ok)

	// The mutation is mirrored to storage.
	data, ok, err := driver.Load("test-notes")
	assert.NoError(t, err)
	assert.True(t, ok)
	var stored []note
	assert.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 2)
	assert.Equal(t, saved.ID, stored[0].ID)
}

func TestSaveValidates(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	draft := s.NewDraft()
	_, err := s.Save(draft)
	assert.True(t, errors.IsValidationError(err))

	// The draft survives a failed save.
	assert.Equal(t, SelectionDraft, s.Selection().State)
}

func TestSaveReplacesInPlace(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	rec, err := s.Get("n-seed")
	assert.NoError(t, err)
	rec.Text = "edited"

	_, err = s.Save(rec)
	assert.NoError(t, err)

	records := s.Records()
	assert.Len(t, records, 1)
	assert.Equal(t, "edited", records[0].Text)
}

func TestSaveUnknownRecordFails(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	_, err := s.Save(note{ID: "n-ghost", Text: "boo"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSaveDraftRejectsDuplicateID(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	draft := s.NewDraft()
	draft.ID = "n-seed"
	draft.Text = "clashes with the seed record"

	_, err := s.Save(draft)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 1, s.Count())
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	_, err := s.Create(note{ID: "n-seed", Text: "second copy"})
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 1, s.Count())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())
	assert.NoError(t, s.Select("n-seed"))

	token, err := s.RequestDelete("n-seed")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Nothing removed until confirmation.
	assert.Equal(t, 1, s.Count())

	removed, err := s.ConfirmDelete(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"n-seed"}, removed)
	assert.Equal(t, 0, s.Count())

	// Deleting the selected record clears the selection.
	assert.Equal(t, SelectionNone, s.Selection().State)

	// Tokens are single use.
	_, err = s.ConfirmDelete(token)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRequestDeleteUnknownRecord(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	_, err := s.RequestDelete("n-ghost")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestBulkDelete(t *testing.T) {
	driver := storage.NewMemoryDriver()
	assert.NoError(t, driver.Save("test-notes",
		[]byte(`[{"id":"n-1","text":"a"},{"id":"n-2","text":"b"},{"id":"n-3","text":"c"}]`)))
	s := newNoteStore(driver)
	assert.NoError(t, s.Hydrate())

	token, err := s.RequestBulkDelete([]string{"n-1", "n-3"})
	assert.NoError(t, err)

	removed, err := s.ConfirmDelete(token)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"n-1", "n-3"}, removed)

	records := s.Records()
	assert.Len(t, records, 1)
	assert.Equal(t, "n-2", records[0].ID)
}

func TestApplyMutatesAndMirrors(t *testing.T) {
	driver := storage.NewMemoryDriver()
	assert.NoError(t, driver.Save("test-notes",
		[]byte(`[{"id":"n-1","text":"a"},{"id":"n-2","text":"b"}]`)))
	s := newNoteStore(driver)
	assert.NoError(t, s.Hydrate())

	err := s.Apply([]string{"n-2"}, func(n *note) { n.Text = "patched" })
	assert.NoError(t, err)

	rec, err := s.Get("n-2")
	assert.NoError(t, err)
	assert.Equal(t, "patched", rec.Text)

	err = s.Apply([]string{"n-ghost"}, func(n *note) {})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRecordsReturnsCopies(t *testing.T) {
	driver := storage.NewMemoryDriver()
	assert.NoError(t, driver.Save("test-notes",
		[]byte(`[{"id":"n-1","text":"a","tags":["x"]}]`)))
	s := newNoteStore(driver)
	assert.NoError(t, s.Hydrate())

	records := s.Records()
	records[0].Tags[0] = "mutated"
	records[0].Text = "mutated"

	rec, err := s.Get("n-1")
	assert.NoError(t, err)
	assert.Equal(t, "a", rec.Text)
	assert.Equal(t, []string{"x"}, rec.Tags)
}

func TestSelectDiscardsDraft(t *testing.T) {
	s := newNoteStore(storage.NewMemoryDriver())
	assert.NoError(t, s.Hydrate())

	s.NewDraft()
	assert.NoError(t, s.Select("n-seed"))

	_, ok := s.Draft()
	assert.False(t, ok)

	sel, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "n-seed", sel.ID)
}

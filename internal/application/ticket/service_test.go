package ticket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	ticketdomain "dubhub/internal/domain/ticket"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/dates"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/logger"
)

func newTestService(t *testing.T, driver storage.Driver) *Service {
	t.Helper()
	svc, err := NewService(driver, logger.NewLogger())
	assert.NoError(t, err)
	return svc
}

func TestNewServiceSeedsEmptyStorage(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryDriver())
	assert.Len(t, svc.All(), len(ticketdomain.Seed()))
}

func TestHydrateBackfillsLegacyTicket(t *testing.T) {
	driver := storage.NewMemoryDriver()
	legacy := `[{"id":"T-7777","title":"Legacy","submissionDate":"02/01/2024","status":"Weird"}]`
	assert.NoError(t, driver.Save(storage.KeyTickets, []byte(legacy)))

	svc := newTestService(t, driver)
	tk, err := svc.Get("T-7777")
	assert.NoError(t, err)

	assert.Equal(t, ticketdomain.StatusNotStarted, tk.Status)
	assert.NotNil(t, tk.Updates)
	assert.Equal(t, "02/01/2024", tk.LastUpdatedDate)
	// Fields absent from the stored record keep factory defaults.
	assert.Equal(t, ticketdomain.TypeQuestion, tk.Type)
}

func TestSaveRejectsEmptyTitle(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryDriver())

	draft := svc.NewDraft()
	_, err := svc.Save(draft)
	assert.True(t, errors.IsValidationError(err))
}

func TestDraftSaveCreatesAndMirrors(t *testing.T) {
	driver := storage.NewMemoryDriver()
	svc := newTestService(t, driver)
	before := len(svc.All())

	draft := svc.NewDraft()
	draft.Title = "New integration issue"
	saved, err := svc.Save(draft)
	assert.NoError(t, err)

	all := svc.All()
	assert.Len(t, all, before+1)
	assert.Equal(t, saved.ID, all[0].ID)
	assert.Equal(t, dates.Today(), saved.LastUpdatedDate)

	data, ok, err := driver.Load(storage.KeyTickets)
	assert.NoError(t, err)
	assert.True(t, ok)
	var stored []ticketdomain.Ticket
	assert.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, before+1)
}

func TestToggleFavoriteStamps(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryDriver())
	target := svc.All()[0]
	wasFavorite := target.IsFavorite

	assert.NoError(t, svc.ToggleFavorite(target.ID))

	tk, err := svc.Get(target.ID)
	assert.NoError(t, err)
	assert.Equal(t, !wasFavorite, tk.IsFavorite)
	assert.Equal(t, dates.Today(), tk.LastUpdatedDate)
}

func TestBulkSetStatus(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryDriver())
	all := svc.All()
	ids := []string{all[0].ID, all[1].ID}

	assert.NoError(t, svc.BulkSetStatus(ids, ticketdomain.StatusCompleted))

	for _, ticketID := range ids {
		tk, err := svc.Get(ticketID)
		assert.NoError(t, err)
		assert.Equal(t, ticketdomain.StatusCompleted, tk.Status)
	}

	err := svc.BulkSetStatus(ids, "Imaginary")
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateLifecycle(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryDriver())
	target := svc.All()[0]

	assert.NoError(t, svc.AddUpdate(target.ID, "alice", "looked into it"))

	tk, _ := svc.Get(target.ID)
	added := tk.Updates[0]
	assert.Equal(t, "looked into it", added.Comment)

	assert.NoError(t, svc.EditUpdate(target.ID, added.ID, "alice", added.Date, "resolved"))
	tk, _ = svc.Get(target.ID)
	assert.Equal(t, "resolved", tk.Updates[0].Comment)

	assert.True(t, errors.IsNotFoundError(svc.EditUpdate(target.ID, "bogus", "a", "d", "c")))

	assert.NoError(t, svc.RemoveUpdate(target.ID, added.ID))
	tk, _ = svc.Get(target.ID)
	assert.NotEqual(t, added.ID, firstUpdateID(tk))

	err := svc.AddUpdate(target.ID, "alice", "   ")
	assert.True(t, errors.IsValidationError(err))
}

func firstUpdateID(t ticketdomain.Ticket) string {
	if len(t.Updates) == 0 {
		return ""
	}
	return t.Updates[0].ID
}

func TestDeleteRoundTrip(t *testing.T) {
	svc := newTestService(t, storage.NewMemoryDriver())
	target := svc.All()[0]
	before := len(svc.All())

	token, err := svc.RequestDelete(target.ID)
	assert.NoError(t, err)
	assert.Len(t, svc.All(), before)

	removed, err := svc.ConfirmDelete(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{target.ID}, removed)
	assert.Len(t, svc.All(), before-1)
}

func TestRoundTripThroughStorage(t *testing.T) {
	driver := storage.NewMemoryDriver()
	svc := newTestService(t, driver)

	draft := svc.NewDraft()
	draft.Title = "Persisted across restarts"
	draft.Priority = "P1"
	saved, err := svc.Save(draft)
	assert.NoError(t, err)

	// A second service over the same driver sees the saved ticket.
	svc2 := newTestService(t, driver)
	tk, err := svc2.Get(saved.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Persisted across restarts", tk.Title)
}

func TestClearedStartDateSurvivesRestart(t *testing.T) {
	driver := storage.NewMemoryDriver()
	svc := newTestService(t, driver)

	tk := svc.All()[0]
	tk.StartDate = ""
	saved, err := svc.Save(tk)
	assert.NoError(t, err)
	assert.Empty(t, saved.StartDate)
	assert.Zero(t, saved.DaysActive())

	// An emptied optional date must not resurrect as the factory default.
	svc2 := newTestService(t, driver)
	got, err := svc2.Get(tk.ID)
	assert.NoError(t, err)
	assert.Empty(t, got.StartDate)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketapp "dubhub/internal/application/ticket"
	ticketdomain "dubhub/internal/domain/ticket"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/interfaces/http/handlers/testutil"
	"dubhub/internal/shared/services/markdown"
)

func newTicketHandlerForTest(t *testing.T) *TicketHandler {
	t.Helper()
	svc, err := ticketapp.NewService(storage.NewMemoryDriver(), testutil.NewMockLogger())
	require.NoError(t, err)
	return NewTicketHandler(svc, markdown.NewService())
}

func TestTicketListDefaultsToActiveTab(t *testing.T) {
	h := newTicketHandlerForTest(t)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var payload struct {
		Tickets []ticketdomain.Ticket `json:"tickets"`
		Counts  ticketdomain.Counts   `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))

	assert.Equal(t, payload.Counts.Active, len(payload.Tickets))
	for _, tk := range payload.Tickets {
		assert.NotEqual(t, ticketdomain.StatusOnHold, tk.Status)
		assert.NotEqual(t, ticketdomain.StatusCompleted, tk.Status)
	}
}

func TestTicketGetRendersMarkdown(t *testing.T) {
	h := newTicketHandlerForTest(t)
	id := ticketdomain.Seed()[0].ID

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/"+id, nil)
	testutil.SetURLParam(c, "id", id)
	h.Get(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Contains(t, payload, "ticket")
	assert.Contains(t, payload, "summaryHtml")
	assert.Contains(t, payload, "detailsHtml")
	assert.Contains(t, payload, "daysActive")
}

func TestTicketSaveRejectsMissingTitle(t *testing.T) {
	h := newTicketHandlerForTest(t)

	tk := ticketdomain.Seed()[0]
	tk.Title = "  "

	c, w := testutil.NewTestContext(http.MethodPut, "/tickets", tk)
	h.Save(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestTicketRequestDeleteValidatesBody(t *testing.T) {
	h := newTicketHandlerForTest(t)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/delete-requests", map[string][]string{
		"ids": {},
	})
	h.RequestDelete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketBulkDeleteFlow(t *testing.T) {
	h := newTicketHandlerForTest(t)
	seed := ticketdomain.Seed()
	require.GreaterOrEqual(t, len(seed), 2)
	doomed := []string{seed[0].ID, seed[1].ID}

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/delete-requests", map[string][]string{
		"ids": doomed,
	})
	h.RequestDelete(c)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var staged struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &staged))

	c, w = testutil.NewTestContext(http.MethodPost, "/tickets/delete-requests/"+staged.Token+"/confirm", nil)
	testutil.SetURLParam(c, "token", staged.Token)
	h.ConfirmDelete(c)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, testutil.ParseResponse(w, &resp))
	var result struct {
		Deleted []string `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.ElementsMatch(t, doomed, result.Deleted)
}

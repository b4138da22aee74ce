package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dubhub/internal/domain/dealership"
	"dubhub/internal/domain/resource"
	"dubhub/internal/domain/ticket"
	"dubhub/internal/shared/config"
	"dubhub/internal/shared/errors"
	"dubhub/internal/shared/logger"
)

func TestEncodeCSVEscaping(t *testing.T) {
	table := Table{
		Name:   "Test",
		Header: []string{"A", "B"},
		Rows: [][]string{
			{`a,b"c`, "plain"},
			{"line\nbreak", ""},
		},
	}

	text, err := EncodeCSV(table)
	assert.NoError(t, err)

	lines := strings.SplitN(text, "\n", 2)
	assert.Equal(t, "A,B", lines[0])
	assert.Contains(t, text, `"a,b""c",plain`)
	assert.Contains(t, text, "\"line\nbreak\",")
}

func TestTicketTableActivityColumn(t *testing.T) {
	tk := ticket.New()
	tk.ID = "T-1"
	tk.Title = "Login bug"
	tk.AddUpdate("old author", "older entry")
	tk.AddUpdate("alice", "latest entry")
	bare := ticket.New()
	bare.ID = "T-2"
	bare.Title = "No activity"

	table := TicketTable([]ticket.Ticket{tk, bare})
	assert.Len(t, table.Rows, 2)

	activityCol := len(table.Header) - 1
	assert.Equal(t, "Activity", table.Header[activityCol])
	assert.Equal(t,
		tk.Updates[0].Date+": [alice] latest entry",
		table.Rows[0][activityCol])
	assert.Equal(t, "", table.Rows[1][activityCol])

	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Header))
	}
}

func TestDealershipTablePivotColumns(t *testing.T) {
	d := dealership.New()
	d.AccountName = "Pivot Motors"
	d.AccountNumber = 12345
	d.DMTOrders = []dealership.DMTOrderItem{
		// p1 carries code 15391, p6 carries 15382.
		{ID: "o1", ReceivedDate: "01/01/2024", OrderNumber: 5521, ProductID: "p1", Price: 8275, IsActive: true},
		{ID: "o2", ReceivedDate: "02/01/2024", OrderNumber: 5522, ProductID: "p6", Price: 8275, IsActive: false},
	}

	table := DealershipTable([]dealership.Dealership{d})
	assert.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Len(t, row, len(table.Header))

	col := func(name string) string {
		for i, h := range table.Header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("missing column %q", name)
		return ""
	}

	// Active order fills its pivot cell, inactive leaves it empty.
	assert.Equal(t, "8275", col("15391-Curator SE"))
	assert.Equal(t, "", col("15382-SE"))

	// Only active lines contribute order metadata and the total.
	assert.Equal(t, "01/01/2024", col("Order Received Dates"))
	assert.Equal(t, "5521", col("Order Numbers"))
	assert.Equal(t, "8275", col("Total Selling Price"))
}

func TestDealershipTableJoinsMultipleOrders(t *testing.T) {
	d := dealership.New()
	d.AccountName = "Multi Order Motors"
	d.DMTOrders = []dealership.DMTOrderItem{
		{ID: "o1", ReceivedDate: "01/01/2024", OrderNumber: 5521, ProductID: "p1", Price: 8275, IsActive: true},
		{ID: "o2", ReceivedDate: "03/15/2024", OrderNumber: 5890, ProductID: "p2", Price: 1750, IsActive: true},
	}

	table := DealershipTable([]dealership.Dealership{d})
	row := table.Rows[0]

	idx := func(name string) int {
		for i, h := range table.Header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %q", name)
		return -1
	}

	assert.Equal(t, "01/01/2024; 03/15/2024", row[idx("Order Received Dates")])
	assert.Equal(t, "5521; 5890", row[idx("Order Numbers")])
	assert.Equal(t, "10025", row[idx("Total Selling Price")])
}

func TestResourceTableTopicsCell(t *testing.T) {
	r := resource.New()
	r.ID = "R-1"
	r.Title = "Deck"
	r.Topics = resource.TopicList{"FOCUS", "Leads"}

	table := ResourceTable([]resource.Resource{r})
	row := table.Rows[0]
	assert.Contains(t, row, "FOCUS, Leads")
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "tickets_export_05-15-2024.csv", FileName("Tickets", FormatCSV, now))
	assert.Equal(t, "dealerships_export_05-15-2024.xlsx", FileName("Dealerships", FormatXLSX, now))
}

func TestEncodeXLSXRoundTrips(t *testing.T) {
	table := TicketTable([]ticket.Ticket{ticket.New()})
	data, err := EncodeXLSX(table)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	// XLSX files are zip archives.
	assert.Equal(t, "PK", string(data[:2]))
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	svc := NewService(&config.ExportConfig{Dir: t.TempDir()}, logger.NewLogger())

	_, err := svc.Render(Table{Name: "Tickets", Header: []string{"A"}}, "pdf")
	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
	}
}

func TestWriteFileCreatesExportDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	svc := NewService(&config.ExportConfig{Dir: dir}, logger.NewLogger())

	table := Table{Name: "Tickets", Header: []string{"A"}, Rows: [][]string{{"1"}}}
	path, err := svc.WriteFile(table, FormatCSV)
	assert.NoError(t, err)
	assert.Contains(t, path, "tickets_export_")

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestWriteFileUnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	assert.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The export directory path runs through a regular file.
	svc := NewService(&config.ExportConfig{Dir: filepath.Join(blocker, "exports")}, logger.NewLogger())
	table := Table{Name: "Tickets", Header: []string{"A"}}

	_, err := svc.WriteFile(table, FormatCSV)
	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	}
}

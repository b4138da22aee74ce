package dealership

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	d := New()

	assert.Regexp(t, `^D-\d{5}$`, d.ID)
	assert.Equal(t, StatusDMTPending, d.Status)
	assert.Equal(t, CRMFocus, d.CRMProvider)
	assert.Equal(t, DefaultEquityProvider, d.EquityProvider)
	assert.Len(t, d.WebsiteLinks, 1)
	assert.NotEmpty(t, d.WebsiteLinks[0].ID)
	assert.Empty(t, d.WebsiteLinks[0].URL)
	assert.NotNil(t, d.DMTOrders)
	assert.Empty(t, d.DMTOrders)
}

func TestTotalSellingPriceSkipsInactiveLines(t *testing.T) {
	d := New()
	d.DMTOrders = []DMTOrderItem{
		{ID: "o1", ProductID: "p1", Price: 8275, IsActive: true},
		{ID: "o2", ProductID: "p2", Price: 1750, IsActive: false},
		{ID: "o3", ProductID: "p3", Price: 500, IsActive: true},
	}

	assert.InDelta(t, 8775.0, d.TotalSellingPrice(), 0.001)

	d.DMTOrders[1].IsActive = true
	assert.InDelta(t, 10525.0, d.TotalSellingPrice(), 0.001)

	assert.Len(t, d.ActiveOrders(), 3)
}

func TestNormalizeBackfillsMissingCollections(t *testing.T) {
	raw := []byte(`{"id":"D-11111","accountName":"Legacy Motors","status":"Live"}`)

	d := New()
	err := json.Unmarshal(raw, &d)
	assert.NoError(t, err)
	d.Normalize()

	assert.Equal(t, "D-11111", d.ID)
	assert.Equal(t, StatusLive, d.Status)
	assert.NotNil(t, d.DMTOrders)
	assert.NotNil(t, d.ReynoldsSolutions)
	assert.NotNil(t, d.FullpathSolutions)
	assert.NotEmpty(t, d.LastUpdated)
}

func TestNormalizeRepairsInvalidEnums(t *testing.T) {
	d := Dealership{Status: "Retired", CRMProvider: "Spreadsheet"}
	d.Normalize()

	assert.Equal(t, StatusDMTPending, d.Status)
	assert.Equal(t, CRMFocus, d.CRMProvider)
}

func TestFilterTabsAndSearch(t *testing.T) {
	a := New()
	a.ID = "D-1"
	a.AccountName = "Zephyr Auto"
	a.AccountNumber = 10245
	b := New()
	b.ID = "D-2"
	b.AccountName = "Apex Motors"
	b.StoreNumber = "120"
	c := New()
	c.ID = "D-3"
	c.AccountName = "Gone Cars"
	c.Status = StatusCancelled
	all := []Dealership{a, b, c}

	active := Filter(all, TabActive, "")
	assert.Len(t, active, 2)
	assert.Equal(t, "Apex Motors", active[0].AccountName)
	assert.Equal(t, "Zephyr Auto", active[1].AccountName)

	cancelled := Filter(all, TabCancelled, "")
	assert.Len(t, cancelled, 1)
	assert.Equal(t, "D-3", cancelled[0].ID)

	byNumber := Filter(all, TabActive, "10245")
	assert.Len(t, byNumber, 1)
	assert.Equal(t, "D-1", byNumber[0].ID)

	byStore := Filter(all, TabActive, "120")
	assert.Len(t, byStore, 1)
	assert.Equal(t, "D-2", byStore[0].ID)

	counts := CountTabs(all)
	assert.Equal(t, 2, counts.Active)
	assert.Equal(t, 1, counts.Cancelled)
}

func TestClientNames(t *testing.T) {
	a := New()
	a.AccountName = "Miami Lakes Automall"
	b := New()
	b.AccountName = "Apex Motors"
	c := New()
	c.AccountName = " "
	d := New()
	d.AccountName = "Apex Motors"

	names := ClientNames([]Dealership{a, b, c, d})
	assert.Equal(t, []string{"Apex Motors", "Miami Lakes Automall"}, names)
}

func TestCloneIsDeep(t *testing.T) {
	d := Seed()[0]
	cp := d.Clone()
	cp.DMTOrders[0].Price = 1
	cp.WebsiteLinks[0].URL = "changed"
	cp.ReynoldsSolutions[0] = ReynoldsTRU

	assert.InDelta(t, 8275.0, d.DMTOrders[0].Price, 0.001)
	assert.Equal(t, "https://www.northgatoyota.com", d.WebsiteLinks[0].URL)
	assert.Equal(t, ReynoldsXTS, d.ReynoldsSolutions[0])
}

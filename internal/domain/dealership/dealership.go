// Package dealership defines the dealership account record, its DMT order
// lines, and the query engine over dealership collections.
package dealership

import (
	"dubhub/internal/shared/dates"
	"dubhub/internal/shared/id"
)

// WebsiteLink is one site registered against the account, keyed by the
// provider-side client id.
type WebsiteLink struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	ClientID string `json:"clientId"`
}

// DMTOrderItem is a single product line on a DMT order. ProductID correlates
// to catalog.Product.ID. Inactive lines stay on the record for history but
// are excluded from totals and pivot exports.
type DMTOrderItem struct {
	ID           string  `json:"id"`
	ReceivedDate string  `json:"receivedDate"`
	OrderNumber  int64   `json:"orderNumber"`
	ProductID    string  `json:"productId"`
	Price        float64 `json:"price"`
	IsActive     bool    `json:"isActive"`
}

// Dealership is the persisted account record shape.
type Dealership struct {
	ID            string `json:"id"`
	AccountNumber int64  `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Status        Status `json:"status"`
	GoLiveDate    string `json:"goLiveDate"`
	TermDate      string `json:"termDate"`

	EnterpriseGroup string      `json:"enterpriseGroup"`
	StoreNumber     string      `json:"storeNumber"`
	BranchNumber    string      `json:"branchNumber"`
	ERASystemID     int64       `json:"eraSystemId,omitempty"`
	PPSysID         int64       `json:"ppSysId,omitempty"`
	BUID            int64       `json:"buId,omitempty"`
	CRMProvider     CRMProvider `json:"crmProvider"`
	Address         string      `json:"address"`

	WebsiteLinks []WebsiteLink `json:"websiteLinks"`

	EquityProvider string `json:"equityProvider"`

	ReynoldsSolutions []ReynoldsSolution `json:"reynoldsSolutions"`
	FullpathSolutions []FullpathSolution `json:"fullpathSolutions"`

	DMTOrders []DMTOrderItem `json:"dmtOrders"`

	AssignedSpecialist string `json:"assignedSpecialist"`
	SalesPerson        string `json:"salesPerson"`
	POCName            string `json:"pocName"`
	POCEmail           string `json:"pocEmail"`
	POCPhone           string `json:"pocPhone"`

	LastUpdated string `json:"lastUpdated"`
}

// DefaultEquityProvider is pre-filled on new accounts.
const DefaultEquityProvider = "Fullpath Kelly Blue Book"

// New returns a fully defaulted draft dealership with a fresh id. The
// website-links collection starts with one blank row so the edit surface
// always has a line to fill in.
func New() Dealership {
	return Dealership{
		ID:                id.NewDealershipID(),
		Status:            StatusDMTPending,
		CRMProvider:       CRMFocus,
		WebsiteLinks:      []WebsiteLink{{ID: id.NewChildID()}},
		EquityProvider:    DefaultEquityProvider,
		ReynoldsSolutions: []ReynoldsSolution{},
		FullpathSolutions: []FullpathSolution{},
		DMTOrders:         []DMTOrderItem{},
		LastUpdated:       dates.Today(),
	}
}

// RecordID implements store.Record.
func (d Dealership) RecordID() string {
	return d.ID
}

// Clone returns a deep copy.
func (d Dealership) Clone() Dealership {
	out := d
	out.WebsiteLinks = make([]WebsiteLink, len(d.WebsiteLinks))
	copy(out.WebsiteLinks, d.WebsiteLinks)
	out.ReynoldsSolutions = make([]ReynoldsSolution, len(d.ReynoldsSolutions))
	copy(out.ReynoldsSolutions, d.ReynoldsSolutions)
	out.FullpathSolutions = make([]FullpathSolution, len(d.FullpathSolutions))
	copy(out.FullpathSolutions, d.FullpathSolutions)
	out.DMTOrders = make([]DMTOrderItem, len(d.DMTOrders))
	copy(out.DMTOrders, d.DMTOrders)
	return out
}

// Normalize repairs a record hydrated from loosely shaped stored data.
func (d *Dealership) Normalize() {
	if d.WebsiteLinks == nil {
		d.WebsiteLinks = []WebsiteLink{}
	}
	if d.ReynoldsSolutions == nil {
		d.ReynoldsSolutions = []ReynoldsSolution{}
	}
	if d.FullpathSolutions == nil {
		d.FullpathSolutions = []FullpathSolution{}
	}
	if d.DMTOrders == nil {
		d.DMTOrders = []DMTOrderItem{}
	}
	if !d.Status.IsValid() {
		d.Status = StatusDMTPending
	}
	if !d.CRMProvider.IsValid() {
		d.CRMProvider = CRMFocus
	}
	if d.LastUpdated == "" {
		d.LastUpdated = dates.Today()
	}
}

// Touch rewrites the last-updated date to today.
func (d *Dealership) Touch() {
	d.LastUpdated = dates.Today()
}

// TotalSellingPrice sums the prices of active DMT order lines.
func (d Dealership) TotalSellingPrice() float64 {
	var total float64
	for _, o := range d.DMTOrders {
		if o.IsActive {
			total += o.Price
		}
	}
	return total
}

// ActiveOrders returns the active DMT order lines in record order.
func (d Dealership) ActiveOrders() []DMTOrderItem {
	out := make([]DMTOrderItem, 0, len(d.DMTOrders))
	for _, o := range d.DMTOrders {
		if o.IsActive {
			out = append(out, o)
		}
	}
	return out
}

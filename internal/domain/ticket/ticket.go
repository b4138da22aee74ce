// Package ticket defines the support-ticket record, its factory and repair
// logic, and the pure query engine over ticket collections.
package ticket

import (
	"dubhub/internal/domain/shared/values"
	"dubhub/internal/shared/dates"
	"dubhub/internal/shared/id"
)

// Update is one activity entry on a ticket. Updates are kept newest-first:
// new entries are prepended, and updates[0] is the most recent activity.
type Update struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}

// Ticket is the persisted record shape. Fields marshal to the camelCase keys
// of the stored JSON collections.
type Ticket struct {
	ID    string `json:"id"`
	Type  Type   `json:"type"`
	Title string `json:"title"`

	StartDate       string `json:"startDate"`
	LastUpdatedDate string `json:"lastUpdatedDate"`
	SubmissionDate  string `json:"submissionDate"`

	ProductArea ProductArea     `json:"productArea"`
	Platform    Platform        `json:"platform"`
	Location    string          `json:"location"`
	Priority    values.Priority `json:"priority"`
	Status      Status          `json:"status"`

	Reason        string `json:"reason,omitempty"`
	SubmitterName string `json:"submitterName"`
	Client        string `json:"client"`

	FPTicketNumber int64  `json:"fpTicketNumber,omitempty"`
	TicketThreadID string `json:"ticketThreadId,omitempty"`
	PMRNumber      int64  `json:"pmrNumber,omitempty"`
	PMRLink        string `json:"pmrLink,omitempty"`
	PMGNumber      int64  `json:"pmgNumber,omitempty"`
	PMGLink        string `json:"pmgLink,omitempty"`
	CPMNumber      int64  `json:"cpmNumber,omitempty"`
	CPMLink        string `json:"cpmLink,omitempty"`

	Summary string `json:"summary"`
	Details string `json:"details"`

	Updates    []Update `json:"updates"`
	IsFavorite bool     `json:"isFavorite,omitempty"`
}

// New returns a fully defaulted draft ticket with a fresh id. Every optional
// field is explicitly defaulted so that repair can merge stored data over it.
func New() Ticket {
	today := dates.Today()
	return Ticket{
		ID:              id.NewTicketID(),
		Type:            TypeQuestion,
		Title:           "",
		StartDate:       today,
		LastUpdatedDate: today,
		SubmissionDate:  today,
		ProductArea:     AreaFullpath,
		Platform:        PlatformFOCUS,
		Location:        "",
		Priority:        values.PriorityP3,
		Status:          StatusNotStarted,
		Reason:          "",
		SubmitterName:   "",
		Client:          "",
		Summary:         "",
		Details:         "",
		Updates:         []Update{},
		IsFavorite:      false,
	}
}

// RecordID implements store.Record.
func (t Ticket) RecordID() string {
	return t.ID
}

// Clone returns a deep copy.
func (t Ticket) Clone() Ticket {
	out := t
	out.Updates = make([]Update, len(t.Updates))
	copy(out.Updates, t.Updates)
	return out
}

// Normalize repairs a record hydrated from loosely shaped stored data:
// absent collections become empty and invalid enum values fall back to the
// factory defaults.
func (t *Ticket) Normalize() {
	if t.Updates == nil {
		t.Updates = []Update{}
	}
	if !t.Type.IsValid() {
		t.Type = TypeQuestion
	}
	if !t.Status.IsValid() {
		t.Status = StatusNotStarted
	}
	if !t.Priority.IsValid() {
		t.Priority = values.PriorityP3
	}
	if !t.ProductArea.IsValid() {
		t.ProductArea = AreaFullpath
	}
	if !t.Platform.IsValid() {
		t.Platform = PlatformFOCUS
	}
	if t.LastUpdatedDate == "" {
		t.LastUpdatedDate = t.SubmissionDate
	}
}

// Touch rewrites the last-updated date to today. Every mutation that changes
// a ticket through the edit path, the favorite flag, bulk status updates, or
// the update log must call this.
func (t *Ticket) Touch() {
	t.LastUpdatedDate = dates.Today()
}

// AddUpdate prepends a new activity entry and touches the ticket.
func (t *Ticket) AddUpdate(author, comment string) Update {
	u := Update{
		ID:      id.NewChildID(),
		Author:  author,
		Date:    dates.Today(),
		Comment: comment,
	}
	t.Updates = append([]Update{u}, t.Updates...)
	t.Touch()
	return u
}

// EditUpdate replaces the entry with the matching id; it reports whether an
// entry was found. A successful edit touches the ticket.
func (t *Ticket) EditUpdate(updateID, author, date, comment string) bool {
	for i := range t.Updates {
		if t.Updates[i].ID == updateID {
			t.Updates[i].Author = author
			t.Updates[i].Date = date
			t.Updates[i].Comment = comment
			t.Touch()
			return true
		}
	}
	return false
}

// RemoveUpdate deletes the entry with the matching id; it reports whether an
// entry was found. A successful removal touches the ticket.
func (t *Ticket) RemoveUpdate(updateID string) bool {
	for i := range t.Updates {
		if t.Updates[i].ID == updateID {
			t.Updates = append(t.Updates[:i], t.Updates[i+1:]...)
			t.Touch()
			return true
		}
	}
	return false
}

// LatestUpdate returns the most recent activity entry, if any.
func (t Ticket) LatestUpdate() (Update, bool) {
	if len(t.Updates) == 0 {
		return Update{}, false
	}
	return t.Updates[0], true
}

// DaysActive derives whole days elapsed since the start date.
func (t Ticket) DaysActive() int {
	return dates.DaysActive(t.StartDate)
}

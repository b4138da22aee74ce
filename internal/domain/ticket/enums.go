package ticket

import "fmt"

// Type classifies what kind of request a ticket tracks.
type Type string

const (
	TypeFeatureRequest Type = "Feature Request"
	TypeIssue          Type = "Issue"
	TypeQuestion       Type = "Question"
)

var validTypes = map[Type]bool{
	TypeFeatureRequest: true,
	TypeIssue:          true,
	TypeQuestion:       true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}

func Types() []Type {
	return []Type{TypeFeatureRequest, TypeIssue, TypeQuestion}
}

// Status is the ticket workflow state. There is no enforced transition
// order; any valid value may be set directly.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusPMReview   Status = "PM Review"
	StatusDevReview  Status = "DEV Review"
	StatusOnHold     Status = "On Hold"
	StatusTesting    Status = "Testing"
	StatusCompleted  Status = "Completed"
)

var validStatuses = map[Status]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusPMReview:   true,
	StatusDevReview:  true,
	StatusOnHold:     true,
	StatusTesting:    true,
	StatusCompleted:  true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func (s Status) IsOnHold() bool {
	return s == StatusOnHold
}

func NewStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", v)
	}
	return s, nil
}

func Statuses() []Status {
	return []Status{
		StatusNotStarted,
		StatusInProgress,
		StatusPMReview,
		StatusDevReview,
		StatusOnHold,
		StatusTesting,
		StatusCompleted,
	}
}

// ProductArea names which product family a ticket belongs to.
type ProductArea string

const (
	AreaReynolds ProductArea = "Reynolds"
	AreaFullpath ProductArea = "Fullpath"
)

func (a ProductArea) String() string {
	return string(a)
}

func (a ProductArea) IsValid() bool {
	return a == AreaReynolds || a == AreaFullpath
}

func ProductAreas() []ProductArea {
	return []ProductArea{AreaReynolds, AreaFullpath}
}

// Platform names the platform a ticket was raised against.
type Platform string

const (
	PlatformFOCUS   Platform = "FOCUS"
	PlatformUCP     Platform = "UCP"
	PlatformCurator Platform = "Curator"
)

func (p Platform) String() string {
	return string(p)
}

func (p Platform) IsValid() bool {
	return p == PlatformFOCUS || p == PlatformUCP || p == PlatformCurator
}

func Platforms() []Platform {
	return []Platform{PlatformFOCUS, PlatformUCP, PlatformCurator}
}

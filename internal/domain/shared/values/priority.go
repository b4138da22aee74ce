// Package values holds value types shared across record kinds.
package values

import "fmt"

// Priority is the P1–P4 scale shared by tickets and tasks. P1 is the most
// urgent and sorts first.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

var priorityWeights = map[Priority]int{
	PriorityP1: 1,
	PriorityP2: 2,
	PriorityP3: 3,
	PriorityP4: 4,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := priorityWeights[p]
	return ok
}

// Weight returns the sort rank, ascending from P1. Unknown values sink to
// the bottom.
func (p Priority) Weight() int {
	if w, ok := priorityWeights[p]; ok {
		return w
	}
	return len(priorityWeights) + 1
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

// Priorities lists the valid values in rank order.
func Priorities() []Priority {
	return []Priority{PriorityP1, PriorityP2, PriorityP3, PriorityP4}
}

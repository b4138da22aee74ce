package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordIDFormats(t *testing.T) {
	tests := []struct {
		name    string
		gen     func() string
		pattern string
	}{
		{"ticket", NewTicketID, `^T-\d{4}$`},
		{"dealership", NewDealershipID, `^D-\d{5}$`},
		{"resource", NewResourceID, `^R-\d{4}$`},
		{"task", NewTaskID, `^TASK-\d+$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			for i := 0; i < 50; i++ {
				assert.Regexp(t, re, tt.gen())
			}
		})
	}
}

func TestGenerateLength(t *testing.T) {
	assert.Len(t, Generate(10), 10)
	assert.Len(t, Generate(0), 10)
	assert.Len(t, NewChildID(), 10)
}

func TestChildIDsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewChildID()
		assert.False(t, seen[id], "duplicate child id %s", id)
		seen[id] = true
	}
}

func TestTaskIDsAreMonotonic(t *testing.T) {
	prev := NewTaskID()
	for i := 0; i < 100; i++ {
		next := NewTaskID()
		assert.NotEqual(t, prev, next)
		prev = next
	}
}

// Package dates owns the MM/DD/YYYY date convention used on every record.
// Dates are stored as display strings, not instants; parsing is only needed
// for ordering and day arithmetic, and unparsable values compare as epoch
// zero so they sort last under newest-first ordering.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the stored date format.
const Layout = "01/02/2006"

// isoLayout matches the HTML date-input format.
const isoLayout = "2006-01-02"

// Today returns the current date as MM/DD/YYYY.
func Today() string {
	return time.Now().Format(Layout)
}

// Format renders a time as MM/DD/YYYY.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse converts a stored MM/DD/YYYY string to a time. Empty or malformed
// input yields the zero-epoch instant.
func Parse(s string) time.Time {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}

// Valid reports whether s parses as MM/DD/YYYY.
func Valid(s string) bool {
	_, err := time.Parse(Layout, strings.TrimSpace(s))
	return err == nil
}

// Compare orders two stored date strings; negative when a is earlier.
func Compare(a, b string) int {
	ta, tb := Parse(a), Parse(b)
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}

// ToISO converts MM/DD/YYYY to YYYY-MM-DD for date inputs; empty or
// malformed input yields "".
func ToISO(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", parts[2], parts[0], parts[1])
}

// FromISO converts YYYY-MM-DD back to the stored MM/DD/YYYY form.
func FromISO(s string) string {
	t, err := time.Parse(isoLayout, strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return t.Format(Layout)
}

// DaysActive returns whole days elapsed since startDate, zero for empty,
// malformed or future dates.
func DaysActive(startDate string) int {
	return daysActiveAt(startDate, time.Now())
}

func daysActiveAt(startDate string, now time.Time) int {
	if strings.TrimSpace(startDate) == "" {
		return 0
	}
	start, err := time.Parse(Layout, strings.TrimSpace(startDate))
	if err != nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Package id generates the client-local display identifiers used by every
// record kind. Ids are collision-resistant within a session but carry no
// cross-session uniqueness guarantee.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// Base62 alphabet: 0-9, A-Z, a-z
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Record id prefixes.
const (
	PrefixTicket     = "T"
	PrefixDealership = "D"
	PrefixResource   = "R"
	PrefixTask       = "TASK"
)

// randomInRange returns a random integer in [min, max].
func randomInRange(min, max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken;
		// fall back to a clock-derived value rather than aborting the session.
		return min + time.Now().UnixNano()%(max-min+1)
	}
	return min + n.Int64()
}

// NewTicketID returns an id in the form "T-####".
func NewTicketID() string {
	return fmt.Sprintf("%s-%d", PrefixTicket, randomInRange(1000, 9999))
}

// NewDealershipID returns an id in the form "D-#####".
func NewDealershipID() string {
	return fmt.Sprintf("%s-%d", PrefixDealership, randomInRange(10000, 99999))
}

// NewResourceID returns an id in the form "R-####".
func NewResourceID() string {
	return fmt.Sprintf("%s-%d", PrefixResource, randomInRange(1000, 9999))
}

var (
	taskIDMu   sync.Mutex
	lastTaskID int64
)

// NewTaskID returns an id in the form "TASK-<millis>". Successive calls
// within the same millisecond bump the value so ids stay distinct.
func NewTaskID() string {
	taskIDMu.Lock()
	defer taskIDMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastTaskID {
		now = lastTaskID + 1
	}
	lastTaskID = now
	return fmt.Sprintf("%s-%d", PrefixTask, now)
}

// NewChildID returns a short random id for nested rows (updates, website
// links, order items, confirmation tokens).
func NewChildID() string {
	return Generate(10)
}

// Generate creates a random Base62 string of the given length.
func Generate(length int) string {
	if length <= 0 {
		length = 10
	}
	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			result[i] = alphabet[time.Now().UnixNano()%int64(len(alphabet))]
			continue
		}
		result[i] = alphabet[num.Int64()]
	}
	return string(result)
}

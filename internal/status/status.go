// Package status holds the single transient message shown under the menu.
// A posted message expires after the board's TTL; posting again replaces
// it and restarts the countdown.
package status

import (
	"sync"
	"time"
)

// DefaultTTL is how long a message stays up.
const DefaultTTL = 3 * time.Second

type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	text    string
	expires time.Time
	seq     uint64
}

// New returns a board using the wall clock. ttl <= 0 means DefaultTTL.
func New(ttl time.Duration) *Board { return NewWithClock(ttl, time.Now) }

func NewWithClock(ttl time.Duration, now func() time.Time) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Board{ttl: ttl, now: now}
}

func (b *Board) TTL() time.Duration { return b.ttl }

// Post shows text and returns a token identifying this message for
// Clear. Posting "" clears the board.
func (b *Board) Post(text string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.text = text
	b.expires = b.now().Add(b.ttl)
	return b.seq
}

// Current returns the visible message, or "" once it has expired.
func (b *Board) Current() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.text == "" || !b.now().Before(b.expires) {
		return ""
	}
	return b.text
}

// Clear removes the message posted with token seq. A newer message is
// left alone.
func (b *Board) Clear(seq uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.seq {
		return false
	}
	b.text = ""
	return true
}

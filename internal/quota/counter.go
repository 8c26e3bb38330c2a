// Package quota tracks per-day, per-identity guest request counts. The day
// key is derived from the clock at the moment of each call: counts reset
// implicitly at midnight because a new day reads a fresh key. There is no
// background sweep; keys for past days are simply never read again.
package quota

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pmlaogao/portal/internal/storage"
)

// DayLayout formats the calendar-day component of counter keys.
const DayLayout = "2006-01-02"

// Counter counts guest requests per identity per calendar day.
type Counter struct {
	kv  storage.KV
	now func() time.Time
}

// New creates a counter over kv. now may be nil, defaulting to time.Now.
func New(kv storage.KV, now func() time.Time) *Counter {
	if now == nil {
		now = time.Now
	}
	return &Counter{kv: kv, now: now}
}

// Key builds the storage key for an identity on a given day.
func Key(day, identity string) string {
	return fmt.Sprintf("usage_%s_%s", day, identity)
}

// Get returns today's count for identity, zero if unseen or unreadable.
func (c *Counter) Get(ctx context.Context, identity string) int {
	raw, err := c.kv.Get(ctx, c.todayKey(identity))
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// Increment bumps today's count and returns the new value. This is a plain
// read-modify-write: concurrent callers can race and the last write wins.
func (c *Counter) Increment(ctx context.Context, identity string) (int, error) {
	n := c.Get(ctx, identity) + 1
	if err := c.kv.Set(ctx, c.todayKey(identity), strconv.Itoa(n)); err != nil {
		return 0, fmt.Errorf("failed to persist guest count: %w", err)
	}
	return n, nil
}

func (c *Counter) todayKey(identity string) string {
	return Key(c.now().Format(DayLayout), identity)
}

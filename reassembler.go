package ais

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultFragmentTTL is the default time a pending multi-fragment group may
// sit without a new fragment arriving before gc(now) evicts it.
const DefaultFragmentTTL = 60 * time.Second

// DefaultMaxPendingEntries bounds the reassembler's pending table, per
// spec.md §6 max_pending_entries.
const DefaultMaxPendingEntries = 256

// pendingEntry is spec.md §3's "Pending-fragment entry": keyed by
// (sequential id, channel), holding the expected fragment count, the
// fragments seen so far, and first/last-seen timestamps for TTL eviction.
type pendingEntry struct {
	expectedTotal int
	fragments     map[int]fragmentPart
	firstSeen     time.Time
	lastSeen      time.Time
}

type fragmentPart struct {
	payload  string
	fillBits int
}

// Reassembler holds one decoder instance's pending multi-fragment table.
// It is not safe for concurrent use without external synchronization (see
// spec.md §5): reads and writes to the pending table are not atomic across
// calls, and gc must be serialized with feed.
//
// The table is backed by github.com/patrickmn/go-cache for its keyed,
// mutex-protected storage; eviction itself stays driven by an explicit,
// caller-supplied "now" (via gc) rather than go-cache's own wall-clock
// janitor, so behavior remains deterministic under test and gc stays a
// plain synchronous call as spec.md §5/§6 require.
type Reassembler struct {
	ttl      time.Duration
	maxEntries int
	store    *gocache.Cache
	now      func() time.Time
}

// NewReassembler creates a Reassembler with the given fragment TTL. A
// ttl <= 0 selects DefaultFragmentTTL.
func NewReassembler(ttl time.Duration) *Reassembler {
	if ttl <= 0 {
		ttl = DefaultFragmentTTL
	}
	return &Reassembler{
		ttl:        ttl,
		maxEntries: DefaultMaxPendingEntries,
		store:      gocache.New(gocache.NoExpiration, 0),
		now:        time.Now,
	}
}

// SetMaxEntries overrides the default cap on pending entries; 0 or negative
// disables the cap.
func (r *Reassembler) SetMaxEntries(n int) { r.maxEntries = n }

func pendingKey(groupID int, channel string) string {
	return fmt.Sprintf("%d|%s", groupID, channel)
}

// outcome is the result of feeding one envelope into the reassembler.
type outcome uint8

const (
	outcomePending outcome = iota
	outcomeComplete
)

// feed inserts or completes a multi-fragment envelope per spec.md §4.5. On
// outcomeComplete it returns the concatenated payload and the fill-bit
// count to apply (taken from the last fragment only, per spec).
func (r *Reassembler) feed(env envelope) (outcome, string, int, error) {
	key := pendingKey(env.groupID, env.channel)
	now := r.now()

	raw, found := r.store.Get(key)
	var entry *pendingEntry
	if found {
		entry = raw.(*pendingEntry)
		if entry.expectedTotal != env.total {
			r.store.Delete(key)
			return outcomePending, "", 0, ErrFragmentMismatch
		}
	} else {
		if r.maxEntries > 0 && r.store.ItemCount() >= r.maxEntries {
			r.evictOldest()
		}
		entry = &pendingEntry{
			expectedTotal: env.total,
			fragments:     make(map[int]fragmentPart, env.total),
			firstSeen:     now,
		}
	}

	entry.fragments[env.index] = fragmentPart{payload: env.payload, fillBits: env.fillBits}
	entry.lastSeen = now
	r.store.Set(key, entry, gocache.NoExpiration)

	if len(entry.fragments) < entry.expectedTotal {
		return outcomePending, "", 0, nil
	}

	var payload string
	lastFill := 0
	for i := 1; i <= entry.expectedTotal; i++ {
		part, ok := entry.fragments[i]
		if !ok {
			// Should not happen: len(fragments) == expectedTotal implies all
			// indices 1..total are present, since index is bounds-checked on
			// insert. Treat as still pending defensively.
			return outcomePending, "", 0, nil
		}
		payload += part.payload
		if i == entry.expectedTotal {
			lastFill = part.fillBits
		}
	}
	r.store.Delete(key)
	return outcomeComplete, payload, lastFill, nil
}

// gc removes every pending entry whose last-seen time is older than the
// configured TTL relative to now. It must be serialized with feed (spec.md
// §5, §6); callers with concurrent access wrap both in the same lock.
func (r *Reassembler) gc(now time.Time) {
	threshold := now.Add(-r.ttl)
	for key, item := range r.store.Items() {
		entry, ok := item.Object.(*pendingEntry)
		if !ok {
			continue
		}
		if entry.lastSeen.Before(threshold) || entry.lastSeen.Equal(threshold) {
			r.store.Delete(key)
		}
	}
}

// evictOldest drops the single oldest (by first-seen) pending entry,
// enforcing max_pending_entries by evicting oldest-first per spec.md §5.
func (r *Reassembler) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true
	for key, item := range r.store.Items() {
		entry, ok := item.Object.(*pendingEntry)
		if !ok {
			continue
		}
		if first || entry.firstSeen.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.firstSeen
			first = false
		}
	}
	if !first {
		r.store.Delete(oldestKey)
	}
}

// PendingCount reports how many fragment groups are currently buffered.
// Useful for tests and diagnostics.
func (r *Reassembler) PendingCount() int { return r.store.ItemCount() }

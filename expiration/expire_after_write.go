package expiration

import (
	"time"

	"github.com/krisalay/simple-nav/types"
)

/*
ExpireAfterWrite is a fixed TTL measured from the moment the entry was stored.
Reads never extend an entry's life: an entry written with a ten minute TTL is gone
ten minutes later no matter how often it was read.
*/
type ExpireAfterWrite struct {

	// DefaultTTL applies to entries written without an explicit TTL. Zero means they never expire.
	DefaultTTL time.Duration
}

// IsExpired reports whether the entry's age has reached its TTL.
// Entries without a TTL never expire.
func (e *ExpireAfterWrite) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	ttl := ent.TTL()
	if ttl <= 0 {
		return false
	}
	return now.Sub(ent.StoredAt()) >= ttl
}

/*
OnWrite records the store time and fills in DefaultTTL.

An explicit TTL set by the caller is never overwritten.
*/
func (e *ExpireAfterWrite) OnWrite(ent *types.CacheEntry, now time.Time) {
	ent.Timestamp = now.UnixMilli()

	if ent.ExpireTime == 0 && e.DefaultTTL > 0 {
		ent.ExpireTime = int64((e.DefaultTTL + time.Millisecond - 1) / time.Millisecond)
	}
}

package types

import (
	"encoding/json"
	"time"
)

/*
CacheEntry is the unit written into the storage namespace.

It is serialized as a JSON object:

	{"data": <value>, "timestamp": <epoch ms>, "expireTime": <ms>}

expireTime is omitted when the entry never expires.
Entries are never mutated after they are stored; a write replaces the whole object.
*/
type CacheEntry struct {
	Data       json.RawMessage `json:"data"`
	Timestamp  int64           `json:"timestamp"`
	ExpireTime int64           `json:"expireTime,omitempty"` // zero => no TTL
}

// StoredAt returns the write time of the entry.
func (e *CacheEntry) StoredAt() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}

// TTL returns the configured time-to-live, or zero if the entry never expires.
func (e *CacheEntry) TTL() time.Duration {
	return time.Duration(e.ExpireTime) * time.Millisecond
}

// IsNull reports whether the stored data is the JSON null literal.
func (e *CacheEntry) IsNull() bool {
	return len(e.Data) == 0 || string(e.Data) == "null"
}

package cache

import "time"

/*
Cache is the public contract of the display cache.

Every method is non-failing from the caller's point of view: storage and
serialization problems are logged and degrade to "nothing cached".
Typed reads and GetOrFetch are generic helpers in the root package.
*/
type Cache interface {

	/*
		Set stores value under key with no TTL of its own.

		BEHAVIOR:
		---------
		- Replaces any previous entry under key
		- A failed write is logged and otherwise ignored
		- Not transactional: a failed write may leave the old entry in place
	*/
	Set(key string, value any)

	/*
		SetWithTTL stores value under key. The entry becomes invisible once ttl has
		elapsed since the write and is deleted on the next read. ttl <= 0 means no TTL.
	*/
	SetWithTTL(key string, value any, ttl time.Duration)

	/*
		Get decodes the value under key into dst.

		RETURNS false when:
		-------------------
		- the key is absent
		- the entry expired (the entry is deleted as a side effect)
		- the entry cannot be decoded (logged; the entry is left in storage)
		- the stored data is JSON null
	*/
	Get(key string, dst any) bool

	// Remove deletes key. Removing an absent key is safe.
	Remove(key string)

	// Clear deletes every entry in the storage the cache was built on.
	Clear()

	/*
		TTL returns the remaining time-to-live for a key.

		RETURN VALUES:
		--------------
		> 0 : time remaining before expiration
		-1  : key has no TTL, or does not exist
		-2  : key exists but is already expired
	*/
	TTL(key string) time.Duration
}

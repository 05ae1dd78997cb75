package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/krisalay/simple-nav/clock"
	"github.com/krisalay/simple-nav/expiration"
	"github.com/krisalay/simple-nav/types"
)

/*
CacheEngine is the policy layer of the cache.
It is responsible for the "behavior" of the cache, NOT storage.

It decides:
- How values are turned into stored entries and back
- When an entry is expired
- Where failures are logged and how events are counted

It does NOT:
- Store data
- Choose keys
- Talk to the producer on a miss
*/
type CacheEngine struct {

	// Expiration decides when an entry is logically absent.
	// If nil, entries only expire through their own TTL field.
	Expiration expiration.Strategy

	// Metrics records hits, misses, expirations and failures.
	Metrics types.Metrics

	// Logger receives every swallowed failure. Tests inject a recorder here.
	Logger types.Logger

	// Clock is the time source for timestamps and expiry checks.
	Clock clock.Clock
}

/*
NewCacheEngine creates a CacheEngine. Nil collaborators are replaced with defaults so
the rest of the code never has to check for them.
*/
func NewCacheEngine(
	exp expiration.Strategy,
	metrics types.Metrics,
	logger types.Logger,
	clk clock.Clock,
) *CacheEngine {
	if exp == nil {
		exp = &expiration.ExpireAfterWrite{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if logger == nil {
		logger = types.DefaultLogger()
	}
	if clk == nil {
		clk = clock.SystemUTC{}
	}

	return &CacheEngine{
		Expiration: exp,
		Metrics:    metrics,
		Logger:     logger,
		Clock:      clk,
	}
}

// Now returns the engine's current time.
func (e *CacheEngine) Now() time.Time {
	return e.Clock.NowUTC()
}

/*
Encode builds the stored form of value.

ttl <= 0 means the entry carries no TTL of its own (the strategy may still add a default).
*/
func (e *CacheEngine) Encode(value any, ttl time.Duration) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}

	ent := &types.CacheEntry{Data: data}
	if ttl > 0 {
		ent.ExpireTime = ttlMillis(ttl)
	}
	e.Expiration.OnWrite(ent, e.Now())

	raw, err := json.Marshal(ent)
	if err != nil {
		return "", fmt.Errorf("encode entry: %w", err)
	}
	return string(raw), nil
}

// Decode parses a stored entry. It does not check expiry; callers pair it with IsExpired.
func (e *CacheEngine) Decode(raw string) (*types.CacheEntry, error) {
	var ent types.CacheEntry
	if err := json.Unmarshal([]byte(raw), &ent); err != nil {
		return nil, fmt.Errorf("decode entry: %w", err)
	}
	return &ent, nil
}

// IsExpired checks whether a stored entry is expired at the current time.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry) bool {
	return e.Expiration.IsExpired(ent, e.Now())
}

// Remaining returns how long the entry stays visible. Zero or negative means it is gone.
func (e *CacheEngine) Remaining(ent *types.CacheEntry) time.Duration {
	return ent.StoredAt().Add(ent.TTL()).Sub(e.Now())
}

// Fail logs a swallowed failure and counts it under op.
func (e *CacheEngine) Fail(op, key string, err error) {
	e.Metrics.Failure(op)
	e.Logger.Printf("cache %s failed key=%q: %v", op, key, err)
}

// ttlMillis rounds ttl up to whole milliseconds, so a positive TTL never encodes as "no TTL".
func ttlMillis(ttl time.Duration) int64 {
	return int64((ttl + time.Millisecond - 1) / time.Millisecond)
}

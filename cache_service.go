package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	api "github.com/krisalay/simple-nav/api"
	"github.com/krisalay/simple-nav/engine"
	"github.com/krisalay/simple-nav/storage"
	"github.com/krisalay/simple-nav/types"
	"golang.org/x/sync/singleflight"
)

var _ api.Cache = (*Service)(nil)

/*
Service is the expiring key/value cache.
This struct is the orchestrator that connects:
- a storage namespace (where entries live)
- the engine (encoding, expiry, metrics, logging)
- singleflight (one producer call per missing key at a time)

Storage and serialization failures are logged and degrade to a miss or a
dropped write; they are never returned.
*/
type Service struct {
	storage storage.Storage
	engine  *engine.CacheEngine
	sf      singleflight.Group
}

// New builds a Service over store. A nil engine uses defaults for every collaborator.
func New(store storage.Storage, eng *engine.CacheEngine) *Service {
	if eng == nil {
		eng = engine.NewCacheEngine(nil, nil, nil, nil)
	}
	return &Service{storage: store, engine: eng}
}

// Set stores value without a TTL of its own.
func (s *Service) Set(key string, value any) {
	s.SetWithTTL(key, value, 0)
}

/*
SetWithTTL stores value under key.

Failures are logged and counted, never returned.
*/
func (s *Service) SetWithTTL(key string, value any, ttl time.Duration) {
	raw, err := s.engine.Encode(value, ttl)
	if err != nil {
		s.engine.Fail("set", key, err)
		return
	}
	if err := s.storage.SetItem(key, raw); err != nil {
		s.engine.Fail("set", key, err)
	}
}

/*
lookup returns the live entry under key.

An expired entry is deleted here. A corrupt entry is logged and left in storage,
so every later read fails the same way until it is overwritten or removed.
*/
func (s *Service) lookup(key string) (*types.CacheEntry, bool) {
	raw, ok, err := s.storage.GetItem(key)
	if err != nil {
		s.engine.Fail("get", key, err)
		s.engine.Metrics.Miss()
		return nil, false
	}
	if !ok || raw == "" {
		s.engine.Metrics.Miss()
		return nil, false
	}

	ent, err := s.engine.Decode(raw)
	if err != nil {
		s.engine.Fail("decode", key, err)
		s.engine.Metrics.Miss()
		return nil, false
	}

	if s.engine.IsExpired(ent) {
		s.engine.Metrics.Expire()
		if err := s.storage.RemoveItem(key); err != nil {
			s.engine.Fail("remove", key, err)
		}
		s.engine.Metrics.Miss()
		return nil, false
	}

	if ent.IsNull() {
		s.engine.Metrics.Miss()
		return nil, false
	}

	s.engine.Metrics.Hit()
	return ent, true
}

// Get decodes the live value under key into dst.
func (s *Service) Get(key string, dst any) bool {
	ent, ok := s.lookup(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(ent.Data, dst); err != nil {
		s.engine.Fail("decode", key, err)
		return false
	}
	return true
}

// Remove deletes key.
func (s *Service) Remove(key string) {
	if err := s.storage.RemoveItem(key); err != nil {
		s.engine.Fail("remove", key, err)
	}
}

// Clear deletes every entry in the underlying storage.
func (s *Service) Clear() {
	if err := s.storage.Clear(); err != nil {
		s.engine.Fail("clear", "*", err)
	}
}

// TTL returns the remaining time-to-live of key without deleting anything.
func (s *Service) TTL(key string) time.Duration {
	raw, ok, err := s.storage.GetItem(key)
	if err != nil || !ok {
		return -1
	}
	ent, err := s.engine.Decode(raw)
	if err != nil || ent.TTL() <= 0 {
		return -1
	}
	if s.engine.IsExpired(ent) {
		return -2
	}
	return s.engine.Remaining(ent)
}

/*
Get is the typed form of Service.Get.
*/
func Get[T any](s *Service, key string) (T, bool) {
	var v T
	ok := s.Get(key, &v)
	return v, ok
}

/*
GetOrFetch returns the cached value under key, or produces, stores and returns a fresh one.

BEHAVIOR:
---------
  - On a hit the producer is not called.
  - On a miss the producer runs once; concurrent misses for the same key wait for
    that call and share its result.
  - A producer error is returned as is and nothing is stored.
  - The producer sees ctx's values but never its cancellation.
  - There is no timeout: a producer that never returns blocks every waiter.
*/
func GetOrFetch[T any](
	ctx context.Context,
	s *Service,
	key string,
	producer func(context.Context) (T, error),
	ttl time.Duration,
) (T, error) {
	if v, ok := Get[T](s, key); ok {
		return v, nil
	}

	// Waiters share this call; one caller canceling must not fail the rest.
	shared := context.WithoutCancel(ctx)
	res, err, _ := s.sf.Do(key, func() (any, error) {
		v, err := producer(shared)
		if err != nil {
			return nil, err
		}
		s.SetWithTTL(key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	if res == nil {
		var zero T
		return zero, nil
	}
	v, ok := res.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache key %q shared by producers of different types", key)
	}
	return v, nil
}

package storage

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/krisalay/simple-nav/types"
	"github.com/krisalay/simple-nav/writepolicy"
)

// DefaultTieredTimeout bounds each back store call made by a Tiered store.
const DefaultTieredTimeout = 2 * time.Second

/*
Tiered puts a fast front Storage over a durable back store.

Reads:
  - front hit: served directly
  - front miss: pending writes are flushed, then the key is loaded from the
    back store and copied into the front

Writes land in the front first and reach the back store through the WritePolicy.
*/
type Tiered struct {
	front   Storage
	back    types.Loader
	policy  writepolicy.WritePolicy
	timeout time.Duration
}

// NewTiered layers front over back. timeout <= 0 uses DefaultTieredTimeout.
func NewTiered(front Storage, back types.Loader, policy writepolicy.WritePolicy, timeout time.Duration) *Tiered {
	if timeout <= 0 {
		timeout = DefaultTieredTimeout
	}
	return &Tiered{front: front, back: back, policy: policy, timeout: timeout}
}

func (t *Tiered) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), t.timeout)
}

func (t *Tiered) GetItem(key string) (string, bool, error) {
	if v, ok, err := t.front.GetItem(key); err == nil && ok {
		return v, true, nil
	}

	// A queued delete must land before the back store is consulted.
	t.policy.Flush()

	ctx, cancel := t.ctx()
	defer cancel()

	v, ok, err := t.back.Load(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("load %q: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}

	// A front that is full still returns the loaded value.
	_ = t.front.SetItem(key, v)
	return v, true, nil
}

func (t *Tiered) SetItem(key, value string) error {
	if err := t.front.SetItem(key, value); err != nil {
		return err
	}
	ctx, cancel := t.ctx()
	defer cancel()
	t.policy.OnWrite(ctx, key, value)
	return nil
}

func (t *Tiered) RemoveItem(key string) error {
	if err := t.front.RemoveItem(key); err != nil {
		return err
	}
	ctx, cancel := t.ctx()
	defer cancel()
	t.policy.OnRemove(ctx, key)
	return nil
}

// Keys merges the keys of both tiers.
func (t *Tiered) Keys() ([]string, error) {
	front, err := t.front.Keys()
	if err != nil {
		return nil, err
	}

	t.policy.Flush()
	ctx, cancel := t.ctx()
	defer cancel()
	back, err := t.back.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list back store: %w", err)
	}

	set := make(map[string]struct{}, len(front)+len(back))
	for _, k := range front {
		set[k] = struct{}{}
	}
	for _, k := range back {
		set[k] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set)), nil
}

// Clear waits for pending writes, then wipes both tiers.
func (t *Tiered) Clear() error {
	t.policy.Flush()
	if err := t.front.Clear(); err != nil {
		return err
	}
	ctx, cancel := t.ctx()
	defer cancel()
	if err := t.back.Purge(ctx); err != nil {
		return fmt.Errorf("purge back store: %w", err)
	}
	return nil
}

// Close flushes pending writes and stops the write policy.
func (t *Tiered) Close() {
	t.policy.Close()
}

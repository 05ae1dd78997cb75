package storage

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/krisalay/simple-nav/eviction"
)

// MemoryOptions bounds a Memory store.
type MemoryOptions struct {

	// MaxEntries caps the number of keys. Zero means unbounded.
	MaxEntries int

	// MaxBytes caps the summed length of keys and values. Zero means unbounded.
	MaxBytes int64

	// Eviction picks victims when a write would exceed a cap.
	// eviction.None makes such writes fail with ErrQuotaExceeded instead.
	Eviction eviction.PolicyType

	// OnEvict is called for every key dropped to make room, after the write completes.
	OnEvict func(key string)
}

/*
Memory is an in-process Storage.

Reads are lock-free: readers load an immutable snapshot of the map.
Writers copy the map, apply their change and swap the snapshot in under mu.
Reads only take mu when an eviction policy needs to hear about them.
*/
type Memory struct {
	data atomic.Value // map[string]string

	mu     sync.Mutex
	bytes  int64
	opts   MemoryOptions
	policy eviction.Policy
}

// NewMemory returns an empty Memory store.
func NewMemory(opts MemoryOptions) *Memory {
	m := &Memory{
		opts:   opts,
		policy: eviction.NewEvictionPolicy(opts.Eviction),
	}
	m.data.Store(map[string]string{})
	return m
}

func (m *Memory) snapshot() map[string]string {
	return m.data.Load().(map[string]string)
}

func itemSize(key, value string) int64 {
	return int64(len(key) + len(value))
}

func (m *Memory) GetItem(key string) (string, bool, error) {
	v, ok := m.snapshot()[key]
	if ok && m.policy != nil {
		m.mu.Lock()
		m.policy.OnGet(key)
		m.mu.Unlock()
	}
	return v, ok, nil
}

/*
SetItem stores value under key.

If the write would exceed a cap, victims are evicted first. Without an eviction
policy the write fails with ErrQuotaExceeded and the previous value stays visible.
*/
func (m *Memory) SetItem(key, value string) error {
	m.mu.Lock()

	next := maps.Clone(m.snapshot())
	size := m.bytes
	prev, existed := next[key]
	if existed {
		delete(next, key)
		size -= itemSize(key, prev)
	}

	need := itemSize(key, value)
	if m.opts.MaxBytes > 0 && need > m.opts.MaxBytes {
		m.mu.Unlock()
		return fmt.Errorf("set %q (%d bytes): %w", key, need, ErrQuotaExceeded)
	}

	if existed && m.policy != nil {
		m.policy.Remove(key)
	}

	var evicted []string
	for m.exceeds(len(next)+1, size+need) {
		victim := ""
		if m.policy != nil {
			victim = m.policy.Evict()
		}
		if victim == "" {
			if existed && m.policy != nil {
				m.policy.OnPut(key)
			}
			m.mu.Unlock()
			return fmt.Errorf("set %q: %w", key, ErrQuotaExceeded)
		}
		if v, ok := next[victim]; ok {
			delete(next, victim)
			size -= itemSize(victim, v)
			evicted = append(evicted, victim)
		}
	}

	next[key] = value
	m.data.Store(next)
	m.bytes = size + need
	if m.policy != nil {
		m.policy.OnPut(key)
	}
	m.mu.Unlock()

	if m.opts.OnEvict != nil {
		for _, k := range evicted {
			m.opts.OnEvict(k)
		}
	}
	return nil
}

func (m *Memory) exceeds(entries int, bytes int64) bool {
	if m.opts.MaxEntries > 0 && entries > m.opts.MaxEntries {
		return true
	}
	return m.opts.MaxBytes > 0 && bytes > m.opts.MaxBytes
}

func (m *Memory) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.snapshot()
	v, ok := old[key]
	if !ok {
		return nil
	}
	next := maps.Clone(old)
	delete(next, key)
	m.data.Store(next)
	m.bytes -= itemSize(key, v)
	if m.policy != nil {
		m.policy.Remove(key)
	}
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	return slices.Sorted(maps.Keys(m.snapshot())), nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data.Store(map[string]string{})
	m.bytes = 0
	m.policy = eviction.NewEvictionPolicy(m.opts.Eviction)
	return nil
}

// Len returns how many keys are stored.
func (m *Memory) Len() int {
	return len(m.snapshot())
}

// Bytes returns the summed length of stored keys and values.
func (m *Memory) Bytes() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bytes
}

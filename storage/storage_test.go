package storage_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/krisalay/simple-nav/eviction"
	"github.com/krisalay/simple-nav/storage"
	"github.com/krisalay/simple-nav/writepolicy"
)

//
// ================= MEMORY =================
//

func TestMemoryBasicOperations(t *testing.T) {
	m := storage.NewMemory(storage.MemoryOptions{})

	if _, ok, _ := m.GetItem("a"); ok {
		t.Fatalf("expected empty store")
	}

	_ = m.SetItem("b", "2")
	_ = m.SetItem("a", "1")
	_ = m.SetItem("a", "11")

	if v, ok, _ := m.GetItem("a"); !ok || v != "11" {
		t.Fatalf("expected a=11, got %q (ok=%v)", v, ok)
	}
	if keys, _ := m.Keys(); !slices.Equal(keys, []string{"a", "b"}) {
		t.Fatalf("expected sorted keys, got %v", keys)
	}
	if m.Bytes() != int64(len("a11")+len("b2")) {
		t.Fatalf("unexpected byte count %d", m.Bytes())
	}

	_ = m.RemoveItem("a")
	_ = m.RemoveItem("missing")
	if m.Len() != 1 {
		t.Fatalf("expected 1 key, got %d", m.Len())
	}

	_ = m.Clear()
	if m.Len() != 0 || m.Bytes() != 0 {
		t.Fatalf("expected empty store after clear")
	}
}

func TestMemoryQuotaWithoutEvictionRejectsWrites(t *testing.T) {
	m := storage.NewMemory(storage.MemoryOptions{MaxEntries: 2})

	_ = m.SetItem("a", "1")
	_ = m.SetItem("b", "2")

	if err := m.SetItem("c", "3"); !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if err := m.SetItem("a", "replaced"); err != nil {
		t.Fatalf("expected overwrite within quota to succeed, got %v", err)
	}
	if keys, _ := m.Keys(); !slices.Equal(keys, []string{"a", "b"}) {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestMemoryByteQuota(t *testing.T) {
	m := storage.NewMemory(storage.MemoryOptions{MaxBytes: 10})

	if err := m.SetItem("big", "0123456789"); !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("expected oversized item to be rejected, got %v", err)
	}

	_ = m.SetItem("k", "12345")
	if err := m.SetItem("k", "1234567890"); !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("expected oversized overwrite to be rejected, got %v", err)
	}
	if v, _, _ := m.GetItem("k"); v != "12345" {
		t.Fatalf("expected previous value to stay visible, got %q", v)
	}
}

func TestMemoryEvictsWithPolicy(t *testing.T) {
	tests := []struct {
		policy eviction.PolicyType
		want   string
	}{
		{eviction.LRU, "b"},
		{eviction.LFU, "b"},
		{eviction.FIFO, "a"},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			var evicted []string
			m := storage.NewMemory(storage.MemoryOptions{
				MaxEntries: 2,
				Eviction:   tt.policy,
				OnEvict:    func(k string) { evicted = append(evicted, k) },
			})

			_ = m.SetItem("a", "1")
			_ = m.SetItem("b", "2")
			_, _, _ = m.GetItem("a")

			if err := m.SetItem("c", "3"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(evicted, []string{tt.want}) {
				t.Fatalf("expected %s evicted, got %v", tt.want, evicted)
			}
			if _, ok, _ := m.GetItem(tt.want); ok {
				t.Fatalf("expected %s to be gone", tt.want)
			}
			if m.Len() != 2 {
				t.Fatalf("expected 2 keys, got %d", m.Len())
			}
		})
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := storage.NewMemory(storage.MemoryOptions{MaxEntries: 50, Eviction: eviction.LRU})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := string(rune('a'+g)) + string(rune('0'+i%10))
				_ = m.SetItem(k, "v")
				_, _, _ = m.GetItem(k)
				if i%7 == 0 {
					_ = m.RemoveItem(k)
				}
			}
		}(g)
	}
	wg.Wait()

	if m.Len() > 50 {
		t.Fatalf("expected at most 50 keys, got %d", m.Len())
	}
}

//
// ================= NAMESPACED =================
//

func TestNamespacedIsolatesKeys(t *testing.T) {
	shared := storage.NewMemory(storage.MemoryOptions{})
	_ = shared.SetItem("lastClosedAnnouncementId", "ann4")

	ns := storage.NewNamespaced(shared, "navcache:")
	_ = ns.SetItem("allSites", "[]")
	_ = ns.SetItem("search_git", "[]")

	if v, ok, _ := shared.GetItem("navcache:allSites"); !ok || v != "[]" {
		t.Fatalf("expected prefixed key in shared store")
	}
	if keys, _ := ns.Keys(); !slices.Equal(keys, []string{"allSites", "search_git"}) {
		t.Fatalf("expected unprefixed keys, got %v", keys)
	}

	if err := ns.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keys, _ := shared.Keys(); !slices.Equal(keys, []string{"lastClosedAnnouncementId"}) {
		t.Fatalf("expected foreign key to survive clear, got %v", keys)
	}
}

//
// ================= TIERED =================
//

type backStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newBackStore() *backStore {
	return &backStore{data: make(map[string]string)}
}

func (b *backStore) Load(_ context.Context, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[key]
	return v, ok, nil
}

func (b *backStore) Put(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}

func (b *backStore) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *backStore) List(context.Context) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Sorted(maps.Keys(b.data)), nil
}

func (b *backStore) Purge(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.data)
	return nil
}

func TestTieredReadThroughPopulatesFront(t *testing.T) {
	front := storage.NewMemory(storage.MemoryOptions{})
	back := newBackStore()
	_ = back.Put(context.Background(), "persisted", "v")

	s := storage.NewTiered(front, back, writepolicy.NewWriteThroughPolicy(back, nil), 0)
	defer s.Close()

	if v, ok, err := s.GetItem("persisted"); err != nil || !ok || v != "v" {
		t.Fatalf("expected read-through hit, got %q ok=%v err=%v", v, ok, err)
	}
	if _, ok, _ := front.GetItem("persisted"); !ok {
		t.Fatalf("expected front to be populated")
	}
}

func TestTieredWriteBackReachesBackStore(t *testing.T) {
	ctx := context.Background()
	front := storage.NewMemory(storage.MemoryOptions{})
	back := newBackStore()
	policy := writepolicy.NewWriteBackPolicy(back, 16, nil)

	s := storage.NewTiered(front, back, policy, 0)

	_ = s.SetItem("a", "1")
	_ = s.SetItem("b", "2")
	_ = s.RemoveItem("a")
	s.Close()

	if _, ok, _ := back.Load(ctx, "a"); ok {
		t.Fatalf("expected a removed from back store")
	}
	if v, ok, _ := back.Load(ctx, "b"); !ok || v != "2" {
		t.Fatalf("expected b=2 in back store, got %q (ok=%v)", v, ok)
	}
}

func TestTieredRemovedKeyIsNotResurrected(t *testing.T) {
	front := storage.NewMemory(storage.MemoryOptions{})
	back := newBackStore()
	s := storage.NewTiered(front, back, writepolicy.NewWriteBackPolicy(back, 16, nil), 0)
	defer s.Close()

	_ = s.SetItem("a", "1")
	_ = s.RemoveItem("a")

	if _, ok, _ := s.GetItem("a"); ok {
		t.Fatalf("expected removed key to stay removed")
	}
}

func TestTieredKeysAndClear(t *testing.T) {
	ctx := context.Background()
	front := storage.NewMemory(storage.MemoryOptions{})
	back := newBackStore()
	_ = back.Put(ctx, "old", "v")

	s := storage.NewTiered(front, back, writepolicy.NewWriteBackPolicy(back, 16, nil), 0)
	defer s.Close()

	_ = s.SetItem("new", "v")

	keys, err := s.Keys()
	if err != nil || !slices.Equal(keys, []string{"new", "old"}) {
		t.Fatalf("expected merged keys, got %v (err=%v)", keys, err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keys, _ := s.Keys(); len(keys) != 0 {
		t.Fatalf("expected both tiers empty, got %v", keys)
	}
}

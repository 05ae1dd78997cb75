package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	cache "github.com/krisalay/simple-nav"
	"github.com/krisalay/simple-nav/catalog"
	"github.com/krisalay/simple-nav/directory"
	"github.com/krisalay/simple-nav/engine"
	"github.com/krisalay/simple-nav/eviction"
	"github.com/krisalay/simple-nav/expiration"
	"github.com/krisalay/simple-nav/storage"
)

// ================= METRICS =================

type counters struct {
	hits, misses, expired, evictions, failures atomic.Int64
}

func (c *counters) Hit()           { c.hits.Add(1) }
func (c *counters) Miss()          { c.misses.Add(1) }
func (c *counters) Expire()        { c.expired.Add(1) }
func (c *counters) Eviction()      { c.evictions.Add(1) }
func (c *counters) Failure(string) { c.failures.Add(1) }

// ================= BENCHMARK =================

func main() {
	ctx := context.Background()

	const (
		maxEntries = 64
		goroutines = 200
		opsPerG    = 2000
	)
	queries := []string{"git", "AI", "设计", "平台", "code", "docs", "cn", "问答", "tool", "zzz-no-match"}

	fmt.Println("\n================ DIRECTORY SEARCH BENCHMARK =================")
	fmt.Println("Max Entries  :", maxEntries)
	fmt.Println("Eviction     :", eviction.LRU)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("Queries      :", len(queries))

	// ---------------- Cache ----------------
	m := &counters{}
	store := storage.NewMemory(storage.MemoryOptions{
		MaxEntries: maxEntries,
		Eviction:   eviction.LRU,
		OnEvict:    func(string) { m.Eviction() },
	})
	eng := engine.NewCacheEngine(&expiration.ExpireAfterWrite{}, m, log.Default(), nil)
	dir := directory.New(cache.New(store, eng), catalog.Default(), directory.Options{})

	// ---------------- Warmup ----------------
	for _, q := range queries {
		if _, err := dir.Search(ctx, q); err != nil {
			log.Fatalf("warmup search %q: %v", q, err)
		}
	}

	// ---------------- Load Test ----------------
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				_, _ = dir.Search(ctx, queries[(id+j)%len(queries)])
			}
		}(i)
	}
	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Hits / Misses    : %d / %d\n", m.hits.Load(), m.misses.Load())
	fmt.Printf("Evictions        : %d\n", m.evictions.Load())
	fmt.Printf("Failures         : %d\n", m.failures.Load())
	fmt.Println("=========================================")
}

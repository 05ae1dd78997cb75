package directory_test

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	cache "github.com/krisalay/simple-nav"
	"github.com/krisalay/simple-nav/catalog"
	"github.com/krisalay/simple-nav/clock"
	"github.com/krisalay/simple-nav/directory"
	"github.com/krisalay/simple-nav/engine"
	"github.com/krisalay/simple-nav/search"
	"github.com/krisalay/simple-nav/storage"
)

type outcomes struct {
	mu  sync.Mutex
	got []string
}

func (o *outcomes) ObserveSearch(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.got = append(o.got, outcome)
}

type fixture struct {
	dir      *directory.Directory
	svc      *cache.Service
	shared   *storage.Memory
	clock    *clock.Manual
	observer *outcomes
}

func newFixture() *fixture {
	f := &fixture{
		shared:   storage.NewMemory(storage.MemoryOptions{}),
		clock:    clock.NewManual(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		observer: &outcomes{},
	}
	eng := engine.NewCacheEngine(nil, nil, nil, f.clock)
	f.svc = cache.New(storage.NewNamespaced(f.shared, "navcache:"), eng)
	f.dir = directory.New(f.svc, catalog.Default(), directory.Options{Observer: f.observer})
	return f
}

func siteNames(sites []search.Site) []string {
	out := make([]string, 0, len(sites))
	for _, s := range sites {
		out = append(out, s.Name)
	}
	return out
}

//
// ================= ALL SITES =================
//

func TestAllSitesIsDeduplicatedAndCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	sites, err := f.dir.AllSites(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10 hot + 50 listed, 5 listed URLs repeat hot ones.
	if len(sites) != 55 {
		t.Fatalf("expected 55 unique sites, got %d", len(sites))
	}

	seen := map[string]bool{}
	for _, s := range sites {
		if seen[s.URL] {
			t.Fatalf("duplicate URL %s", s.URL)
		}
		seen[s.URL] = true
	}

	if got := f.svc.TTL(directory.AllSitesKey); got != time.Hour {
		t.Fatalf("expected allSites TTL of 1h, got %v", got)
	}
	if _, ok, _ := f.shared.GetItem("navcache:allSites"); !ok {
		t.Fatalf("expected allSites under the cache namespace")
	}
}

func TestTotalSitesCountsListedEntries(t *testing.T) {
	f := newFixture()

	if got := f.dir.TotalSites(); got != 50 {
		t.Fatalf("expected 50 listed entries, got %d", got)
	}
}

//
// ================= SEARCH =================
//

func TestSearchMatchesAndCaches(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	got, err := f.dir.Search(ctx, "  Git ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"GitHub", "Digital Trends", "GitLab"}
	if !slices.Equal(siteNames(got), want) {
		t.Fatalf("expected %v, got %v", want, siteNames(got))
	}

	if got := f.svc.TTL("search_git"); got != 10*time.Minute {
		t.Fatalf("expected search TTL of 10m, got %v", got)
	}
	if directory.SearchKey(" GIT") != "search_git" {
		t.Fatalf("unexpected search key %q", directory.SearchKey(" GIT"))
	}
}

func TestSearchNonLatinQuery(t *testing.T) {
	f := newFixture()

	got, _ := f.dir.Search(context.Background(), "问答")
	if !slices.Equal(siteNames(got), []string{"Stack Overflow"}) {
		t.Fatalf("expected one Stack Overflow match, got %v", siteNames(got))
	}
}

func TestSearchBlankQueryIsEmptyAndUncached(t *testing.T) {
	f := newFixture()

	for _, q := range []string{"", "   "} {
		got, err := f.dir.Search(context.Background(), q)
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("query %q: expected empty list, got %v (err=%v)", q, got, err)
		}
	}
	if f.shared.Len() != 0 {
		t.Fatalf("expected blank searches to leave the cache untouched")
	}
}

func TestSearchNoMatch(t *testing.T) {
	f := newFixture()

	got, err := f.dir.Search(context.Background(), "zzz-no-such-site")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v (err=%v)", got, err)
	}
	if !slices.Equal(f.observer.got, []string{directory.OutcomeNone}) {
		t.Fatalf("expected none outcome, got %v", f.observer.got)
	}
}

func TestSearchResultOutlivesAllSites(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, _ = f.dir.Search(ctx, "git")

	f.svc.Remove(directory.AllSitesKey)

	got, _ := f.dir.Search(ctx, "git")
	if len(got) != 3 {
		t.Fatalf("expected cached search result, got %v", siteNames(got))
	}
	if _, ok, _ := f.shared.GetItem("navcache:allSites"); ok {
		t.Fatalf("expected cached search to be served without rebuilding allSites")
	}
}

func TestSearchRecomputesAfterTTL(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, _ = f.dir.Search(ctx, "git")

	stamp := strconv.FormatInt(f.clock.NowUTC().UnixMilli(), 10)
	_ = f.shared.SetItem("navcache:search_git", `{"data":[],"timestamp":`+stamp+`,"expireTime":600000}`)
	if got, _ := f.dir.Search(ctx, "git"); len(got) != 0 {
		t.Fatalf("expected stored result to be served while fresh, got %v", siteNames(got))
	}

	f.clock.Advance(10 * time.Minute)
	if got, _ := f.dir.Search(ctx, "git"); len(got) != 3 {
		t.Fatalf("expected recomputed result after TTL, got %v", siteNames(got))
	}
}

func TestSearchRecoversFromCorruptEntry(t *testing.T) {
	f := newFixture()
	_ = f.shared.SetItem("navcache:search_git", "{broken")

	got, err := f.dir.Search(context.Background(), "git")
	if err != nil || len(got) != 3 {
		t.Fatalf("expected fresh result, got %v (err=%v)", siteNames(got), err)
	}
}

func TestSearchReportsOutcomes(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, _ = f.dir.Search(ctx, "")
	_, _ = f.dir.Search(ctx, "git")

	want := []string{directory.OutcomeEmpty, directory.OutcomeMatch}
	if !slices.Equal(f.observer.got, want) {
		t.Fatalf("expected %v, got %v", want, f.observer.got)
	}
}

//
// ================= STATIC SECTIONS =================
//

func TestCategorySites(t *testing.T) {
	f := newFixture()

	sites, ok := f.dir.CategorySites(5)
	if !ok || len(sites) != 10 || sites[0].Name != "GitHub" {
		t.Fatalf("unexpected category 5: ok=%v %v", ok, siteNames(sites))
	}

	sites, ok = f.dir.CategorySites(6)
	if !ok || sites == nil || len(sites) != 0 {
		t.Fatalf("expected known empty category, got ok=%v %v", ok, sites)
	}

	if _, ok := f.dir.CategorySites(99); ok {
		t.Fatalf("expected unknown category")
	}
}

func TestClearCacheKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	board := directory.NewAnnouncementBoard(f.shared, f.dir.Announcements())

	_, _ = f.dir.Search(ctx, "git")
	if err := board.Dismiss(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.dir.ClearCache()

	keys, _ := f.shared.Keys()
	if !slices.Equal(keys, []string{directory.LastClosedAnnouncementKey}) {
		t.Fatalf("expected only the announcement marker to survive, got %v", keys)
	}
	if board.Visible("") {
		t.Fatalf("expected banner to stay dismissed after cache clear")
	}
}

//
// ================= ANNOUNCEMENTS =================
//

func TestAnnouncementBoard(t *testing.T) {
	store := storage.NewMemory(storage.MemoryOptions{})
	anns := []catalog.Announcement{{ID: "ann1", Text: "one"}, {ID: "ann2", Text: "two"}}
	board := directory.NewAnnouncementBoard(store, anns)

	if latest, _ := board.Latest(); latest.ID != "ann2" {
		t.Fatalf("expected ann2 latest, got %q", latest.ID)
	}
	if !board.Visible("") {
		t.Fatalf("expected banner visible before dismiss")
	}

	if err := board.Dismiss(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _, _ := store.GetItem(directory.LastClosedAnnouncementKey); v != "ann2" {
		t.Fatalf("expected marker ann2, got %q", v)
	}
	if board.Visible("") {
		t.Fatalf("expected banner hidden after dismiss")
	}

	newer := directory.NewAnnouncementBoard(store, append(anns, catalog.Announcement{ID: "ann3", Text: "three"}))
	if !newer.Visible("") {
		t.Fatalf("expected banner to reappear for a newer announcement")
	}
}

func TestAnnouncementBoardWithoutAnnouncements(t *testing.T) {
	board := directory.NewAnnouncementBoard(storage.NewMemory(storage.MemoryOptions{}), nil)

	if board.Visible("") {
		t.Fatalf("expected nothing to show")
	}
	if err := board.Dismiss(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnnouncementDismissalIsPerVisitor(t *testing.T) {
	store := storage.NewMemory(storage.MemoryOptions{})
	board := directory.NewAnnouncementBoard(store, []catalog.Announcement{{ID: "ann4", Text: "four"}})

	if err := board.Dismiss("alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if board.Visible("alice") {
		t.Fatalf("expected banner hidden for the visitor who dismissed it")
	}
	if !board.Visible("bob") {
		t.Fatalf("expected banner still visible for another visitor")
	}
	if !board.Visible("") {
		t.Fatalf("expected banner still visible for the local visitor")
	}
	if v, _, _ := store.GetItem(directory.MarkerKey("alice")); v != "ann4" {
		t.Fatalf("expected alice's marker under %q, got %q", directory.MarkerKey("alice"), v)
	}
}

// Package directory serves the navigation page's data: the cached site list,
// cached search results and the static sections around them.
package directory

import (
	"context"
	"time"

	cache "github.com/krisalay/simple-nav"
	"github.com/krisalay/simple-nav/catalog"
	"github.com/krisalay/simple-nav/search"
)

const (
	// AllSitesKey holds the aggregated, de-duplicated site list.
	AllSitesKey = "allSites"

	// SearchKeyPrefix is followed by the normalized query.
	SearchKeyPrefix = "search_"

	DefaultAllSitesTTL = time.Hour
	DefaultSearchTTL   = 10 * time.Minute
)

// Search outcomes reported to a SearchObserver.
const (
	OutcomeMatch = "match"
	OutcomeNone  = "none"
	OutcomeEmpty = "empty"
)

// SearchObserver receives one call per Search.
type SearchObserver interface {
	ObserveSearch(outcome string, elapsed time.Duration)
}

// Options tunes a Directory. Zero values use the defaults.
type Options struct {
	AllSitesTTL time.Duration
	SearchTTL   time.Duration
	Observer    SearchObserver
}

// Directory answers the page's queries from a Catalog, memoizing the expensive ones in a cache.
type Directory struct {
	cache   *cache.Service
	catalog *catalog.Catalog

	allSitesTTL time.Duration
	searchTTL   time.Duration
	observer    SearchObserver
}

// New builds a Directory.
func New(c *cache.Service, cat *catalog.Catalog, opts Options) *Directory {
	if opts.AllSitesTTL <= 0 {
		opts.AllSitesTTL = DefaultAllSitesTTL
	}
	if opts.SearchTTL <= 0 {
		opts.SearchTTL = DefaultSearchTTL
	}
	return &Directory{
		cache:       c,
		catalog:     cat,
		allSitesTTL: opts.AllSitesTTL,
		searchTTL:   opts.SearchTTL,
		observer:    opts.Observer,
	}
}

// SearchKey returns the cache key for query.
func SearchKey(query string) string {
	return SearchKeyPrefix + search.NormalizeQuery(query)
}

// AllSites returns hot sites followed by every category list, one entry per URL.
func (d *Directory) AllSites(ctx context.Context) ([]search.Site, error) {
	return cache.GetOrFetch(ctx, d.cache, AllSitesKey, func(context.Context) ([]search.Site, error) {
		return search.Aggregate(d.catalog.HotSites(), d.catalog.CategoryGroups()...), nil
	}, d.allSitesTTL)
}

/*
Search returns the sites matching query.

A blank query returns an empty list without touching the cache, which is what the
page shows when the search box is empty. Any other query is answered from
"search_<normalized query>" or computed over AllSites and stored there.
*/
func (d *Directory) Search(ctx context.Context, query string) ([]search.Site, error) {
	start := time.Now()
	if search.NormalizeQuery(query) == "" {
		d.observe(OutcomeEmpty, start)
		return []search.Site{}, nil
	}

	results, err := cache.GetOrFetch(ctx, d.cache, SearchKey(query), func(ctx context.Context) ([]search.Site, error) {
		all, err := d.AllSites(ctx)
		if err != nil {
			return nil, err
		}
		return search.FilterSitesByQuery(all, query), nil
	}, d.searchTTL)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		d.observe(OutcomeNone, start)
		return []search.Site{}, nil
	}
	d.observe(OutcomeMatch, start)
	return results, nil
}

func (d *Directory) observe(outcome string, start time.Time) {
	if d.observer != nil {
		d.observer.ObserveSearch(outcome, time.Since(start))
	}
}

func (d *Directory) Categories() []search.Category {
	return d.catalog.Categories()
}

func (d *Directory) HotSites() []search.Site {
	return d.catalog.HotSites()
}

// CategorySites returns the list for category id. ok is false for an unknown category.
// A known category without a list yields an empty slice.
func (d *Directory) CategorySites(id int) ([]search.Site, bool) {
	known := false
	for _, c := range d.catalog.Categories() {
		if c.ID == id {
			known = true
			break
		}
	}
	if !known {
		return nil, false
	}
	sites, _ := d.catalog.CategorySites(id)
	if sites == nil {
		sites = []search.Site{}
	}
	return sites, true
}

// TotalSites is the footer count: every category entry, duplicates included.
func (d *Directory) TotalSites() int {
	return d.catalog.Listed()
}

func (d *Directory) Announcements() []catalog.Announcement {
	return d.catalog.Announcements()
}

func (d *Directory) AdImages() []catalog.AdImage {
	return d.catalog.AdImages()
}

// ClearCache drops every memoized list.
func (d *Directory) ClearCache() {
	d.cache.Clear()
}

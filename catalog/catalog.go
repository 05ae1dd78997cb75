// Package catalog holds the static directory dataset.
package catalog

import (
	"maps"
	"slices"

	"github.com/krisalay/simple-nav/search"
)

// Announcement is one banner message. The last announcement in a list is the latest.
type Announcement struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AdImage is one carousel slide.
type AdImage struct {
	ID   int    `json:"id"`
	Src  string `json:"src"`
	Alt  string `json:"alt"`
	Link string `json:"link,omitempty"`
}

// Data is the raw content a Catalog is built from.
type Data struct {
	Categories    []search.Category
	HotSites      []search.Site
	CategorySites map[int][]search.Site
	Announcements []Announcement
	AdImages      []AdImage
}

// Catalog is a read-only view of Data. Accessors return copies.
type Catalog struct {
	data Data
}

// New wraps d. d must not be modified afterwards.
func New(d Data) *Catalog {
	return &Catalog{data: d}
}

// Default returns the built-in dataset.
func Default() *Catalog {
	return New(Data{
		Categories:    categories,
		HotSites:      hotSites,
		CategorySites: categorySites,
		Announcements: announcements,
		AdImages:      adImages,
	})
}

func (c *Catalog) Categories() []search.Category {
	return slices.Clone(c.data.Categories)
}

func (c *Catalog) HotSites() []search.Site {
	return slices.Clone(c.data.HotSites)
}

// CategorySites returns the sites listed under category id.
// ok is false when no list exists for id; a category may exist with no list.
func (c *Catalog) CategorySites(id int) ([]search.Site, bool) {
	sites, ok := c.data.CategorySites[id]
	return slices.Clone(sites), ok
}

// CategoryGroups returns every per-category list in ascending category id order.
func (c *Catalog) CategoryGroups() [][]search.Site {
	ids := slices.Sorted(maps.Keys(c.data.CategorySites))
	groups := make([][]search.Site, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, slices.Clone(c.data.CategorySites[id]))
	}
	return groups
}

// Listed counts every entry of every category list, duplicates included.
func (c *Catalog) Listed() int {
	n := 0
	for _, sites := range c.data.CategorySites {
		n += len(sites)
	}
	return n
}

func (c *Catalog) Announcements() []Announcement {
	return slices.Clone(c.data.Announcements)
}

func (c *Catalog) AdImages() []AdImage {
	return slices.Clone(c.data.AdImages)
}

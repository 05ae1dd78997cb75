// Package search filters and merges the directory's site records.
package search

// Site is one link in the directory. URL identifies the site across lists.
type Site struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Category groups sites for display.
type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Icon      string `json:"icon"`
}

package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeQuery trims and lower-cases a query. The result is what cache keys are built from.
func NormalizeQuery(query string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(query))
}

/*
FilterSitesByQuery returns the sites whose name, description or URL contains query,
ignoring case. Relative order is preserved.

A query that is empty after trimming returns sites itself.
sites is never modified.
*/
func FilterSitesByQuery(sites []Site, query string) []Site {
	q := NormalizeQuery(query)
	if q == "" {
		return sites
	}

	lower := cases.Lower(language.Und)
	matches := make([]Site, 0)
	for _, site := range sites {
		if strings.Contains(lower.String(site.Name), q) ||
			strings.Contains(lower.String(site.Description), q) ||
			strings.Contains(lower.String(site.URL), q) {
			matches = append(matches, site)
		}
	}
	return matches
}

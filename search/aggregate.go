package search

/*
Aggregate concatenates hot with every group and drops repeated URLs.
The first occurrence of a URL wins, so a hot site shadows the same site in a category.
*/
func Aggregate(hot []Site, groups ...[]Site) []Site {
	total := len(hot)
	for _, g := range groups {
		total += len(g)
	}

	seen := make(map[string]struct{}, total)
	out := make([]Site, 0, total)
	add := func(list []Site) {
		for _, site := range list {
			if _, dup := seen[site.URL]; dup {
				continue
			}
			seen[site.URL] = struct{}{}
			out = append(out, site)
		}
	}

	add(hot)
	for _, g := range groups {
		add(g)
	}
	return out
}

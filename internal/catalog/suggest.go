package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestRatio is the edit-distance-to-length ratio above which a name is
// considered too far from the query to suggest.
const maxSuggestRatio = 0.6

// SuggestNames returns up to limit framework names close to query by
// Levenshtein distance, for a "did you mean" hint after a zero-match search.
// Closest first; ties keep dataset order.
func SuggestNames(d Dataset, query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, r := range d.records {
		dist := nameDistance(q, strings.ToLower(r.Name))
		if float64(dist)/float64(len(q)) > maxSuggestRatio {
			continue
		}
		candidates = append(candidates, scored{name: r.Name, dist: dist})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}

// nameDistance scores query against a full name and against each of its
// words, keeping the best. "porters" should land near "Porter's Five Forces"
// even though the full-name distance is large.
func nameDistance(q, name string) int {
	best := levenshtein.ComputeDistance(q, name)
	for _, word := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(q, word); d < best {
			best = d
		}
	}
	return best
}

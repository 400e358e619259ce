package catalog

import "sort"

// Tally is one bar of the category histogram.
type Tally struct {
	Category string
	Count    int
}

// TotalCount returns the number of records in the dataset.
func TotalCount(d Dataset) int { return d.Len() }

// CategoryCount returns the number of distinct categories.
func CategoryCount(d Dataset) int { return len(d.categories) }

// CountByCategory returns the number of records whose category equals label
// exactly. Case-sensitive.
func CountByCategory(d Dataset, label string) int {
	n := 0
	for _, r := range d.records {
		if r.Category == label {
			n++
		}
	}
	return n
}

// CountsPerCategory returns the category histogram ordered by descending
// count, ties broken by first-encountered order in the dataset. The ordering
// feeds the bar chart and is deterministic for a fixed dataset.
func CountsPerCategory(d Dataset) []Tally {
	counts := make(map[string]int, len(d.categories))
	for _, r := range d.records {
		counts[r.Category]++
	}
	out := make([]Tally, 0, len(d.categories))
	for _, c := range d.categories {
		out = append(out, Tally{Category: c, Count: counts[c]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

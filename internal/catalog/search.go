package catalog

import "strings"

// Search returns the records whose name, core function, or typical uses
// contain query as a case-insensitive literal substring. The result preserves
// dataset order; zero matches yields an empty slice, never an error.
//
// Callers branch on empty queries before invoking Search: "no query" and
// "query with zero matches" are different UI states and Search cannot tell
// them apart.
func Search(d Dataset, query string) []Record {
	q := strings.ToLower(query)
	var out []Record
	for _, r := range d.records {
		if matchesQuery(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// matchesQuery checks the three searchable fields with an OR. The query must
// already be lowercased. Plain substring containment keeps metacharacters
// (brackets, dots) literal.
func matchesQuery(r Record, q string) bool {
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.CoreFunction), q) ||
		strings.Contains(strings.ToLower(r.TypicalUses), q)
}

// SelectFeatured returns the records whose name appears in names, preserving
// dataset order rather than list order. Names not present in the dataset are
// silently ignored.
func SelectFeatured(d Dataset, names []string) []Record {
	if len(names) == 0 {
		return nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Record
	for _, r := range d.records {
		if want[r.Name] {
			out = append(out, r)
		}
	}
	return out
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func names(records []Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestSearchMatchesAnyField(t *testing.T) {
	d := NewDataset(testRecords())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name field", "porter", []string{"Porter's Five Forces"}},
		{"core function field", "strength", []string{"SWOT Analysis"}},
		{"typical uses field", "product design", []string{"Design Thinking"}},
		{"case-insensitive", "SWOT", []string{"SWOT Analysis"}},
		{"multiple matches keep dataset order", "analysis", []string{"SWOT Analysis", "Porter's Five Forces"}},
		{"no matches", "blockchain", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, names(Search(d, tc.query)))
		})
	}
}

func TestSearchPreservesDatasetOrder(t *testing.T) {
	d := NewDataset(testRecords())
	got := Search(d, "s") // broad query hitting every record
	require.Equal(t, names(d.Records()), names(got))
}

func TestSearchLiteralMetacharacters(t *testing.T) {
	d := NewDataset([]Record{
		{Name: "Plan [draft]", Category: "X", CoreFunction: "a+b", TypicalUses: "(misc)"},
		{Name: "Other", Category: "X", CoreFunction: "f", TypicalUses: "g"},
	})
	// Queries that would blow up or over-match under regex evaluation must be
	// treated as literal text.
	for _, q := range []string{"[draft", "[draft]", "a+b", "(misc", "(", ")", "*", ".+"} {
		func() {
			defer func() { require.Nil(t, recover(), "query %q panicked", q) }()
			got := Search(d, q)
			for _, r := range got {
				require.Equal(t, "Plan [draft]", r.Name)
			}
		}()
	}
	require.Len(t, Search(d, "a+b"), 1)
	require.Empty(t, Search(d, ".+")) // literal, not match-anything
}

func TestSearchIdempotent(t *testing.T) {
	d := NewDataset(testRecords())
	first := Search(d, "analysis")
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Search(d, "analysis"))
	}
}

func TestSearchConcreteScenario(t *testing.T) {
	d := NewDataset([]Record{
		{Name: "SWOT Analysis", Category: "Strategic Planning Frameworks", CoreFunction: "Identify strengths/weaknesses", TypicalUses: "Strategy sessions"},
		{Name: "Design Thinking", Category: "Innovation", CoreFunction: "Human-centered ideation", TypicalUses: "Product design"},
	})
	require.Equal(t, []string{"SWOT Analysis"}, names(Search(d, "strength")))
	require.Equal(t, []Tally{
		{Category: "Strategic Planning Frameworks", Count: 1},
		{Category: "Innovation", Count: 1},
	}, CountsPerCategory(d))
	require.Equal(t,
		[]string{"SWOT Analysis", "Design Thinking"},
		names(SelectFeatured(d, []string{"Design Thinking", "SWOT Analysis"})))
}

func TestSelectFeatured(t *testing.T) {
	d := NewDataset(testRecords())

	// Dataset order wins over list order; unknown names are ignored.
	got := SelectFeatured(d, []string{"Lean Management", "Ansoff Matrix", "SWOT Analysis"})
	require.Equal(t, []string{"SWOT Analysis", "Lean Management"}, names(got))

	require.Empty(t, SelectFeatured(d, nil))
	require.Empty(t, SelectFeatured(d, []string{"Nope"}))
}

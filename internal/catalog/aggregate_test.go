package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalCount(t *testing.T) {
	require.Equal(t, 0, TotalCount(NewDataset(nil)))
	require.Equal(t, 4, TotalCount(NewDataset(testRecords())))
}

func TestCategoryCount(t *testing.T) {
	require.Equal(t, 0, CategoryCount(NewDataset(nil)))
	require.Equal(t, 3, CategoryCount(NewDataset(testRecords())))
}

func TestCountByCategory(t *testing.T) {
	d := NewDataset(testRecords())
	require.Equal(t, 2, CountByCategory(d, "Strategic Planning Frameworks"))
	require.Equal(t, 1, CountByCategory(d, "Innovation"))
	require.Equal(t, 0, CountByCategory(d, "innovation")) // case-sensitive
	require.Equal(t, 0, CountByCategory(d, "No Such Category"))
}

func TestCountsPerCategoryOrdering(t *testing.T) {
	d := NewDataset(testRecords())
	got := CountsPerCategory(d)
	require.Equal(t, []Tally{
		{Category: "Strategic Planning Frameworks", Count: 2},
		{Category: "Innovation", Count: 1},
		{Category: "Operational Excellence", Count: 1},
	}, got)
}

func TestCountsPerCategoryTiesKeepInsertionOrder(t *testing.T) {
	d := NewDataset([]Record{
		{Name: "SWOT Analysis", Category: "Strategic Planning Frameworks"},
		{Name: "Design Thinking", Category: "Innovation"},
	})
	got := CountsPerCategory(d)
	require.Equal(t, []Tally{
		{Category: "Strategic Planning Frameworks", Count: 1},
		{Category: "Innovation", Count: 1},
	}, got)
}

func TestCountsPerCategoryDeterministic(t *testing.T) {
	d := NewDataset(testRecords())
	first := CountsPerCategory(d)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, CountsPerCategory(d))
	}
}

func TestCountsPerCategoryEmpty(t *testing.T) {
	require.Empty(t, CountsPerCategory(NewDataset(nil)))
}

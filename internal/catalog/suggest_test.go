package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestNamesTypo(t *testing.T) {
	d := NewDataset(testRecords())
	got := SuggestNames(d, "swott", 3)
	require.NotEmpty(t, got)
	require.Equal(t, "SWOT Analysis", got[0])
}

func TestSuggestNamesWordLevel(t *testing.T) {
	d := NewDataset(testRecords())
	got := SuggestNames(d, "porters", 3)
	require.Contains(t, got, "Porter's Five Forces")
}

func TestSuggestNamesNothingClose(t *testing.T) {
	d := NewDataset(testRecords())
	require.Empty(t, SuggestNames(d, "zzzzzzzzzzzz", 3))
}

func TestSuggestNamesLimit(t *testing.T) {
	d := NewDataset(testRecords())
	got := SuggestNames(d, "an", 1)
	require.LessOrEqual(t, len(got), 1)
}

func TestSuggestNamesEmptyQuery(t *testing.T) {
	d := NewDataset(testRecords())
	require.Empty(t, SuggestNames(d, "", 3))
	require.Empty(t, SuggestNames(d, "   ", 3))
	require.Empty(t, SuggestNames(d, "swot", 0))
}

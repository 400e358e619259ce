package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{Name: "SWOT Analysis", Category: "Strategic Planning Frameworks", CoreFunction: "Identify strengths/weaknesses", TypicalUses: "Strategy sessions"},
		{Name: "Porter's Five Forces", Category: "Strategic Planning Frameworks", CoreFunction: "Assess industry competitiveness", TypicalUses: "Market entry analysis"},
		{Name: "Design Thinking", Category: "Innovation", CoreFunction: "Human-centered ideation", TypicalUses: "Product design"},
		{Name: "Lean Management", Category: "Operational Excellence", CoreFunction: "Eliminate waste in processes", TypicalUses: "Manufacturing, operations reviews"},
	}
}

func TestNewDatasetDerivesCategories(t *testing.T) {
	d := NewDataset(testRecords())
	require.Equal(t, []string{"Strategic Planning Frameworks", "Innovation", "Operational Excellence"}, d.Categories())
}

func TestNewDatasetEmpty(t *testing.T) {
	d := NewDataset(nil)
	require.Zero(t, d.Len())
	require.Empty(t, d.Categories())
}

func TestByName(t *testing.T) {
	d := NewDataset(testRecords())
	r, ok := d.ByName("Design Thinking")
	require.True(t, ok)
	require.Equal(t, "Innovation", r.Category)

	_, ok = d.ByName("design thinking") // exact match only
	require.False(t, ok)
}

type stubProvider struct {
	records []Record
	err     error
}

func (p stubProvider) AllFrameworks(context.Context) ([]Record, error) {
	return p.records, p.err
}

func TestLoad(t *testing.T) {
	d, err := Load(context.Background(), stubProvider{records: testRecords()})
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())
}

func TestLoadPropagatesError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Load(context.Background(), stubProvider{err: boom})
	require.ErrorIs(t, err, boom)
}

package catalog

import "context"

// Record is one catalog entry describing a named business-strategy framework.
// Name is unique within a dataset and doubles as the display identity and the
// search/featured key.
type Record struct {
	ID           string
	Name         string
	Category     string
	CoreFunction string
	TypicalUses  string
	Related      []string
}

// Dataset is a read-only snapshot of the framework table. The category set is
// derived from the records, in first-encountered order, so every record's
// category is guaranteed to be a member.
type Dataset struct {
	records    []Record
	categories []string
}

// Provider supplies the framework table. Implementations must return records
// in a stable order for a fixed underlying source.
type Provider interface {
	AllFrameworks(ctx context.Context) ([]Record, error)
}

// NewDataset builds a snapshot from records, deriving the category set.
func NewDataset(records []Record) Dataset {
	d := Dataset{records: records}
	seen := make(map[string]bool, 8)
	for _, r := range records {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		d.categories = append(d.categories, r.Category)
	}
	return d
}

// Load fetches the framework table from p and wraps it in a snapshot.
func Load(ctx context.Context, p Provider) (Dataset, error) {
	records, err := p.AllFrameworks(ctx)
	if err != nil {
		return Dataset{}, err
	}
	return NewDataset(records), nil
}

// Records returns the underlying rows in table order.
func (d Dataset) Records() []Record { return d.records }

// Categories returns the distinct category labels in first-encountered order.
func (d Dataset) Categories() []string { return d.categories }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// ByName looks up a record by exact name.
func (d Dataset) ByName(name string) (Record, bool) {
	for _, r := range d.records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

package repository

// Framework is one row of the frameworks table. Related holds the names of
// complementary frameworks, denormalized from framework_relations.
type Framework struct {
	ID           string
	Name         string
	Category     string
	CoreFunction string
	TypicalUses  string
	SortOrder    int
	Related      []string
}

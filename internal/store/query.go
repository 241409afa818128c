package store

// Query selects rows from a table.
type Query struct {
	// Filters are column equality conditions. Keys that are not columns of
	// the table are ignored.
	Filters map[string]string
	// Skip is the number of leading rows to drop. 0 means none.
	Skip int
	// Limit caps the number of rows. 0 means unlimited.
	Limit int
}

// Normalize clamps negative offsets and limits to zero.
func (q Query) Normalize() Query {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit < 0 {
		q.Limit = 0
	}
	return q
}

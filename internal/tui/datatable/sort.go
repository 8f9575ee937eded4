package datatable

import "slices"

// SortDirection is the order applied to the sort key.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortConfig is the active sort. Key is the DataIndex of a sortable column.
type SortConfig struct {
	Key       string
	Direction SortDirection
}

// nextSort returns the sort state after a header click on a sortable column with the
// given data index. The cycle is asc -> desc -> asc; there is no unsorted step.
func nextSort(current *SortConfig, dataIndex string) SortConfig {
	if current != nil && current.Key == dataIndex && current.Direction == Ascending {
		return SortConfig{Key: dataIndex, Direction: Descending}
	}
	return SortConfig{Key: dataIndex, Direction: Ascending}
}

// sortRows returns rows ordered by cfg. The input slice is not modified. Rows with
// equal keys keep their input order in both directions.
func sortRows[T Identifiable](rows []T, columns []Column[T], cfg *SortConfig) []T {
	out := slices.Clone(rows)
	if cfg == nil {
		return out
	}

	col, ok := columnForKey(columns, cfg.Key)
	if !ok {
		return out
	}

	slices.SortStableFunc(out, func(a, b T) int {
		c := Compare(col.valueOf(a), col.valueOf(b))
		if cfg.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

// columnForKey finds the first sortable column reading dataIndex.
func columnForKey[T Identifiable](columns []Column[T], dataIndex string) (Column[T], bool) {
	for _, c := range columns {
		if c.Sortable && c.DataIndex == dataIndex {
			return c, true
		}
	}
	return Column[T]{}, false
}

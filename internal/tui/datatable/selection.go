package datatable

import (
	"fmt"
	"slices"
	"strings"
)

// SelectionMode governs how many rows may be selected at once.
type SelectionMode int

const (
	SelectNone SelectionMode = iota
	SelectSingle
	SelectMultiple
)

func (m SelectionMode) String() string {
	switch m {
	case SelectSingle:
		return "single"
	case SelectMultiple:
		return "multiple"
	default:
		return "none"
	}
}

// ParseSelectionMode parses "none", "single" or "multiple".
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SelectNone, nil
	case "single":
		return SelectSingle, nil
	case "multiple", "multi":
		return SelectMultiple, nil
	default:
		return SelectNone, fmt.Errorf("invalid selection mode %q", s)
	}
}

// toggleSelection returns the selection after toggling row under mode. The input
// slice is never modified.
func toggleSelection[T Identifiable](selected []T, row T, mode SelectionMode) []T {
	id := row.RowID()
	if idx := indexOf(selected, id); idx >= 0 {
		return slices.Delete(slices.Clone(selected), idx, idx+1)
	}
	if mode == SelectMultiple {
		return append(slices.Clone(selected), row)
	}
	return []T{row}
}

func indexOf[T Identifiable](rows []T, id ID) int {
	return slices.IndexFunc(rows, func(r T) bool { return r.RowID() == id })
}

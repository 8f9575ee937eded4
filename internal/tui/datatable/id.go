// Package datatable provides a sortable, selectable table component for bubbletea programs.
//
// The table is generic over the row type. Rows only need to expose a stable identity;
// everything else is read through column descriptors.
package datatable

import "strconv"

// ID identifies a row. Numeric and string ids never compare equal to each other.
type ID struct {
	num     int64
	str     string
	numeric bool
}

// IntID returns a numeric row id.
func IntID(n int64) ID {
	return ID{num: n, numeric: true}
}

// StringID returns a string row id.
func StringID(s string) ID {
	return ID{str: s}
}

// IsNumeric reports whether the id was built from a number.
func (id ID) IsNumeric() bool {
	return id.numeric
}

func (id ID) String() string {
	if id.numeric {
		return strconv.FormatInt(id.num, 10)
	}
	return id.str
}

// Identifiable is the capability every row type must provide.
type Identifiable interface {
	RowID() ID
}

package datatable

import (
	"fmt"
	"reflect"
	"strings"
)

// Column describes how to render and optionally sort one field of a row.
type Column[T Identifiable] struct {
	Key       string // Unique column key
	Title     string // Header text
	DataIndex string // Field of T to read
	Sortable  bool

	// Value reads the field from a row. When nil the field named by DataIndex is
	// resolved on the row itself.
	Value func(row T) any
}

// valueOf returns the raw value displayed and sorted for the column.
func (c Column[T]) valueOf(row T) any {
	if c.Value != nil {
		return c.Value(row)
	}
	return FieldValue(row, c.DataIndex)
}

// text returns the cell text for the column.
func (c Column[T]) text(row T) string {
	v := c.valueOf(row)
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// FieldValue resolves name on v. Structs match exported fields by name (case-insensitive)
// or by their json/db tag; maps with string keys match by key. Pointers are followed.
// It returns nil when nothing matches.
func FieldValue(v any, name string) any {
	if name == "" {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return structField(rv, name)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	default:
		return nil
	}
}

func structField(rv reflect.Value, name string) any {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if strings.EqualFold(f.Name, name) || tagName(f, "json") == name || tagName(f, "db") == name {
			return rv.Field(i).Interface()
		}
	}
	return nil
}

func tagName(f reflect.StructField, tag string) string {
	v, ok := f.Tag.Lookup(tag)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(v, ",")
	return name
}

package datatable

import "testing"

type tagged struct {
	FullName string `json:"full_name,omitempty"`
	Score    int    `db:"score"`
	hidden   string
}

func TestFieldValue(t *testing.T) {
	row := tagged{FullName: "Ann", Score: 7, hidden: "x"}

	tests := []struct {
		name  string
		value any
		field string
		want  any
	}{
		{name: "field name", value: row, field: "FullName", want: "Ann"},
		{name: "case insensitive", value: row, field: "fullname", want: "Ann"},
		{name: "json tag", value: row, field: "full_name", want: "Ann"},
		{name: "db tag", value: row, field: "score", want: 7},
		{name: "pointer", value: &row, field: "Score", want: 7},
		{name: "unexported", value: row, field: "hidden", want: nil},
		{name: "missing", value: row, field: "nope", want: nil},
		{name: "map", value: map[string]any{"age": 30}, field: "age", want: 30},
		{name: "map missing", value: map[string]any{"age": 30}, field: "name", want: nil},
		{name: "nil pointer", value: (*tagged)(nil), field: "Score", want: nil},
		{name: "scalar", value: 5, field: "x", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FieldValue(tt.value, tt.field); got != tt.want {
				t.Errorf("FieldValue(%v, %q) = %v, want %v", tt.value, tt.field, got, tt.want)
			}
		})
	}
}

func TestColumnValueOverride(t *testing.T) {
	col := Column[user]{
		Key:       "initial",
		DataIndex: "initial",
		Value:     func(u user) any { return u.Name[:1] },
	}
	if got := col.text(user{Name: "Bob"}); got != "B" {
		t.Errorf("text = %q, want %q", got, "B")
	}
}

func TestColumnTextNil(t *testing.T) {
	col := Column[user]{DataIndex: "missing"}
	if got := col.text(user{Name: "Bob"}); got != "" {
		t.Errorf("text = %q, want empty", got)
	}
}

func TestID(t *testing.T) {
	if IntID(1) == StringID("1") {
		t.Error("numeric and string ids must differ")
	}
	if IntID(1).String() != "1" || StringID("a").String() != "a" {
		t.Error("unexpected String()")
	}
	if !IntID(1).IsNumeric() || StringID("1").IsNumeric() {
		t.Error("unexpected IsNumeric()")
	}
}

func TestParseSelectionMode(t *testing.T) {
	tests := map[string]SelectionMode{
		"":         SelectNone,
		"none":     SelectNone,
		"Single":   SelectSingle,
		"multiple": SelectMultiple,
	}
	for in, want := range tests {
		got, err := ParseSelectionMode(in)
		if err != nil {
			t.Fatalf("ParseSelectionMode(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSelectionMode(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseSelectionMode("all"); err == nil {
		t.Error("expected error for invalid mode")
	}
}

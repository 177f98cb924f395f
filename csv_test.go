package wealthsheet

import (
	"reflect"
	"testing"
)

func TestSplitRows(t *testing.T) {
	raw := "Name,Value,Notes\n" +
		"\"Cottage, lakeside\",450000,\n" +
		"Car,\"22,000\",\"said \"\"as is\"\"\"\n" +
		"\n" +
		"Boat,9000,"

	got := SplitRows(raw)
	want := [][]string{
		{"Name", "Value", "Notes"},
		{"Cottage, lakeside", "450000", ""},
		{"Car", "22,000", `said "as is"`},
		{},
		{"Boat", "9000", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitRows() = %#v, want %#v", got, want)
	}
}

func TestSplitRowsKeepsPhysicalIndices(t *testing.T) {
	rows := SplitRows("a\n\n\nb")
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4 (blank lines preserved)", len(rows))
	}
	if rows[3][0] != "b" {
		t.Errorf("row 3 = %v, want [b]", rows[3])
	}
}

func TestSplitRowsRagged(t *testing.T) {
	rows := SplitRows("a,b,c\nd\ne,f,g,h,i")
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if len(rows[1]) != 1 || len(rows[2]) != 5 {
		t.Errorf("ragged widths not preserved: %v", rows)
	}
}

func TestSplitRowsCRLF(t *testing.T) {
	rows := SplitRows("a,b\r\nc,d\r\n")
	want := [][]string{{"a", "b"}, {"c", "d"}, {}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("SplitRows() = %#v, want %#v", rows, want)
	}
}

func TestIsBlankRow(t *testing.T) {
	if !isBlankRow([]string{"", "  ", "\t"}) {
		t.Error("all-whitespace row should be blank")
	}
	if !isBlankRow([]string{}) {
		t.Error("empty row should be blank")
	}
	if isBlankRow([]string{"", "x"}) {
		t.Error("row with content should not be blank")
	}
}

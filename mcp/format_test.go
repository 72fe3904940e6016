package mcp

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTable(t *testing.T) {
	got := formatTable([]string{"id", "name"}, [][]any{{int64(1), "a"}, {int64(2), []byte("b")}})
	want := "id | name\n---------\n1 | a\n2 | b"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSeparatorWidth(t *testing.T) {
	tests := []struct {
		columns []string
		want    int
	}{
		{[]string{"id", "name"}, 9},
		{[]string{"n"}, 1},
		{[]string{"Field", "Type", "Null", "Key", "Default", "Extra"}, 43},
		{nil, 0},
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.columns, ","), func(t *testing.T) {
			if got := separatorWidth(tc.columns); got != tc.want {
				t.Errorf("separatorWidth(%v) = %d, want %d", tc.columns, got, tc.want)
			}
		})
	}
}

func TestFormatTableIgnoresDataWidth(t *testing.T) {
	got := formatTable([]string{"a"}, [][]any{{"a much longer value"}})
	lines := strings.Split(got, "\n")
	if lines[1] != "-" {
		t.Errorf("separator = %q, want a single dash", lines[1])
	}
}

func TestFormatList(t *testing.T) {
	got := formatList("shop tables:", [][]any{{[]byte("orders")}, {"users"}})
	want := "shop tables:\norders\nusers"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := formatList(MsgDatabasesHeader, [][]any{}); got != MsgDatabasesHeader {
		t.Errorf("empty list: got %q", got)
	}
}

func TestFormatCSV(t *testing.T) {
	got := formatCSV([]string{"id", "name"}, [][]any{{int64(1), "a"}, {int64(2), nil}})
	want := "id,name\n1,a\n2,NULL"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "NULL"},
		{"bytes", []byte("hello"), "hello"},
		{"binary", []byte{0xff, 0xfe, 0x00}, "<binary data: 3 bytes>"},
		{"string", "a|b", "a|b"},
		{"int", int64(42), "42"},
		{"float", 3.5, "3.5"},
		{"bool", true, "true"},
		{"time", ts, "2024-03-05 14:30:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatValue(tc.in); got != tc.want {
				t.Errorf("formatValue(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package mcp

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// formatTable renders a pipe-separated header, a dash rule and one line per
// row. The rule width only accounts for header names.
func formatTable(columns []string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, strings.Join(columns, " | "))
	lines = append(lines, strings.Repeat("-", separatorWidth(columns)))

	for _, row := range rows {
		values := make([]string, len(row))
		for i, v := range row {
			values[i] = formatValue(v)
		}
		lines = append(lines, strings.Join(values, " | "))
	}

	return strings.Join(lines, "\n")
}

func separatorWidth(columns []string) int {
	if len(columns) == 0 {
		return 0
	}
	width := 3 * (len(columns) - 1)
	for _, name := range columns {
		width += len(name)
	}
	return width
}

// formatList renders a header followed by the first column of every row.
func formatList(header string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, header)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		lines = append(lines, formatValue(row[0]))
	}
	return strings.Join(lines, "\n")
}

// formatCSV renders comma-joined lines without quoting.
func formatCSV(columns []string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))
	for _, row := range rows {
		values := make([]string, len(row))
		for i, v := range row {
			values[i] = formatValue(v)
		}
		lines = append(lines, strings.Join(values, ","))
	}
	return strings.Join(lines, "\n")
}

// formatValue converts scanned database values to their textual form
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case []byte:
		if utf8.Valid(v) {
			return string(v)
		}
		return fmt.Sprintf("<binary data: %d bytes>", len(v))
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(v)
	}
}

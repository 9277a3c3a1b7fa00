package cli

import "strings"

// Table is a simple fixed-column table formatter for the violation report
// validate prints (§6 `validate`). Column widths size to the widest cell in
// each column; there is no wrapping or terminal-width awareness here, since
// the only table this CLI renders is a short Slot/Actual Lc/Required Lc
// report that never needs either.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
	} else {
		t.rows = append(t.rows, row)
	}
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := t.columnWidths()

	var result strings.Builder
	t.writeRow(&result, t.headers, colWidths)
	t.writeSeparator(&result, colWidths)
	for _, row := range t.rows {
		t.writeRow(&result, row, colWidths)
	}
	return result.String()
}

// columnWidths returns the width of each column: the widest of its header
// and every cell in that column.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func (t *Table) writeRow(result *strings.Builder, cells []string, colWidths []int) {
	parts := make([]string, len(t.headers))
	for i := range t.headers {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = padRight(cell, colWidths[i])
	}
	result.WriteString(strings.Join(parts, strings.Repeat(" ", t.padding)))
	result.WriteString("\n")
}

func (t *Table) writeSeparator(result *strings.Builder, colWidths []int) {
	parts := make([]string, len(t.headers))
	for i, w := range colWidths {
		parts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(parts, strings.Repeat(" ", t.padding)))
	result.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

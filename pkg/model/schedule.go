package model

// MeetingDate is a date the class meets on, with its display label.
type MeetingDate struct {
	Date  Date
	Label string
}

// Row is a single line of the syllabus: label, topic and any blank columns.
type Row struct {
	Date  Date
	Cells []string
}

type Table struct {
	Rows []*Row
}

/* NewTable creates an empty table with room for n rows. */
func NewTable(n int) *Table {
	return &Table{Rows: make([]*Row, 0, n)}
}

// Columns returns the cell count of the first row, or 0 for an empty table.
func (t *Table) Columns() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Cells returns the raw cell grid.
func (t *Table) Cells() [][]string {
	cells := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells[i] = r.Cells
	}
	return cells
}

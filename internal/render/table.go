package render

import "github.com/rhyrak/go-syllabus/pkg/model"

// BuildTable pairs dates with topics position by position and appends
// extraColumns blank cells to every row. The row count is the shorter of
// the two lists, so surplus topics are dropped here.
func BuildTable(dates []model.MeetingDate, topics []string, extraColumns int) *model.Table {
	if extraColumns < 0 {
		extraColumns = 0
	}
	n := min(len(dates), len(topics))
	table := model.NewTable(n)
	for i := 0; i < n; i++ {
		cells := make([]string, 2+extraColumns)
		cells[0] = dates[i].Label
		cells[1] = topics[i]
		table.Rows = append(table.Rows, &model.Row{Date: dates[i].Date, Cells: cells})
	}
	return table
}

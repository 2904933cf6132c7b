package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTableColumns(t *testing.T) {
	t.Parallel()
	table := NewTable(2)
	assert.Equal(t, 0, table.Columns())
	assert.Empty(t, table.Cells())

	table.Rows = append(table.Rows, &Row{Date: Date{2024, time.January, 1}, Cells: []string{"01 Jan", "Intro", ""}})
	assert.Equal(t, 3, table.Columns())
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, [][]string{{"01 Jan", "Intro", ""}}, table.Cells())
}

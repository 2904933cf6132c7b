package render

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/pkg/model"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the syllabus in xlsx output.
const SheetName = "Syllabus"

func renderXLSX(table *model.Table) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", errors.Wrap(err, "failed to name worksheet")
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", errors.Wrapf(err, "row %d", i+1)
		}
		values := make([]interface{}, len(row.Cells))
		for j, v := range row.Cells {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return "", errors.Wrapf(err, "failed to write row %d", i+1)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", errors.Wrap(err, "failed to write workbook")
	}
	return buf.String(), nil
}

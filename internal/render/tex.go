package render

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

func renderTeX(table *model.Table) (string, error) {
	if table.Len() == 0 {
		return "", errors.Wrapf(ErrEmptyTable, "%s output", TeX)
	}
	var sb strings.Builder
	sb.WriteString(`\begin{tabular}{` + strings.Repeat("l", table.Columns()) + "}\n")
	for _, row := range table.Rows {
		sb.WriteString(strings.Join(row.Cells, " & "))
		sb.WriteString("\\\\\n")
	}
	sb.WriteString("\\end{tabular}\n")
	return sb.String(), nil
}

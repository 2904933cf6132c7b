package render

import (
	"html"
	"strings"

	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

func renderHTML(table *model.Table, opts Options) (string, error) {
	if table.Len() == 0 {
		return "", errors.Wrapf(ErrEmptyTable, "%s output", HTML)
	}
	var sb strings.Builder
	sb.WriteString("<table>\n  <thead>\n    <tr>\n")
	sb.WriteString(strings.Repeat("      <th></th>\n", table.Columns()))
	sb.WriteString("    </tr>\n  </thead>\n  <tbody>\n")
	for _, row := range table.Rows {
		sb.WriteString("    <tr>\n")
		for _, cell := range row.Cells {
			if opts.Escape {
				cell = html.EscapeString(cell)
			}
			sb.WriteString("      <td>" + cell + "</td>\n")
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </tbody>\n</table>")
	return sb.String(), nil
}

package render

import (
	"github.com/rhyrak/go-syllabus/internal/csvio"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

func renderCSV(table *model.Table, opts Options) (string, error) {
	if opts.Escape {
		return csvio.FormatQuoted(table.Cells())
	}
	return csvio.FormatPlain(table.Cells()), nil
}

package render

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrEmptyTable is returned by renderers that need a first row to size
	// their columns.
	ErrEmptyTable = errors.New("table has no rows")
)

// Format selects an output syntax.
type Format int

const (
	CSV Format = iota
	TeX
	HTML
	ICS
	XLSX
)

var formatNames = [...]string{
	CSV:  "csv",
	TeX:  "tex",
	HTML: "html",
	ICS:  "ics",
	XLSX: "xlsx",
}

// ParseFormat looks up a format by its exact, case-sensitive name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Names lists the accepted format names.
func Names() []string {
	return formatNames[:]
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Textual reports whether the rendered output is line-oriented text that
// should end with a newline when printed.
func (f Format) Textual() bool {
	return f == CSV || f == TeX || f == HTML
}

// Options tweaks rendering.
type Options struct {
	// Escape quotes csv cells and escapes html cells.
	Escape bool
	// Now stamps generated calendar events. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// RenderString renders table in format f. Binary formats are returned as
// raw bytes in the string.
func RenderString(table *model.Table, f Format, opts Options) (string, error) {
	switch f {
	case CSV:
		return renderCSV(table, opts)
	case TeX:
		return renderTeX(table)
	case HTML:
		return renderHTML(table, opts)
	case ICS:
		return renderICS(table, opts)
	case XLSX:
		return renderXLSX(table)
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%d", int(f))
}

// Render writes the rendered table to w. Text formats get a trailing newline.
func Render(w io.Writer, table *model.Table, f Format, opts Options) error {
	out, err := RenderString(table, f, opts)
	if err != nil {
		return err
	}
	if f.Textual() {
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return errors.Wrapf(err, "failed to write %s output", f)
}

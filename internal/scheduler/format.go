package scheduler

import (
	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

// Formatter renders a meeting date label.
type Formatter interface {
	Format(d model.Date) (string, error)
}

// DateFormatter formats dates with a strftime-style pattern such as "%d %b".
// The pattern is compiled on first use.
type DateFormatter struct {
	pattern  string
	compiled *strftime.Strftime
}

func NewDateFormatter(pattern string) *DateFormatter {
	return &DateFormatter{pattern: pattern}
}

func (f *DateFormatter) Format(d model.Date) (string, error) {
	if f.compiled == nil {
		compiled, err := strftime.New(f.pattern)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidPattern, "%q (%v)", f.pattern, err)
		}
		f.compiled = compiled
	}
	return f.compiled.FormatString(d.Time()), nil
}

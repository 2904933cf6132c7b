package scheduler

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

const isoLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(text string) (model.Date, error) {
	t, err := time.Parse(isoLayout, text)
	if err != nil {
		return model.Date{}, errors.Wrapf(ErrInvalidDate, "%q", text)
	}
	return model.DateOf(t), nil
}

// ParseMeetingDays converts a day code such as "MWF" or "TR" into a WeekdaySet.
// Unknown characters are skipped and returned in input order so the caller
// can warn about them.
func ParseMeetingDays(code string) (model.WeekdaySet, []rune) {
	var days model.WeekdaySet
	var invalid []rune
	for _, c := range code {
		i, ok := dayIndex(c)
		if !ok {
			invalid = append(invalid, c)
			continue
		}
		days = days.With(i)
	}
	return days, invalid
}

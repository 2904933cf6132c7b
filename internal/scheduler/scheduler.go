package scheduler

import (
	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

// EnumerateDates walks start..end inclusive and returns every date that falls
// on one of days and is not a holiday, labelled by f.
// An inverted range yields no dates.
func EnumerateDates(start, end model.Date, days model.WeekdaySet, holidays model.HolidaySet, f Formatter) ([]model.MeetingDate, error) {
	var dates []model.MeetingDate
	for date := start; !date.After(end); date = date.AddDay() {
		if !days.Has(date.WeekdayIndex()) || holidays.Contains(date) {
			continue
		}
		label, err := f.Format(date)
		if err != nil {
			return nil, errors.Wrapf(err, "format %s", date)
		}
		dates = append(dates, model.MeetingDate{Date: date, Label: label})
	}
	return dates, nil
}

package scheduler

import (
	"fmt"

	"github.com/rhyrak/go-syllabus/pkg/model"
)

// Validate checks schedule inputs for settings that have no effect on the
// generated dates. It never fails the run; the message lists every finding.
func Validate(start, end model.Date, days model.WeekdaySet, holidays model.HolidaySet) (bool, string) {
	var valid bool = true
	var msg string = ""

	if days.Len() == 0 {
		valid = false
		msg += "No valid meeting days, the schedule will be empty\n"
	}
	if start.After(end) {
		valid = false
		msg += fmt.Sprintf("Start date %s is after end date %s, the schedule will be empty\n", start, end)
	}

	for _, h := range holidays.Sorted() {
		if h.Before(start) || h.After(end) {
			valid = false
			msg += fmt.Sprintf("Holiday %s is outside %s..%s\n", h, start, end)
			continue
		}
		if !days.Has(h.WeekdayIndex()) {
			valid = false
			msg += fmt.Sprintf("Holiday %s is not a meeting day\n", h)
		}
	}

	return valid, msg
}

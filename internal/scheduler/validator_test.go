package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rhyrak/go-syllabus/pkg/model"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	mwf, _ := ParseMeetingDays("MWF")

	valid, msg := Validate(date(t, "2024-01-01"), date(t, "2024-05-01"), mwf, model.HolidaySet{})
	assert.True(t, valid)
	assert.Empty(t, msg)

	holidays := model.HolidaySet{}
	holidays.Add(date(t, "2024-01-03"))
	holidays.Add(date(t, "2024-01-02"))
	holidays.Add(date(t, "2024-06-01"))
	valid, msg = Validate(date(t, "2024-01-01"), date(t, "2024-05-01"), mwf, holidays)
	assert.False(t, valid)
	assert.Contains(t, msg, "Holiday 2024-01-02 is not a meeting day")
	assert.Contains(t, msg, "Holiday 2024-06-01 is outside 2024-01-01..2024-05-01")
	assert.NotContains(t, msg, "2024-01-03")

	valid, msg = Validate(date(t, "2024-02-01"), date(t, "2024-01-01"), 0, model.HolidaySet{})
	assert.False(t, valid)
	assert.Contains(t, msg, "No valid meeting days")
	assert.Contains(t, msg, "is after end date")
}

package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/go-syllabus/pkg/model"
)

type recordingFormatter struct {
	seen []model.Date
}

func (f *recordingFormatter) Format(d model.Date) (string, error) {
	f.seen = append(f.seen, d)
	return d.String(), nil
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func labels(dates []model.MeetingDate) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Label
	}
	return out
}

func TestEnumerateDatesFirstWeek(t *testing.T) {
	t.Parallel()
	days, _ := ParseMeetingDays("MW")
	dates, err := EnumerateDates(date(t, "2024-01-01"), date(t, "2024-01-07"), days, model.HolidaySet{}, NewDateFormatter("%Y-%m-%d"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-03"}, labels(dates))
}

func TestEnumerateDatesCountMatchesWeekdays(t *testing.T) {
	t.Parallel()
	ranges := [][2]string{
		{"2024-01-01", "2024-01-01"},
		{"2024-01-01", "2024-05-31"},
		{"2023-12-20", "2024-03-05"},
		{"2024-08-26", "2024-12-13"},
	}
	codes := []string{"M", "MWF", "TR", "MTWRFSU", "SU"}

	for _, r := range ranges {
		start, end := date(t, r[0]), date(t, r[1])
		for _, code := range codes {
			days, _ := ParseMeetingDays(code)

			want := 0
			for ts := start.Time(); !ts.After(end.Time()); ts = ts.AddDate(0, 0, 1) {
				idx := (int(ts.Weekday()) + 6) % 7
				if days.Has(idx) {
					want++
				}
			}

			dates, err := EnumerateDates(start, end, days, model.HolidaySet{}, &recordingFormatter{})
			require.NoError(t, err)
			assert.Len(t, dates, want, "%s..%s %s", r[0], r[1], code)

			for i := 1; i < len(dates); i++ {
				assert.True(t, dates[i-1].Date.Before(dates[i].Date), "dates must be strictly ascending")
			}
		}
	}
}

func TestEnumerateDatesHolidays(t *testing.T) {
	t.Parallel()
	days, _ := ParseMeetingDays("MWF")
	holidays := model.HolidaySet{}
	holidays.Add(date(t, "2024-01-03")) // Wednesday in range
	holidays.Add(date(t, "2024-01-02")) // Tuesday, not a meeting day
	holidays.Add(date(t, "2024-02-05")) // out of range

	dates, err := EnumerateDates(date(t, "2024-01-01"), date(t, "2024-01-12"), days, holidays, &recordingFormatter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-05", "2024-01-08", "2024-01-10", "2024-01-12"}, labels(dates))
}

func TestEnumerateDatesInvertedRange(t *testing.T) {
	t.Parallel()
	days, _ := ParseMeetingDays("MTWRFSU")
	dates, err := EnumerateDates(date(t, "2024-02-01"), date(t, "2024-01-01"), days, model.HolidaySet{}, &recordingFormatter{})
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestEnumerateDatesFormatsIncludedOnly(t *testing.T) {
	t.Parallel()
	days, _ := ParseMeetingDays("F")
	f := &recordingFormatter{}
	_, err := EnumerateDates(date(t, "2024-01-01"), date(t, "2024-01-14"), days, model.HolidaySet{}, f)
	require.NoError(t, err)
	assert.Equal(t, []model.Date{date(t, "2024-01-05"), date(t, "2024-01-12")}, f.seen)
}

func TestEnumerateDatesInvalidPattern(t *testing.T) {
	t.Parallel()
	days, _ := ParseMeetingDays("M")
	_, err := EnumerateDates(date(t, "2024-01-01"), date(t, "2024-01-07"), days, model.HolidaySet{}, NewDateFormatter("%Q"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	// Nothing to format, nothing to fail on.
	dates, err := EnumerateDates(date(t, "2024-01-02"), date(t, "2024-01-07"), days, model.HolidaySet{}, NewDateFormatter("%Q"))
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestEnumerateDatesCrossesYear(t *testing.T) {
	t.Parallel()
	days, _ := ParseMeetingDays("T")
	dates, err := EnumerateDates(date(t, "2024-12-30"), date(t, "2025-01-08"), days, model.HolidaySet{}, NewDateFormatter("%d %b %Y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"31 Dec 2024", "07 Jan 2025"}, labels(dates))
	assert.Equal(t, time.Tuesday, dates[0].Date.Time().Weekday())
}

package render

import (
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

const productID = "-//rhyrak//go-syllabus//EN"

// eventNamespace scopes event UIDs so that regenerating a syllabus keeps
// the same UID for the same meeting date.
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/rhyrak/go-syllabus"))

// renderICS emits one all-day event per row. The topic is the summary, or
// the date label when no topic was given; filled extra cells become the
// description.
func renderICS(table *model.Table, opts Options) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	stamp := opts.now().UTC()
	for _, row := range table.Rows {
		event := cal.AddEvent(eventUID(row.Date))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(row.Date.Time())
		event.SetAllDayEndAt(row.Date.AddDay().Time())

		summary := row.Cells[1]
		if summary == "" {
			summary = row.Cells[0]
		}
		event.SetSummary(summary)

		var notes []string
		for _, cell := range row.Cells[2:] {
			if cell != "" {
				notes = append(notes, cell)
			}
		}
		if len(notes) > 0 {
			event.SetDescription(strings.Join(notes, "\n"))
		}
	}
	return cal.Serialize(), nil
}

func eventUID(d model.Date) string {
	return uuid.NewSHA1(eventNamespace, []byte(d.String())).String()
}

package csvio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rhyrak/go-syllabus/internal/scheduler"
	"github.com/rhyrak/go-syllabus/pkg/model"
)

// LoadHolidays reads one ISO date per line from the file at path.
// Every line must hold a valid date; a blank line is rejected like any
// other malformed one.
func LoadHolidays(path string) (model.HolidaySet, error) {
	holidaysFile, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open holidays file")
	}
	defer holidaysFile.Close()

	holidays := model.HolidaySet{}
	lineNo := 0
	err = eachLine(holidaysFile, func(line string) error {
		lineNo++
		d, err := scheduler.ParseDate(strings.TrimSpace(line))
		if err != nil {
			return errors.Wrapf(err, "%s:%d", path, lineNo)
		}
		holidays.Add(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return holidays, nil
}

// ReadTopics reads every line of r as a topic, trimming surrounding
// whitespace. The result is padded with empty topics up to count but never
// shortened; surplus topics are dropped when the table is built.
func ReadTopics(r io.Reader, count int) ([]string, error) {
	topics := []string{}
	err := eachLine(r, func(line string) error {
		topics = append(topics, strings.TrimSpace(line))
		return nil
	})
	if err != nil {
		return nil, err
	}
	for len(topics) < count {
		topics = append(topics, "")
	}
	return topics, nil
}

// eachLine calls fn for every newline-terminated line of r, including a final
// unterminated one. Lines have no length limit.
func eachLine(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read input")
		}
	}
}

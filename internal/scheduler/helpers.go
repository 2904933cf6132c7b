package scheduler

import "github.com/pkg/errors"

// DayLetters lists the meeting day codes in weekday index order.
// R is Thursday and U is Sunday so that no two days share a letter.
const DayLetters = "MTWRFSU"

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidPattern = errors.New("invalid date pattern")
)

// dayIndex maps a meeting day letter to its weekday index (Monday=0).
func dayIndex(c rune) (int, bool) {
	switch c {
	case 'M':
		return 0, true
	case 'T':
		return 1, true
	case 'W':
		return 2, true
	case 'R':
		return 3, true
	case 'F':
		return 4, true
	case 'S':
		return 5, true
	case 'U':
		return 6, true
	}
	return -1, false
}

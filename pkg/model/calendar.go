package model

import (
	"math/bits"
	"slices"
)

// WeekdaySet holds the days a class meets, bit i set for weekday index i (Monday=0).
type WeekdaySet uint8

// With returns the set extended by day index i. Indices outside 0-6 are ignored.
func (s WeekdaySet) With(i int) WeekdaySet {
	if i < 0 || i > 6 {
		return s
	}
	return s | 1<<uint(i)
}

// Has checks membership of weekday index i.
func (s WeekdaySet) Has(i int) bool {
	if i < 0 || i > 6 {
		return false
	}
	return s&(1<<uint(i)) != 0
}

func (s WeekdaySet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Days lists the member indices in ascending order.
func (s WeekdaySet) Days() []int {
	days := make([]int, 0, s.Len())
	for i := 0; i < 7; i++ {
		if s.Has(i) {
			days = append(days, i)
		}
	}
	return days
}

// HolidaySet is the set of dates on which class does not meet.
type HolidaySet map[Date]struct{}

func (h HolidaySet) Add(d Date) {
	h[d] = struct{}{}
}

func (h HolidaySet) Contains(d Date) bool {
	_, ok := h[d]
	return ok
}

// Sorted returns the holidays in ascending order.
func (h HolidaySet) Sorted() []Date {
	dates := make([]Date, 0, len(h))
	for d := range h {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b Date) int {
		return a.Compare(b)
	})
	return dates
}

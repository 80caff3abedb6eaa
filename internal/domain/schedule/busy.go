package schedule

import (
	"fmt"
	"sort"
)

// Interval is an unavailability window in minutes since midnight, half-open
// in the same sense as TimeBlock.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func NewInterval(start, end int) (Interval, error) {
	if start < 0 || end > MinutesPerDay {
		return Interval{}, fmt.Errorf("interval out of range: %d-%d", start, end)
	}
	if start >= end {
		return Interval{}, fmt.Errorf("interval has start >= end (%d >= %d)", start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// BusyMap holds per-weekday unavailability intervals, each day sorted by
// start time. Built once at profile construction and read-only afterwards.
type BusyMap map[Day][]Interval

// NewBusyMap merges one or more raw per-day interval maps (busy schedule,
// study commitments) into a single sorted map. Inputs are copied.
func NewBusyMap(sources ...map[Day][]Interval) BusyMap {
	m := make(BusyMap)
	for _, src := range sources {
		for day, ivals := range src {
			m[day] = append(m[day], ivals...)
		}
	}
	for day := range m {
		sort.Slice(m[day], func(i, j int) bool { return m[day][i].Start < m[day][j].Start })
	}
	return m
}

// BusyMinutes sums the length of every interval across the week.
func (m BusyMap) BusyMinutes() int {
	total := 0
	for _, ivals := range m {
		for _, iv := range ivals {
			total += iv.End - iv.Start
		}
	}
	return total
}

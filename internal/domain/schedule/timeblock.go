package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every time value in this package.
const MinutesPerDay = 1440

// TimeBlock is a contiguous working interval on one weekday, in minutes
// since midnight. Blocks never cross midnight: Start < End always holds for
// a constructed value. Upstream schedule inference is known to emit
// night-shift blocks as start=1320 end=480; those are rejected here so they
// cannot silently break conflict checks.
type TimeBlock struct {
	Day   Day `json:"day"`
	Start int `json:"start"`
	End   int `json:"end"`
}

func NewTimeBlock(day Day, start, end int) (TimeBlock, error) {
	if !day.Valid() {
		return TimeBlock{}, fmt.Errorf("invalid day: %d", int(day))
	}
	if start < 0 || end > MinutesPerDay {
		return TimeBlock{}, fmt.Errorf("time block %s out of range: %d-%d", day, start, end)
	}
	if start >= end {
		return TimeBlock{}, fmt.Errorf("time block %s has start >= end (%d >= %d); cross-midnight blocks must be split upstream", day, start, end)
	}
	return TimeBlock{Day: day, Start: start, End: end}, nil
}

func (b TimeBlock) DurationMinutes() int {
	return b.End - b.Start
}

func (b TimeBlock) String() string {
	return fmt.Sprintf("%s %s-%s", b.Day, FormatMinutes(b.Start), FormatMinutes(b.End))
}

// ParseMinutes converts "HH:MM" or a bare minute count ("540") to minutes
// since midnight. Anything else is an error; the source system this replaces
// used to default unparsable times to 09:00, which hid bad feed data.
func ParseMinutes(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}
	if h, m, ok := strings.Cut(s, ":"); ok {
		hour, err := strconv.Atoi(h)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q", raw)
		}
		minute, err := strconv.Atoi(m)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q", raw)
		}
		if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
			return 0, fmt.Errorf("time %q out of range", raw)
		}
		v := hour*60 + minute
		if v > MinutesPerDay {
			return 0, fmt.Errorf("time %q out of range", raw)
		}
		return v, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", raw)
	}
	if v < 0 || v > MinutesPerDay {
		return 0, fmt.Errorf("time %q out of range", raw)
	}
	return v, nil
}

func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

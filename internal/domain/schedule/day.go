package schedule

import (
	"fmt"
	"strings"
)

// Day is a weekday in Mon..Sun order.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var dayAliases = map[string]Day{
	"mon": Monday, "monday": Monday,
	"tue": Tuesday, "tuesday": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday,
	"thu": Thursday, "thursday": Thursday,
	"fri": Friday, "friday": Friday,
	"sat": Saturday, "saturday": Saturday,
	"sun": Sunday, "sunday": Sunday,
}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseDay accepts short and long English weekday names, case-insensitive.
// Unknown names are a hard error; job feeds with unsupported day labels must
// be fixed upstream, not coerced.
func ParseDay(raw string) (Day, error) {
	d, ok := dayAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return 0, fmt.Errorf("unsupported day name: %q", raw)
	}
	return d, nil
}

// AllDays returns Mon..Sun in calendar order.
func AllDays() [7]Day {
	return [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

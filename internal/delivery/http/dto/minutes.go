package dto

import (
	"encoding/json"
	"fmt"

	"moonlight/internal/domain/schedule"
)

// Minutes accepts both wire shapes the clients send for a time of day: a
// bare minute count (540) or an "HH:MM" string ("09:00"). Unparsable values
// are hard errors, never defaults.
type Minutes int

func (m *Minutes) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := schedule.ParseMinutes(s)
		if err != nil {
			return err
		}
		*m = Minutes(v)
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid time value %s", string(b))
	}
	if n < 0 || n > schedule.MinutesPerDay {
		return fmt.Errorf("time value %d out of range", n)
	}
	*m = Minutes(n)
	return nil
}

func (m Minutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(m))
}

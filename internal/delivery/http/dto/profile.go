package dto

import (
	"moonlight/internal/repository"
)

// IntervalRequest is a [start, end) pair; each element may be a minute count
// or an "HH:MM" string.
type IntervalRequest [2]Minutes

type ProfileRequest struct {
	MinHourlyRate       float64                      `json:"min_hourly_rate"`
	MaxHoursPerWeek     int                          `json:"max_hours_per_week"`
	DesiredHoursPerWeek int                          `json:"desired_hours_per_week"`
	RemoteOK            bool                         `json:"remote_ok"`
	OnsiteOK            bool                         `json:"onsite_ok"`
	Location            string                       `json:"location"`
	PreferredLocations  []string                     `json:"preferred_locations"`
	Skills              []string                     `json:"skills"`
	Preferences         map[string]string            `json:"preferences"`
	BusySchedule        map[string][]IntervalRequest `json:"busy_schedule"`
	StudyCommitments    map[string][]IntervalRequest `json:"study_commitments"`
}

func (r ProfileRequest) ToRecord() repository.ProfileRecord {
	return repository.ProfileRecord{
		MinHourlyRate:       r.MinHourlyRate,
		MaxHoursPerWeek:     r.MaxHoursPerWeek,
		DesiredHoursPerWeek: r.DesiredHoursPerWeek,
		RemoteOK:            r.RemoteOK,
		OnsiteOK:            r.OnsiteOK,
		Location:            r.Location,
		PreferredLocations:  r.PreferredLocations,
		Skills:              r.Skills,
		Preferences:         r.Preferences,
		BusySchedule:        toScheduleMap(r.BusySchedule),
		StudyCommitments:    toScheduleMap(r.StudyCommitments),
	}
}

func toScheduleMap(in map[string][]IntervalRequest) map[string][][2]int {
	if in == nil {
		return nil
	}
	out := make(map[string][][2]int, len(in))
	for day, pairs := range in {
		converted := make([][2]int, 0, len(pairs))
		for _, p := range pairs {
			converted = append(converted, [2]int{int(p[0]), int(p[1])})
		}
		out[day] = converted
	}
	return out
}

type ProfileResponse struct {
	MinHourlyRate       float64             `json:"min_hourly_rate"`
	MaxHoursPerWeek     int                 `json:"max_hours_per_week"`
	DesiredHoursPerWeek int                 `json:"desired_hours_per_week"`
	RemoteOK            bool                `json:"remote_ok"`
	OnsiteOK            bool                `json:"onsite_ok"`
	Location            string              `json:"location"`
	PreferredLocations  []string            `json:"preferred_locations"`
	Skills              []string            `json:"skills"`
	Preferences         map[string]string   `json:"preferences"`
	BusySchedule        map[string][][2]int `json:"busy_schedule"`
	StudyCommitments    map[string][][2]int `json:"study_commitments"`
}

func NewProfileResponse(rec repository.ProfileRecord) ProfileResponse {
	return ProfileResponse{
		MinHourlyRate:       rec.MinHourlyRate,
		MaxHoursPerWeek:     rec.MaxHoursPerWeek,
		DesiredHoursPerWeek: rec.DesiredHoursPerWeek,
		RemoteOK:            rec.RemoteOK,
		OnsiteOK:            rec.OnsiteOK,
		Location:            rec.Location,
		PreferredLocations:  rec.PreferredLocations,
		Skills:              rec.Skills,
		Preferences:         rec.Preferences,
		BusySchedule:        rec.BusySchedule,
		StudyCommitments:    rec.StudyCommitments,
	}
}

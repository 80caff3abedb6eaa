package matching

import (
	"strings"

	"moonlight/internal/domain/schedule"
)

// ProfileParams carries already-validated profile fields into NewProfile.
// Day/time parsing and range checks happen at the delivery boundary; by the
// time values reach this package they are structurally sound.
type ProfileParams struct {
	MinHourlyRate       float64
	MaxHoursPerWeek     int
	DesiredHoursPerWeek int // 0 means unset; target falls back to MaxHoursPerWeek
	RemoteOK            bool
	OnsiteOK            bool
	Location            string
	PreferredLocations  []string
	Skills              []string
	Preferences         map[string]string
	BusySchedule        map[schedule.Day][]schedule.Interval
	StudyCommitments    map[schedule.Day][]schedule.Interval
}

// Profile is the immutable matching view of a user. The busy map merges the
// busy schedule with study commitments, and the skill set is lowercased,
// both computed once here so every feasibility check reads prepared data.
type Profile struct {
	MinHourlyRate       float64
	MaxHoursPerWeek     int
	DesiredHoursPerWeek int
	RemoteOK            bool
	OnsiteOK            bool
	Location            string
	PreferredLocations  []string
	Preferences         map[string]string
	Skills              []string

	busy     schedule.BusyMap
	skillSet map[string]struct{}
}

func NewProfile(in ProfileParams) Profile {
	skillSet := make(map[string]struct{}, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			skillSet[s] = struct{}{}
		}
	}

	return Profile{
		MinHourlyRate:       in.MinHourlyRate,
		MaxHoursPerWeek:     in.MaxHoursPerWeek,
		DesiredHoursPerWeek: in.DesiredHoursPerWeek,
		RemoteOK:            in.RemoteOK,
		OnsiteOK:            in.OnsiteOK,
		Location:            in.Location,
		PreferredLocations:  append([]string(nil), in.PreferredLocations...),
		Preferences:         in.Preferences,
		Skills:              append([]string(nil), in.Skills...),
		busy:                schedule.NewBusyMap(in.BusySchedule, in.StudyCommitments),
		skillSet:            skillSet,
	}
}

// BusyOn returns the sorted unavailability intervals for one weekday.
func (p Profile) BusyOn(day schedule.Day) []schedule.Interval {
	return p.busy[day]
}

func (p Profile) HasSkill(skill string) bool {
	_, ok := p.skillSet[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// TargetHours is the weekly hours the user is aiming for: the desired value
// when set, otherwise the hard cap.
func (p Profile) TargetHours() int {
	if p.DesiredHoursPerWeek > 0 {
		return p.DesiredHoursPerWeek
	}
	return p.MaxHoursPerWeek
}

// AvailableHoursPerWeek estimates free working hours assuming twelve waking
// hours per day, minus everything in the busy map.
func (p Profile) AvailableHoursPerWeek() int {
	const wakingMinutesPerWeek = 12 * 60 * 7
	free := wakingMinutesPerWeek - p.busy.BusyMinutes()
	if free < 0 {
		return 0
	}
	return free / 60
}

package matching

import (
	"fmt"
	"strings"

	"moonlight/internal/domain/schedule"
)

// FitsUser checks a single job against every hard constraint: pay floor,
// weekly-hours cap, location policy, and schedule conflicts against the
// user's busy map. The skill check is deliberately soft — most feeds carry
// no structured skills, and a strict gate would reject nearly everything —
// so a skill gap is surfaced in the insight but never rejects.
//
// On acceptance the returned insights cover exactly the four dimensions
// Skills, Schedule, Location and Income; on rejection no insights are
// produced.
func FitsUser(job Job, user Profile) (bool, []Insight) {
	if job.HourlyRate < user.MinHourlyRate {
		return false, nil
	}
	if job.HoursPerWeek > user.MaxHoursPerWeek {
		return false, nil
	}

	skillDetail := "Skills match or not specified."
	if gap := skillGap(job, user); len(gap) > 0 {
		skillDetail = fmt.Sprintf("Not in your profile: %s. Kept anyway; feeds often lack structured skills.", strings.Join(gap, ", "))
	}

	if !locationOK(job, user) {
		return false, nil
	}

	for _, block := range job.Blocks {
		if schedule.Conflicts(block, user.BusyOn(block.Day)) {
			return false, nil
		}
	}

	cur := job.Currency
	if cur == "" {
		cur = "USD"
	}
	insights := []Insight{
		{Title: "Skills", Detail: skillDetail},
		{Title: "Schedule", Detail: "Fits within free time blocks."},
		{Title: "Location", Detail: "Matches location preference."},
		{Title: "Income", Detail: fmt.Sprintf("Pays %.0f %s per hour.", job.HourlyRate, cur)},
	}
	return true, insights
}

func skillGap(job Job, user Profile) []string {
	if len(job.RequiredSkills) == 0 {
		return nil
	}
	gap := make([]string, 0, len(job.RequiredSkills))
	for _, s := range job.RequiredSkills {
		if !user.HasSkill(s) {
			gap = append(gap, s)
		}
	}
	return gap
}

func locationOK(job Job, user Profile) bool {
	if job.IsRemote() {
		return user.RemoteOK
	}
	if !user.OnsiteOK {
		return false
	}

	jobLoc := strings.ToLower(strings.TrimSpace(job.Location))
	userLoc := strings.ToLower(strings.TrimSpace(user.Location))
	if userLoc != "" && (strings.Contains(jobLoc, userLoc) || strings.Contains(userLoc, jobLoc)) {
		return true
	}

	for _, loc := range user.PreferredLocations {
		if strings.ToLower(strings.TrimSpace(loc)) == jobLoc {
			return true
		}
	}
	return false
}

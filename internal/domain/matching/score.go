package matching

import (
	"math"
	"strings"
)

// Ranking weights. These are tuning knobs, not measured quantities: pay
// dominates, alignment with the user's hour target breaks ties between
// similar rates, and the environment bonus nudges jobs whose title matches
// the user's stated preference.
const (
	payWeight            = 2.0
	hoursAlignmentWeight = 10.0
	environmentBonus     = 5.0
)

// Score ranks one job for one user. Higher is better. Used only for
// ordering; the value itself carries no guarantee.
func Score(job Job, user Profile) float64 {
	target := user.TargetHours()
	alignment := 1 - math.Abs(float64(job.HoursPerWeek-target))/math.Max(float64(target), 1)

	bonus := 0.0
	if env := strings.TrimSpace(user.Preferences["environment"]); env != "" {
		if strings.Contains(strings.ToLower(job.Title), strings.ToLower(env)) {
			bonus = environmentBonus
		}
	}

	return job.HourlyRate*payWeight + alignment*hoursAlignmentWeight + bonus
}

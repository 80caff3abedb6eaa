package matching

import (
	"fmt"
	"strings"

	"moonlight/internal/domain/schedule"
)

// Job is a normalized job offer as delivered by the discovery feed. Values
// are validated at the ingest boundary and never mutated by the engine; a
// match computation only reads them.
type Job struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Company        string               `json:"company,omitempty"`
	Location       string               `json:"location"`
	Currency       string               `json:"currency,omitempty"`
	Source         string               `json:"source,omitempty"`
	ApplyLink      string               `json:"apply_link,omitempty"`
	HourlyRate     float64              `json:"hourly_rate"`
	RequiredSkills []string             `json:"required_skills,omitempty"`
	HoursPerWeek   int                  `json:"hours_per_week"`
	Blocks         []schedule.TimeBlock `json:"schedule_blocks,omitempty"`
}

func (j Job) WeeklyPay() float64 {
	return j.HourlyRate * float64(j.HoursPerWeek)
}

// IsRemote is derived from the location string; feeds have no structured
// remote flag.
func (j Job) IsRemote() bool {
	return strings.Contains(strings.ToLower(j.Location), "remote")
}

// ScheduleSummary renders the job's blocks as "Mon 09:00-18:00, Tue ...".
// Empty for jobs with a flexible (blockless) schedule.
func (j Job) ScheduleSummary() string {
	parts := make([]string, 0, len(j.Blocks))
	for _, b := range j.Blocks {
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}

// Summary is a one-line human-readable description used in logs and chat
// surfaces.
func (j Job) Summary() string {
	cur := j.Currency
	if cur == "" {
		cur = "USD"
	}
	return fmt.Sprintf("%s @ %s | %dh/week | %.0f %s/hr | Shifts: %s",
		j.Title, j.Location, j.HoursPerWeek, j.HourlyRate, cur, j.ScheduleSummary())
}

package dto

import "moonlight/internal/domain/matching"

type MatchJobResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company,omitempty"`
	Location       string   `json:"location"`
	Currency       string   `json:"currency,omitempty"`
	Source         string   `json:"source,omitempty"`
	ApplyLink      string   `json:"apply_link,omitempty"`
	HourlyRate     float64  `json:"hourly_rate"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	HoursPerWeek   int      `json:"hours_per_week"`
	WeeklyPay      float64  `json:"weekly_pay"`
	Schedule       []string `json:"schedule,omitempty"`
}

type InsightResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type MatchResultResponse struct {
	Jobs       []MatchJobResponse `json:"jobs"`
	TotalHours int                `json:"total_hours"`
	TotalPay   float64            `json:"total_pay"`
	Score      float64            `json:"score"`
	Insights   []InsightResponse  `json:"insights"`
}

func NewMatchResultsResponse(results []matching.Result) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(results))
	for _, res := range results {
		jobs := make([]MatchJobResponse, 0, len(res.Jobs))
		for _, j := range res.Jobs {
			schedule := make([]string, 0, len(j.Blocks))
			for _, b := range j.Blocks {
				schedule = append(schedule, b.String())
			}
			jobs = append(jobs, MatchJobResponse{
				ID:             j.ID,
				Title:          j.Title,
				Company:        j.Company,
				Location:       j.Location,
				Currency:       j.Currency,
				Source:         j.Source,
				ApplyLink:      j.ApplyLink,
				HourlyRate:     j.HourlyRate,
				RequiredSkills: j.RequiredSkills,
				HoursPerWeek:   j.HoursPerWeek,
				WeeklyPay:      j.WeeklyPay(),
				Schedule:       schedule,
			})
		}

		insights := make([]InsightResponse, 0, len(res.Insights))
		for _, in := range res.Insights {
			insights = append(insights, InsightResponse{Title: in.Title, Detail: in.Detail})
		}

		out = append(out, MatchResultResponse{
			Jobs:       jobs,
			TotalHours: res.TotalHours,
			TotalPay:   res.TotalPay,
			Score:      res.Score,
			Insights:   insights,
		})
	}
	return out
}

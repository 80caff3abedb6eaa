package dto

import "moonlight/internal/usecase"

type IngestBlockRequest struct {
	Day   string  `json:"day"`
	Start Minutes `json:"start"`
	End   Minutes `json:"end"`
}

type IngestJobRequest struct {
	ID             string               `json:"id"`
	Title          string               `json:"title"`
	Company        string               `json:"company"`
	Location       string               `json:"location"`
	Currency       string               `json:"currency"`
	Source         string               `json:"source"`
	ApplyLink      string               `json:"apply_link"`
	HourlyRate     float64              `json:"hourly_rate"`
	RequiredSkills []string             `json:"required_skills"`
	HoursPerWeek   int                  `json:"hours_per_week"`
	Blocks         []IngestBlockRequest `json:"schedule_blocks"`
}

type IngestRequest struct {
	Jobs []IngestJobRequest `json:"jobs"`
}

func (r IngestRequest) ToInputs() []usecase.IngestJobInput {
	inputs := make([]usecase.IngestJobInput, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		blocks := make([]usecase.IngestBlockInput, 0, len(j.Blocks))
		for _, b := range j.Blocks {
			blocks = append(blocks, usecase.IngestBlockInput{
				Day:          b.Day,
				StartMinutes: int(b.Start),
				EndMinutes:   int(b.End),
			})
		}
		inputs = append(inputs, usecase.IngestJobInput{
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
			Blocks:         blocks,
		})
	}
	return inputs
}

type IngestResponse struct {
	Stored int `json:"stored"`
}

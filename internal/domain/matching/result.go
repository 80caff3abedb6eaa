package matching

// Insight is a human-readable explanation attached to an accepted match.
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Result is one ranked match: a single job or a pair of simultaneously
// workable jobs. Constructed once per query and never mutated; it references
// jobs, it does not own them.
type Result struct {
	Jobs       []Job     `json:"jobs"`
	TotalHours int       `json:"total_hours"`
	TotalPay   float64   `json:"total_pay"`
	Insights   []Insight `json:"insights"`
	Score      float64   `json:"score"`
}

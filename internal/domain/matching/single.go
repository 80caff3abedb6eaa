package matching

import "sort"

// MatchSingle filters jobs through FitsUser, scores the survivors and
// returns the best ones wrapped as one-job results, sorted by score
// descending. The sort is stable: ties keep feed order, so identical inputs
// always yield identical output. limit <= 0 means no cap. An empty result is
// a normal outcome, not an error.
func MatchSingle(jobs []Job, user Profile, limit int) []Result {
	type scored struct {
		job      Job
		score    float64
		insights []Insight
	}

	eligible := make([]scored, 0, len(jobs))
	for _, job := range jobs {
		fits, insights := FitsUser(job, user)
		if !fits {
			continue
		}
		eligible = append(eligible, scored{job: job, score: Score(job, user), insights: insights})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})

	if limit > 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}

	results := make([]Result, 0, len(eligible))
	for _, e := range eligible {
		results = append(results, Result{
			Jobs:       []Job{e.job},
			TotalHours: e.job.HoursPerWeek,
			TotalPay:   e.job.WeeklyPay(),
			Insights:   e.insights,
			Score:      e.score,
		})
	}
	return results
}

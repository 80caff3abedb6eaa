package matching

import (
	"fmt"
	"sort"

	"moonlight/internal/domain/schedule"
)

// Pair type labels attached to accepted pairs.
const (
	PairTypeDifferentDays         = "Different Days"
	PairTypeMorningEveningSplit   = "Morning & Evening Split"
	PairTypeComplementarySchedule = "Complementary Schedule"
)

// morningEveningGapMinutes is the average-start-time gap beyond which two
// same-day jobs count as a morning/evening split (four hours).
const morningEveningGapMinutes = 240

// PairOptions tunes the combinatorial pair search.
//
// CandidateCap bounds pairing to the top-N highest-scoring feasible jobs
// before pairs are enumerated. The search is quadratic in the feasible-set
// size, which is fine for the tens-to-low-hundreds of jobs an aggregated
// feed produces but needs an explicit ceiling beyond that. 0 means
// unbounded.
type PairOptions struct {
	Limit        int
	CandidateCap int
}

// MatchPairs finds pairs of feasible jobs that can be worked simultaneously:
// no schedule overlap, and combined weekly hours within the user's cap. Each
// pair is scored as the sum of its members' single-job scores and the best
// opts.Limit pairs are returned, sorted descending (stable, so identical
// inputs always yield identical output).
func MatchPairs(jobs []Job, user Profile, opts PairOptions) []Result {
	type candidate struct {
		job   Job
		score float64
	}

	feasible := make([]candidate, 0, len(jobs))
	for _, job := range jobs {
		if fits, _ := FitsUser(job, user); fits {
			feasible = append(feasible, candidate{job: job, score: Score(job, user)})
		}
	}

	if opts.CandidateCap > 0 && len(feasible) > opts.CandidateCap {
		sort.SliceStable(feasible, func(i, j int) bool {
			return feasible[i].score > feasible[j].score
		})
		feasible = feasible[:opts.CandidateCap]
	}

	pairs := make([]Result, 0)
	for i := 0; i < len(feasible); i++ {
		for j := i + 1; j < len(feasible); j++ {
			a, b := feasible[i], feasible[j]
			if schedule.BlocksOverlap(a.job.Blocks, b.job.Blocks) {
				continue
			}
			totalHours := a.job.HoursPerWeek + b.job.HoursPerWeek
			if totalHours > user.MaxHoursPerWeek {
				continue
			}

			totalPay := a.job.WeeklyPay() + b.job.WeeklyPay()
			insights := []Insight{
				{Title: "Pair Type", Detail: pairType(a.job, b.job)},
				{Title: "Schedule Fit", Detail: pairScheduleDetail(a.job, b.job, totalHours)},
				{Title: "Combined Hours", Detail: fmt.Sprintf("%dh per week", totalHours)},
				{Title: "Income", Detail: combinedIncomeDetail(a.job, b.job, totalPay)},
			}

			pairs = append(pairs, Result{
				Jobs:       []Job{a.job, b.job},
				TotalHours: totalHours,
				TotalPay:   totalPay,
				Insights:   insights,
				Score:      a.score + b.score,
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})

	if opts.Limit > 0 && len(pairs) > opts.Limit {
		pairs = pairs[:opts.Limit]
	}
	return pairs
}

// pairType classifies how the two schedules avoid each other: disjoint
// weekdays, a morning/evening split on shared days, or merely
// non-overlapping blocks.
func pairType(a, b Job) string {
	daysA := make(map[schedule.Day]struct{}, len(a.Blocks))
	for _, blk := range a.Blocks {
		daysA[blk.Day] = struct{}{}
	}
	shared := false
	for _, blk := range b.Blocks {
		if _, ok := daysA[blk.Day]; ok {
			shared = true
			break
		}
	}
	if !shared {
		return PairTypeDifferentDays
	}

	gap := averageBlockStart(a) - averageBlockStart(b)
	if gap < 0 {
		gap = -gap
	}
	if gap > morningEveningGapMinutes {
		return PairTypeMorningEveningSplit
	}
	return PairTypeComplementarySchedule
}

func averageBlockStart(j Job) float64 {
	if len(j.Blocks) == 0 {
		return 0
	}
	sum := 0
	for _, blk := range j.Blocks {
		sum += blk.Start
	}
	return float64(sum) / float64(len(j.Blocks))
}

func pairScheduleDetail(a, b Job, totalHours int) string {
	return fmt.Sprintf("%s | %s | Total: %dh/week", a.ScheduleSummary(), b.ScheduleSummary(), totalHours)
}

func combinedIncomeDetail(a, b Job, totalPay float64) string {
	if a.Currency != "" && a.Currency == b.Currency {
		return fmt.Sprintf("Combined weekly income: %.0f %s", totalPay, a.Currency)
	}
	return fmt.Sprintf("Combined weekly income: %.0f", totalPay)
}

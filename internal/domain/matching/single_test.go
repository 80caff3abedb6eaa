package matching

import (
	"reflect"
	"testing"
)

func TestMatchSingle_RanksByScoreDesc(t *testing.T) {
	user := NewProfile(ProfileParams{MinHourlyRate: 10, MaxHoursPerWeek: 40, RemoteOK: true, OnsiteOK: true, Location: "Yerevan"})
	jobs := []Job{
		{ID: "low", Title: "Cleaner", Location: "Yerevan", HourlyRate: 11, HoursPerWeek: 20},
		{ID: "high", Title: "Tutor", Location: "Yerevan", HourlyRate: 20, HoursPerWeek: 20},
		{ID: "mid", Title: "Cashier", Location: "Yerevan", HourlyRate: 14, HoursPerWeek: 20},
	}

	results := MatchSingle(jobs, user, 0)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	gotOrder := []string{results[0].Jobs[0].ID, results[1].Jobs[0].ID, results[2].Jobs[0].ID}
	if !reflect.DeepEqual(gotOrder, []string{"high", "mid", "low"}) {
		t.Fatalf("unexpected order: %v", gotOrder)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted descending at %d", i)
		}
	}
}

func TestMatchSingle_StableOnTies(t *testing.T) {
	user := NewProfile(ProfileParams{MinHourlyRate: 10, MaxHoursPerWeek: 40, OnsiteOK: true, Location: "Yerevan"})
	jobs := []Job{
		{ID: "first", Title: "Clerk", Location: "Yerevan", HourlyRate: 12, HoursPerWeek: 20},
		{ID: "second", Title: "Clerk", Location: "Yerevan", HourlyRate: 12, HoursPerWeek: 20},
		{ID: "third", Title: "Clerk", Location: "Yerevan", HourlyRate: 12, HoursPerWeek: 20},
	}

	results := MatchSingle(jobs, user, 0)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"first", "second", "third"} {
		if results[i].Jobs[0].ID != want {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, results[i].Jobs[0].ID, want)
		}
	}
}

func TestMatchSingle_LimitAndTotals(t *testing.T) {
	user := NewProfile(ProfileParams{MinHourlyRate: 10, MaxHoursPerWeek: 40, OnsiteOK: true, Location: "Yerevan"})
	jobs := []Job{
		{ID: "a", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20},
		{ID: "b", Title: "Clerk", Location: "Yerevan", HourlyRate: 14, HoursPerWeek: 25},
		{ID: "c", Title: "Clerk", Location: "Yerevan", HourlyRate: 13, HoursPerWeek: 30},
	}

	results := MatchSingle(jobs, user, 2)
	if len(results) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(results))
	}
	top := results[0]
	if top.TotalHours != 20 {
		t.Fatalf("expected total hours 20, got %d", top.TotalHours)
	}
	if top.TotalPay != 300 {
		t.Fatalf("expected total pay 300, got %v", top.TotalPay)
	}
	if len(top.Insights) != 4 {
		t.Fatalf("expected 4 insights, got %d", len(top.Insights))
	}
}

func TestMatchSingle_EmptyIsNormal(t *testing.T) {
	user := NewProfile(ProfileParams{MinHourlyRate: 100, MaxHoursPerWeek: 10, OnsiteOK: true, Location: "Yerevan"})
	jobs := []Job{{ID: "a", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20}}

	if got := MatchSingle(jobs, user, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	if got := MatchSingle(nil, user, 5); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %d", len(got))
	}
}

func TestMatchSingle_Deterministic(t *testing.T) {
	user := NewProfile(ProfileParams{MinHourlyRate: 10, MaxHoursPerWeek: 40, OnsiteOK: true, Location: "Yerevan"})
	jobs := []Job{
		{ID: "a", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20},
		{ID: "b", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20},
		{ID: "c", Title: "Tutor", Location: "Yerevan", HourlyRate: 18, HoursPerWeek: 15},
	}

	first := MatchSingle(jobs, user, 5)
	for i := 0; i < 10; i++ {
		again := MatchSingle(jobs, user, 5)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: output differs from first run", i)
		}
	}
}

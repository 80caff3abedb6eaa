package schedule

import "testing"

func block(t *testing.T, day Day, start, end int) TimeBlock {
	t.Helper()
	b, err := NewTimeBlock(day, start, end)
	if err != nil {
		t.Fatalf("NewTimeBlock(%v, %d, %d): %v", day, start, end, err)
	}
	return b
}

func TestConflicts(t *testing.T) {
	busy := []Interval{{Start: 540, End: 600}} // 09:00-10:00

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"fully inside", 550, 590, true},
		{"straddles start", 500, 550, true},
		{"straddles end", 590, 660, true},
		{"contains interval", 500, 660, true},
		{"starts at busy end", 600, 840, false},
		{"ends at busy start", 480, 540, false},
		{"well before", 60, 120, false},
		{"well after", 700, 800, false},
	}
	for _, c := range cases {
		b := block(t, Monday, c.start, c.end)
		if got := Conflicts(b, busy); got != c.want {
			t.Fatalf("%s: Conflicts = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestConflicts_EmptyBusy(t *testing.T) {
	if Conflicts(block(t, Monday, 540, 600), nil) {
		t.Fatalf("empty busy list must never conflict")
	}
}

func TestBlocksOverlap(t *testing.T) {
	morning := []TimeBlock{block(t, Monday, 600, 840), block(t, Tuesday, 600, 840)}
	evening := []TimeBlock{block(t, Monday, 1080, 1380), block(t, Tuesday, 1080, 1380)}
	clash := []TimeBlock{block(t, Monday, 800, 900)}
	weekend := []TimeBlock{block(t, Saturday, 540, 1080)}
	backToBack := []TimeBlock{block(t, Monday, 840, 1080)}

	if BlocksOverlap(morning, evening) {
		t.Fatalf("disjoint morning/evening blocks must not overlap")
	}
	if !BlocksOverlap(morning, clash) {
		t.Fatalf("expected overlap on Monday 800-900")
	}
	if BlocksOverlap(morning, weekend) {
		t.Fatalf("different days must not overlap")
	}
	if BlocksOverlap(morning, backToBack) {
		t.Fatalf("boundary-touching blocks must not overlap")
	}
	if BlocksOverlap(nil, morning) || BlocksOverlap(morning, nil) {
		t.Fatalf("empty block lists must not overlap")
	}
}

func TestBlocksOverlap_Commutative(t *testing.T) {
	sets := [][]TimeBlock{
		{block(t, Monday, 600, 840)},
		{block(t, Monday, 800, 900), block(t, Friday, 540, 600)},
		{block(t, Monday, 840, 1080)},
		{block(t, Sunday, 0, 1440)},
		nil,
	}
	for i := range sets {
		for j := range sets {
			if BlocksOverlap(sets[i], sets[j]) != BlocksOverlap(sets[j], sets[i]) {
				t.Fatalf("BlocksOverlap not commutative for sets %d and %d", i, j)
			}
		}
	}
}

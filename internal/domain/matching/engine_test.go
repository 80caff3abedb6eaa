package matching

import (
	"testing"

	"moonlight/internal/domain/schedule"
)

func weekdayBlocks(t *testing.T, start, end int) []schedule.TimeBlock {
	t.Helper()
	days := []schedule.Day{schedule.Monday, schedule.Tuesday, schedule.Wednesday, schedule.Thursday, schedule.Friday}
	blocks := make([]schedule.TimeBlock, 0, len(days))
	for _, d := range days {
		b, err := schedule.NewTimeBlock(d, start, end)
		if err != nil {
			t.Fatalf("NewTimeBlock: %v", err)
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func testProfile() ProfileParams {
	return ProfileParams{
		MinHourlyRate:   10,
		MaxHoursPerWeek: 40,
		RemoteOK:        true,
		OnsiteOK:        true,
		Location:        "Yerevan",
		Skills:          []string{"Driving", "English"},
		BusySchedule: map[schedule.Day][]schedule.Interval{
			schedule.Monday: {{Start: 540, End: 600}}, // 09:00-10:00
		},
	}
}

func TestFitsUser_RejectsLowPay(t *testing.T) {
	user := NewProfile(testProfile())
	job := Job{ID: "j1", Title: "Cashier", Location: "Yerevan", HourlyRate: 9, HoursPerWeek: 20}

	fits, insights := FitsUser(job, user)
	if fits {
		t.Fatalf("expected rejection below pay floor")
	}
	if len(insights) != 0 {
		t.Fatalf("rejections must not carry insights, got %d", len(insights))
	}
}

func TestFitsUser_RejectsOverHours(t *testing.T) {
	user := NewProfile(testProfile())
	job := Job{ID: "j1", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 45,
		Blocks: weekdayBlocks(t, 540, 1080)}

	if fits, _ := FitsUser(job, user); fits {
		t.Fatalf("expected rejection: 45h exceeds 40h cap")
	}
}

func TestFitsUser_SkillGapIsSoft(t *testing.T) {
	user := NewProfile(testProfile())
	job := Job{ID: "j1", Title: "Welder", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20,
		RequiredSkills: []string{"Welding"}}

	fits, insights := FitsUser(job, user)
	if !fits {
		t.Fatalf("skill gap must not reject")
	}
	if len(insights) != 4 {
		t.Fatalf("expected 4 insights, got %d", len(insights))
	}
	if insights[0].Title != "Skills" || insights[0].Detail == "Skills match or not specified." {
		t.Fatalf("expected skill-gap detail, got %+v", insights[0])
	}
}

func TestFitsUser_SkillsMatchedOrAbsent(t *testing.T) {
	user := NewProfile(testProfile())
	for _, skills := range [][]string{nil, {"driving"}, {"DRIVING", "english"}} {
		job := Job{ID: "j1", Title: "Driver", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20,
			RequiredSkills: skills}
		fits, insights := FitsUser(job, user)
		if !fits {
			t.Fatalf("skills %v: expected acceptance", skills)
		}
		if insights[0].Detail != "Skills match or not specified." {
			t.Fatalf("skills %v: unexpected detail %q", skills, insights[0].Detail)
		}
	}
}

func TestFitsUser_Location(t *testing.T) {
	cases := []struct {
		name     string
		job      Job
		remoteOK bool
		onsiteOK bool
		want     bool
	}{
		{"remote job, remote ok", Job{Location: "Remote (Worldwide)"}, true, false, true},
		{"remote job, remote not ok", Job{Location: "Remote"}, false, true, false},
		{"onsite city substring", Job{Location: "Yerevan, Kentron"}, false, true, true},
		{"onsite user loc contains job loc", Job{Location: "Yerevan"}, false, true, true},
		{"onsite preferred location", Job{Location: "Gyumri"}, false, true, true},
		{"onsite unknown city", Job{Location: "Vanadzor"}, false, true, false},
		{"onsite but onsite not ok", Job{Location: "Yerevan"}, false, false, false},
	}
	for _, c := range cases {
		params := testProfile()
		params.RemoteOK = c.remoteOK
		params.OnsiteOK = c.onsiteOK
		params.PreferredLocations = []string{"gyumri"}
		user := NewProfile(params)

		job := c.job
		job.HourlyRate = 15
		job.HoursPerWeek = 20

		if fits, _ := FitsUser(job, user); fits != c.want {
			t.Fatalf("%s: fits = %v, want %v", c.name, fits, c.want)
		}
	}
}

func TestFitsUser_ScheduleConflict(t *testing.T) {
	user := NewProfile(testProfile())

	// Busy Monday 09:00-10:00. A 09:30 start collides.
	colliding := Job{ID: "j1", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20,
		Blocks: weekdayBlocks(t, 570, 810)}
	if fits, _ := FitsUser(colliding, user); fits {
		t.Fatalf("expected schedule conflict rejection")
	}

	// Starting exactly at 10:00 touches the busy boundary and is allowed.
	adjacent := Job{ID: "j2", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20,
		Blocks: weekdayBlocks(t, 600, 840)}
	fits, insights := FitsUser(adjacent, user)
	if !fits {
		t.Fatalf("boundary-touching block must not conflict")
	}
	titles := []string{"Skills", "Schedule", "Location", "Income"}
	for i, want := range titles {
		if insights[i].Title != want {
			t.Fatalf("insight %d: got %q, want %q", i, insights[i].Title, want)
		}
	}
}

func TestProfile_TargetHours(t *testing.T) {
	params := testProfile()
	user := NewProfile(params)
	if user.TargetHours() != 40 {
		t.Fatalf("unset desired hours must fall back to cap, got %d", user.TargetHours())
	}

	params.DesiredHoursPerWeek = 25
	user = NewProfile(params)
	if user.TargetHours() != 25 {
		t.Fatalf("expected desired hours 25, got %d", user.TargetHours())
	}
}

func TestProfile_AvailableHoursPerWeek(t *testing.T) {
	params := testProfile()
	params.StudyCommitments = map[schedule.Day][]schedule.Interval{
		schedule.Tuesday: {{Start: 540, End: 840}}, // 5h study
	}
	user := NewProfile(params)

	// 84 waking hours minus 1h busy minus 5h study.
	if got := user.AvailableHoursPerWeek(); got != 78 {
		t.Fatalf("expected 78 available hours, got %d", got)
	}
}

func TestProfile_StudyCommitmentsBlockJobs(t *testing.T) {
	params := testProfile()
	params.StudyCommitments = map[schedule.Day][]schedule.Interval{
		schedule.Wednesday: {{Start: 600, End: 720}},
	}
	user := NewProfile(params)

	job := Job{ID: "j1", Title: "Clerk", Location: "Yerevan", HourlyRate: 15, HoursPerWeek: 20,
		Blocks: weekdayBlocks(t, 600, 840)}
	if fits, _ := FitsUser(job, user); fits {
		t.Fatalf("study commitments must count as busy time")
	}
}

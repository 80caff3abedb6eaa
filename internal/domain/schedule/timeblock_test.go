package schedule

import "testing"

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want Day
	}{
		{"Mon", Monday},
		{"monday", Monday},
		{" TUESDAY ", Tuesday},
		{"wed", Wednesday},
		{"Thu", Thursday},
		{"friday", Friday},
		{"sat", Saturday},
		{"Sunday", Sunday},
	}
	for _, c := range cases {
		got, err := ParseDay(c.in)
		if err != nil {
			t.Fatalf("ParseDay(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseDay(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDay_Unknown(t *testing.T) {
	for _, in := range []string{"", "Mo", "funday", "8"} {
		if _, err := ParseDay(in); err == nil {
			t.Fatalf("ParseDay(%q): expected error", in)
		}
	}
}

func TestNewTimeBlock_Valid(t *testing.T) {
	b, err := NewTimeBlock(Monday, 540, 1080)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.DurationMinutes() != 540 {
		t.Fatalf("expected 540 minutes, got %d", b.DurationMinutes())
	}
	if b.String() != "Mon 09:00-18:00" {
		t.Fatalf("unexpected string: %q", b.String())
	}
}

func TestNewTimeBlock_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		day        Day
		start, end int
	}{
		{"start equals end", Monday, 600, 600},
		{"night shift crossing midnight", Friday, 1320, 480},
		{"negative start", Monday, -10, 60},
		{"end past midnight", Monday, 600, 1441},
		{"invalid day", Day(9), 540, 600},
	}
	for _, c := range cases {
		if _, err := NewTimeBlock(c.day, c.start, c.end); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:00", 540},
		{"00:00", 0},
		{"23:59", 1439},
		{"540", 540},
		{" 18:30 ", 1110},
	}
	for _, c := range cases {
		got, err := ParseMinutes(c.in)
		if err != nil {
			t.Fatalf("ParseMinutes(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseMinutes_Invalid(t *testing.T) {
	// The system this replaces defaulted junk to 09:00; these must all fail
	// loudly instead.
	for _, in := range []string{"", "nine", "25:00", "09:75", "-5", "1500", "9:xx"} {
		if _, err := ParseMinutes(in); err == nil {
			t.Fatalf("ParseMinutes(%q): expected error", in)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(540); got != "09:00" {
		t.Fatalf("FormatMinutes(540) = %q", got)
	}
	if got := FormatMinutes(1439); got != "23:59" {
		t.Fatalf("FormatMinutes(1439) = %q", got)
	}
}

func TestNewInterval(t *testing.T) {
	if _, err := NewInterval(540, 600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range [][2]int{{600, 600}, {600, 540}, {-1, 60}, {0, 1441}} {
		if _, err := NewInterval(c[0], c[1]); err == nil {
			t.Fatalf("NewInterval(%d, %d): expected error", c[0], c[1])
		}
	}
}

func TestNewBusyMap_MergesAndSorts(t *testing.T) {
	busy := map[Day][]Interval{Monday: {{Start: 900, End: 960}}}
	study := map[Day][]Interval{
		Monday:  {{Start: 540, End: 600}},
		Tuesday: {{Start: 480, End: 540}},
	}

	m := NewBusyMap(busy, study)
	mon := m[Monday]
	if len(mon) != 2 {
		t.Fatalf("expected 2 Monday intervals, got %d", len(mon))
	}
	if mon[0].Start != 540 || mon[1].Start != 900 {
		t.Fatalf("Monday intervals not sorted: %+v", mon)
	}
	if len(m[Tuesday]) != 1 {
		t.Fatalf("expected 1 Tuesday interval")
	}
	if m.BusyMinutes() != 60+60+60 {
		t.Fatalf("expected 180 busy minutes, got %d", m.BusyMinutes())
	}
}

package schedule

import (
	"strings"
	"testing"
	"time"

	"calog/internal/model"
)

func TestDayOffsetBijection(t *testing.T) {
	letters := []string{"U", "M", "T", "W", "R", "F", "S"}
	seen := map[int]string{}
	for i, letter := range letters {
		got := DayOffset(letter)
		if got != i {
			t.Errorf("DayOffset(%q) = %d, want %d", letter, got, i)
		}
		if prev, dup := seen[got]; dup {
			t.Errorf("offset %d assigned to both %q and %q", got, prev, letter)
		}
		seen[got] = letter
	}
}

func TestDayOffsetUnknownLetter(t *testing.T) {
	for _, letter := range []string{"X", "m", "", "Z"} {
		if got := DayOffset(letter); got != 0 {
			t.Errorf("DayOffset(%q) = %d, want 0", letter, got)
		}
	}
}

func TestWeekStartIsSunday(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),   // a Sunday
		time.Date(2024, 6, 3, 12, 30, 0, 0, time.UTC), // Monday
		time.Date(2024, 6, 8, 23, 59, 59, 0, time.UTC), // Saturday
		time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 15, 4, 5, 0, time.UTC),
	}
	for _, d := range dates {
		ws := WeekStart(d)
		if ws.Weekday() != time.Sunday {
			t.Errorf("WeekStart(%s).Weekday() = %s, want Sunday", d, ws.Weekday())
		}
		if ws.Hour() != 0 || ws.Minute() != 0 || ws.Second() != 0 {
			t.Errorf("WeekStart(%s) = %s, want midnight", d, ws)
		}
		if ws.After(d) {
			t.Errorf("WeekStart(%s) = %s is in the future", d, ws)
		}
	}
}

func TestWeekStartSundayInclusive(t *testing.T) {
	sunday := time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC)
	ws := WeekStart(sunday)
	if ws.Day() != 2 || ws.Month() != time.June {
		t.Errorf("WeekStart on a Sunday = %s, want the same Sunday", ws)
	}
}

func TestEventTime(t *testing.T) {
	// Week where Sunday is 2024-06-02; now is the Wednesday.
	now := time.Date(2024, 6, 5, 14, 22, 31, 0, time.UTC)

	got := EventTime(now, "M", 9)
	want := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EventTime(M, 9) = %s, want %s", got, want)
	}

	got = EventTime(now, "S", 23)
	want = time.Date(2024, 6, 8, 23, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EventTime(S, 23) = %s, want %s", got, want)
	}
}

func TestBuildEvents(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	entries := []model.ScheduleEntry{
		{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 10},
		{Activity: "Run", Day: "F", StartHour: 7, EndHour: 8},
	}

	events := BuildEvents(entries, now)
	if len(events) != len(entries) {
		t.Fatalf("BuildEvents returned %d events, want %d", len(events), len(entries))
	}
	if events[0].Title != "Gym" {
		t.Errorf("event title = %q, want Gym", events[0].Title)
	}
	wantStart := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	if !events[0].Start.Equal(wantStart) || !events[0].End.Equal(wantEnd) {
		t.Errorf("Gym event = %s–%s, want %s–%s", events[0].Start, events[0].End, wantStart, wantEnd)
	}
}

func TestEncodeEmpty(t *testing.T) {
	doc := Encode(nil, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	want := "BEGIN:VCALENDAR\nVERSION:2.0\nCALSCALE:GREGORIAN\nEND:VCALENDAR"
	if doc != want {
		t.Errorf("Encode(nil) = %q, want %q", doc, want)
	}
	if strings.Contains(doc, "VEVENT") {
		t.Errorf("empty export contains a VEVENT block")
	}
}

func TestEncodeScenario(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	entries := []model.ScheduleEntry{{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 10}}

	doc := Encode(entries, now)
	for _, line := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"SUMMARY:Gym",
		"DTSTART:20240603T090000Z",
		"DTEND:20240603T100000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	} {
		if !strings.Contains(doc, line) {
			t.Errorf("export missing line %q:\n%s", line, doc)
		}
	}
	if strings.Contains(doc, "\r") {
		t.Errorf("export contains carriage returns")
	}
}

func TestEncodeIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	entries := []model.ScheduleEntry{
		{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 10},
		{Activity: "Swim", Day: "R", StartHour: 18, EndHour: 19},
	}

	first := Encode(entries, now)
	second := Encode(entries, now)
	if first != second {
		t.Errorf("repeated encode differs:\n%s\n---\n%s", first, second)
	}
}

func TestEncodeOvernightPassThrough(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	entries := []model.ScheduleEntry{{Activity: "Night shift", Day: "T", StartHour: 22, EndHour: 2}}

	doc := Encode(entries, now)
	// End lands before start; the transform does not correct it.
	if !strings.Contains(doc, "DTSTART:20240604T220000Z") {
		t.Errorf("missing overnight start:\n%s", doc)
	}
	if !strings.Contains(doc, "DTEND:20240604T020000Z") {
		t.Errorf("missing overnight end:\n%s", doc)
	}
}

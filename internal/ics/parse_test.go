package ics

import (
	"testing"
	"time"

	"calog/internal/model"
	"calog/internal/schedule"
)

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Errorf("Parse(nil) succeeded, want error")
	}
}

func TestParseRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	entries := []model.ScheduleEntry{
		{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 10},
		{Activity: "Swim", Day: "R", StartHour: 18, EndHour: 19},
		{Activity: "Long run", Day: "U", StartHour: 7, EndHour: 9},
	}

	doc := schedule.Encode(entries, now)
	events, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != len(entries) {
		t.Fatalf("parsed %d events, want %d", len(events), len(entries))
	}

	got := ToEntries(events, time.UTC)
	for i, want := range entries {
		if got[i] != want {
			t.Errorf("entry %d round-tripped to %+v, want %+v", i, got[i], want)
		}
	}
}

func TestParseRoundTripNonUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, loc)
	entries := []model.ScheduleEntry{
		{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 10},
		// Late Saturday: in UTC this crosses into Sunday, so a round-trip
		// that forgets the locale flips the day letter too.
		{Activity: "Late", Day: "S", StartHour: 21, EndHour: 23},
	}

	doc := schedule.Encode(entries, now)
	events, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := ToEntries(events, loc)
	if len(got) != len(entries) {
		t.Fatalf("round-tripped %d entries, want %d", len(got), len(entries))
	}
	for i, want := range entries {
		if got[i] != want {
			t.Errorf("entry %d round-tripped to %+v, want %+v", i, got[i], want)
		}
	}
}

func TestParseCRLFInput(t *testing.T) {
	body := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nCALSCALE:GREGORIAN\r\n" +
		"BEGIN:VEVENT\r\nSUMMARY:Gym\r\nDTSTART:20240603T090000Z\r\nDTEND:20240603T100000Z\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	events, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("parsed %d events, want 1", len(events))
	}
	if events[0].Summary != "Gym" {
		t.Errorf("summary = %q, want Gym", events[0].Summary)
	}
	want := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	if !events[0].Start.Equal(want) {
		t.Errorf("start = %s, want %s", events[0].Start, want)
	}
}

func TestToEntriesDayLetters(t *testing.T) {
	// One event per weekday of the 2024-06-02 week.
	letters := []string{"U", "M", "T", "W", "R", "F", "S"}
	events := make([]Event, 0, 7)
	for i := 0; i < 7; i++ {
		start := time.Date(2024, 6, 2+i, 8, 0, 0, 0, time.UTC)
		events = append(events, Event{Summary: "Walk", Start: start, End: start.Add(time.Hour)})
	}

	for i, entry := range ToEntries(events, time.UTC) {
		if entry.Day != letters[i] {
			t.Errorf("day %d letter = %q, want %q", i, entry.Day, letters[i])
		}
		if entry.StartHour != 8 || entry.EndHour != 9 {
			t.Errorf("day %d hours = %d–%d, want 8–9", i, entry.StartHour, entry.EndHour)
		}
	}
}

// Package ics reads iCalendar payloads back into schedule entries, for
// export verification and schedule import.
package ics

import (
	"bytes"
	"errors"
	"time"

	ical "github.com/arran4/golang-ical"

	"calog/internal/model"
	"calog/internal/schedule"
)

// Event is the normalized representation of a VEVENT.
type Event struct {
	Summary string
	Start   time.Time
	End     time.Time
}

// Parse parses a single ICS payload into a list of Event. Line endings are
// normalised to CRLF first; exports produced by this program are LF-joined.
func Parse(body []byte) ([]Event, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	normalized := bytes.ReplaceAll(body, []byte("\r\n"), []byte("\n"))
	normalized = bytes.ReplaceAll(normalized, []byte("\n"), []byte("\r\n"))

	cal, err := ical.ParseCalendar(bytes.NewReader(normalized))
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0)
	for _, ve := range cal.Events() {
		var ev Event
		if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
			ev.Summary = p.Value
		}
		start, err := ve.GetStartAt()
		if err != nil {
			return nil, err
		}
		end, err := ve.GetEndAt()
		if err != nil {
			return nil, err
		}
		ev.Start = start
		ev.End = end
		events = append(events, ev)
	}
	return events, nil
}

// ToEntries converts parsed events back into weekly schedule entries: the
// day letter comes from the event's weekday, the hours from its start and
// end times, both read in loc. Parsed timestamps arrive in UTC; without
// the conversion an export produced in a non-UTC locale would reconstruct
// shifted hours, or a different day entirely near midnight. The concrete
// week the events were anchored to is discarded.
func ToEntries(events []Event, loc *time.Location) []model.ScheduleEntry {
	entries := make([]model.ScheduleEntry, 0, len(events))
	for _, ev := range events {
		start := ev.Start.In(loc)
		end := ev.End.In(loc)
		entries = append(entries, model.ScheduleEntry{
			Activity:  ev.Summary,
			Day:       schedule.DayLetter(start.Weekday()),
			StartHour: start.Hour(),
			EndHour:   end.Hour(),
		})
	}
	return entries
}

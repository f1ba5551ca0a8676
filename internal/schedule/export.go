// Package schedule turns weekly recurring activity entries into concrete
// calendar events and an iCalendar document for download.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"calog/internal/model"
)

const (
	// Filename is the suggested name for a downloaded export.
	Filename = "schedule.ics"
	// ContentType is the MIME type of the export.
	ContentType = "text/calendar; charset=utf-8"

	// stampLayout is the compact UTC timestamp used for DTSTART/DTEND.
	stampLayout = "20060102T150405Z"
)

// dayOffsets maps a day letter to its offset from Sunday.
var dayOffsets = map[string]int{
	"U": 0,
	"M": 1,
	"T": 2,
	"W": 3,
	"R": 4,
	"F": 5,
	"S": 6,
}

// dayLetters is the inverse of dayOffsets, indexed by time.Weekday.
var dayLetters = [7]string{"U", "M", "T", "W", "R", "F", "S"}

// DayOffset returns the days-from-Sunday offset for a day letter.
// Unrecognised letters fall back to 0 (Sunday); this is permissive by
// contract, not a validation error.
func DayOffset(day string) int {
	return dayOffsets[day]
}

// DayLetter returns the day letter for a weekday.
func DayLetter(wd time.Weekday) string {
	return dayLetters[int(wd)]
}

// WeekStart returns midnight of the most recent Sunday (inclusive: a
// Sunday is its own week start), in now's location.
func WeekStart(now time.Time) time.Time {
	start := now.AddDate(0, 0, -int(now.Weekday()))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
}

// EventTime anchors a day letter and hour to the week containing now,
// with minutes and seconds zeroed.
func EventTime(now time.Time, day string, hour int) time.Time {
	date := WeekStart(now).AddDate(0, 0, DayOffset(day))
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// BuildEvents maps schedule entries onto concrete events in the week
// containing now. The result is regenerated whenever the source list
// changes and never persisted.
func BuildEvents(entries []model.ScheduleEntry, now time.Time) []model.CalendarEvent {
	events := make([]model.CalendarEvent, 0, len(entries))
	for _, e := range entries {
		events = append(events, model.CalendarEvent{
			Title: e.Activity,
			Start: EventTime(now, e.Day, e.StartHour),
			End:   EventTime(now, e.Day, e.EndHour),
		})
	}
	return events
}

// Encode renders entries as an iCalendar document anchored to the week
// containing now. Timestamps are compact UTC; lines are LF-joined. An
// empty list yields a header+footer-only document, which is valid output.
//
// Overnight spans (end before start) pass through unchanged; downstream
// calendar consumers may reject such events. Use Export with Strict for a
// typed rejection instead.
func Encode(entries []model.ScheduleEntry, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
	}
	for _, e := range entries {
		start := EventTime(now, e.Day, e.StartHour).UTC().Format(stampLayout)
		end := EventTime(now, e.Day, e.EndHour).UTC().Format(stampLayout)
		lines = append(lines,
			"BEGIN:VEVENT",
			"SUMMARY:"+e.Activity,
			"DTSTART:"+start,
			"DTEND:"+end,
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\n")
}

// Options configures Export.
type Options struct {
	// Strict rejects entries with out-of-range hours or end before start
	// instead of passing them through.
	Strict bool
}

// Export validates (when strict) and encodes entries for the week
// containing now.
func Export(entries []model.ScheduleEntry, now time.Time, opts Options) (string, error) {
	if opts.Strict {
		for _, e := range entries {
			if err := ValidateEntry(e); err != nil {
				return "", fmt.Errorf("exporting schedule: %w", err)
			}
		}
	}
	return Encode(entries, now), nil
}

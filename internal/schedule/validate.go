package schedule

import "calog/internal/model"

// InvalidRangeError describes a schedule entry whose day or hour range
// cannot map onto a same-day event.
type InvalidRangeError struct {
	Entry  model.ScheduleEntry
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return "invalid schedule entry " + e.Entry.Activity + ": " + e.Reason
}

// ValidateEntry checks e against the strict export rules: a known day
// letter, hours within 0–23, and end after start (overnight spans are not
// supported by the export transform).
func ValidateEntry(e model.ScheduleEntry) error {
	if _, ok := dayOffsets[e.Day]; !ok {
		return &InvalidRangeError{Entry: e, Reason: "unknown day letter " + e.Day}
	}
	if e.StartHour < 0 || e.StartHour > 23 {
		return &InvalidRangeError{Entry: e, Reason: "start hour out of range"}
	}
	if e.EndHour < 0 || e.EndHour > 23 {
		return &InvalidRangeError{Entry: e, Reason: "end hour out of range"}
	}
	if e.EndHour <= e.StartHour {
		return &InvalidRangeError{Entry: e, Reason: "end hour not after start hour"}
	}
	return nil
}

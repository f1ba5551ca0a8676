package schedule

import (
	"errors"
	"testing"
	"time"

	"calog/internal/model"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   model.ScheduleEntry
		wantErr bool
	}{
		{"valid", model.ScheduleEntry{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 10}, false},
		{"full day edges", model.ScheduleEntry{Activity: "Work", Day: "F", StartHour: 0, EndHour: 23}, false},
		{"unknown day", model.ScheduleEntry{Activity: "Gym", Day: "X", StartHour: 9, EndHour: 10}, true},
		{"lowercase day", model.ScheduleEntry{Activity: "Gym", Day: "m", StartHour: 9, EndHour: 10}, true},
		{"start out of range", model.ScheduleEntry{Activity: "Gym", Day: "M", StartHour: 24, EndHour: 25}, true},
		{"negative start", model.ScheduleEntry{Activity: "Gym", Day: "M", StartHour: -1, EndHour: 2}, true},
		{"end out of range", model.ScheduleEntry{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 24}, true},
		{"end equals start", model.ScheduleEntry{Activity: "Gym", Day: "M", StartHour: 9, EndHour: 9}, true},
		{"overnight", model.ScheduleEntry{Activity: "Shift", Day: "T", StartHour: 22, EndHour: 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEntry(tc.entry)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateEntry(%+v) error = %v, wantErr %v", tc.entry, err, tc.wantErr)
			}
			if err != nil {
				var ire *InvalidRangeError
				if !errors.As(err, &ire) {
					t.Errorf("error is %T, want *InvalidRangeError", err)
				}
			}
		})
	}
}

func TestExportStrict(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	bad := []model.ScheduleEntry{{Activity: "Shift", Day: "T", StartHour: 22, EndHour: 2}}

	if _, err := Export(bad, now, Options{Strict: true}); err == nil {
		t.Errorf("strict export accepted an overnight entry")
	}

	doc, err := Export(bad, now, Options{})
	if err != nil {
		t.Fatalf("permissive export failed: %v", err)
	}
	if doc == "" {
		t.Errorf("permissive export returned an empty document")
	}
}

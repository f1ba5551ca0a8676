package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"calog/internal/model"
)

// hourLabel renders an hour the way the schedule write endpoints expect it:
// the server parses the hour back out via split(':').
func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// schedulePayload is the POST/PUT /schedule body. Start and end travel as
// "HH:MM" strings on writes even though reads return plain integers.
type schedulePayload struct {
	Email     string `json:"Email"`
	Activity  string `json:"Activity"`
	Day       string `json:"Day"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

// ListSchedule fetches all schedule entries for email.
func (c *Client) ListSchedule(ctx context.Context, email string) ([]model.ScheduleEntry, error) {
	var resp struct {
		Data []model.ScheduleEntry `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/schedule", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateSchedule adds a schedule entry. The server rejects entries that
// overlap an existing slot on the same day.
func (c *Client) CreateSchedule(ctx context.Context, email string, e model.ScheduleEntry) error {
	return c.do(ctx, http.MethodPost, "/schedule", nil, schedulePayload{
		Email:     email,
		Activity:  e.Activity,
		Day:       e.Day,
		StartTime: hourLabel(e.StartHour),
		EndTime:   hourLabel(e.EndHour),
	}, nil)
}

// UpdateSchedule changes the end hour of an existing entry, identified by
// email, activity, day and start hour.
func (c *Client) UpdateSchedule(ctx context.Context, email string, e model.ScheduleEntry) error {
	return c.do(ctx, http.MethodPut, "/schedule", nil, schedulePayload{
		Email:     email,
		Activity:  e.Activity,
		Day:       e.Day,
		StartTime: hourLabel(e.StartHour),
		EndTime:   hourLabel(e.EndHour),
	}, nil)
}

// DeleteSchedule removes an entry. Unlike create/update, the delete
// endpoint matches StartTime against the stored integer hour.
func (c *Client) DeleteSchedule(ctx context.Context, email string, e model.ScheduleEntry) error {
	payload := struct {
		Email     string `json:"Email"`
		Activity  string `json:"Activity"`
		Day       string `json:"Day"`
		StartTime int    `json:"StartTime"`
	}{email, e.Activity, e.Day, e.StartHour}
	return c.do(ctx, http.MethodDelete, "/schedule", nil, payload, nil)
}

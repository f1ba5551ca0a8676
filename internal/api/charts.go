package api

import (
	"context"
	"net/http"
	"net/url"

	"calog/internal/model"
)

// caloriePoints is the shared fetch for the calories-in/out feeds.
func (c *Client) caloriePoints(ctx context.Context, path, email string) ([]model.CaloriePoint, error) {
	var resp struct {
		Data []model.CaloriePoint `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, path, url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// WeeklyCalories returns the last seven days of calories burnt/consumed.
func (c *Client) WeeklyCalories(ctx context.Context, email string) ([]model.CaloriePoint, error) {
	return c.caloriePoints(ctx, "/weekly/calories", email)
}

// DailyCalories returns today's calories burnt/consumed.
func (c *Client) DailyCalories(ctx context.Context, email string) ([]model.CaloriePoint, error) {
	return c.caloriePoints(ctx, "/daily/calories", email)
}

// MonthlyCalories returns the last thirty days of calories burnt/consumed.
func (c *Client) MonthlyCalories(ctx context.Context, email string) ([]model.CaloriePoint, error) {
	return c.caloriePoints(ctx, "/monthly/calories", email)
}

// WeeklyActivities returns per-activity calories burnt over the last week.
func (c *Client) WeeklyActivities(ctx context.Context, email string) ([]model.ActivityCalories, error) {
	var resp struct {
		Data []model.ActivityCalories `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/weekly/activities", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// MonthlyActivities returns per-activity calories burnt over the last month.
func (c *Client) MonthlyActivities(ctx context.Context, email string) ([]model.ActivityCalories, error) {
	var resp struct {
		Data []model.ActivityCalories `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/monthly/activities", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// WeeklyActivityCalories returns per-day total calories burnt over the
// last week.
func (c *Client) WeeklyActivityCalories(ctx context.Context, email string) ([]model.DayCalories, error) {
	var resp struct {
		Data []model.DayCalories `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/weekly/activitiescalories", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

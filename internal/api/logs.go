package api

import (
	"context"
	"net/http"
	"net/url"

	"calog/internal/model"
)

// ListSavedLogs fetches the user's saved summary logs.
func (c *Client) ListSavedLogs(ctx context.Context, email string) ([]model.SavedLog, error) {
	var resp struct {
		Data []model.SavedLog `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/saved_logs", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateSavedLog asks the server to compute and store a summary over
// [startDate, endDate] (YYYY-MM-DD).
func (c *Client) CreateSavedLog(ctx context.Context, email, startDate, endDate string) error {
	payload := struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}{startDate, endDate}
	return c.do(ctx, http.MethodPost, "/saved_logs", url.Values{"email": {email}}, payload, nil)
}

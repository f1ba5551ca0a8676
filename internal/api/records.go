package api

import (
	"context"
	"net/http"
	"net/url"

	"calog/internal/model"
)

// ListRecords fetches all activity records for email.
func (c *Client) ListRecords(ctx context.Context, email string) ([]model.Record, error) {
	var resp struct {
		Data []model.Record `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/records", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateRecord logs an activity session.
func (c *Client) CreateRecord(ctx context.Context, r model.Record) error {
	return c.do(ctx, http.MethodPost, "/records", nil, r, nil)
}

// UpdateRecord changes duration and quality of an existing record,
// identified by email, activity and timestamp.
func (c *Client) UpdateRecord(ctx context.Context, r model.Record) error {
	return c.do(ctx, http.MethodPut, "/records", nil, r, nil)
}

// DeleteRecord removes an activity record.
func (c *Client) DeleteRecord(ctx context.Context, email, activity, datetime string) error {
	payload := struct {
		Email    string `json:"Email"`
		Activity string `json:"Activity"`
		Datetime string `json:"Datetime"`
	}{email, activity, datetime}
	return c.do(ctx, http.MethodDelete, "/records", nil, payload, nil)
}

// ActivityNames fetches the list of known activities for record entry.
func (c *Client) ActivityNames(ctx context.Context) ([]string, error) {
	var resp struct {
		Data []string `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/activitynames", nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

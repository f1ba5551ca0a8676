package api

import (
	"context"
	"net/http"
	"net/url"

	"calog/internal/model"
)

// ListMeals fetches all logged meals for email.
func (c *Client) ListMeals(ctx context.Context, email string) ([]model.Meal, error) {
	var resp struct {
		Data []model.Meal `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/meals", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateMeal logs a meal.
func (c *Client) CreateMeal(ctx context.Context, m model.Meal) error {
	return c.do(ctx, http.MethodPost, "/meals", nil, m, nil)
}

// UpdateMeal renames the food of a logged meal. The row is identified by
// email, the old food name and the timestamp.
func (c *Client) UpdateMeal(ctx context.Context, email, oldFoodName, newFoodName, datetime string) error {
	payload := struct {
		Email       string `json:"Email"`
		OldFoodName string `json:"OldFoodName"`
		FoodName    string `json:"FoodName"`
		Datetime    string `json:"Datetime"`
	}{email, oldFoodName, newFoodName, datetime}
	return c.do(ctx, http.MethodPut, "/meals", nil, payload, nil)
}

// DeleteMeal removes a logged meal.
func (c *Client) DeleteMeal(ctx context.Context, m model.Meal) error {
	return c.do(ctx, http.MethodDelete, "/meals", nil, m, nil)
}

// FoodNames fetches the list of known foods for meal entry.
func (c *Client) FoodNames(ctx context.Context) ([]string, error) {
	var resp struct {
		Data []string `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, "/foodnames", nil, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

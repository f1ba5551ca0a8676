package api

import (
	"context"
	"net/http"
	"net/url"

	"calog/internal/model"
)

// CheckProfile fetches the profile completeness status for email.
// The result is never cached; every call hits the server.
func (c *Client) CheckProfile(ctx context.Context, email string) (model.ProfileStatus, error) {
	var resp struct {
		Success  bool           `json:"success"`
		Complete bool           `json:"complete"`
		Profile  *model.Profile `json:"profile"`
	}
	err := c.do(ctx, http.MethodGet, "/user", url.Values{"email": {email}}, nil, &resp)
	if err != nil {
		return model.ProfileStatus{}, err
	}
	return model.ProfileStatus{
		Success:  resp.Success,
		Complete: resp.Complete,
		Profile:  resp.Profile,
	}, nil
}

// profilePayload is the POST /user body. The server expects camelCase keys
// here, unlike the capitalised row keys it returns.
type profilePayload struct {
	Email               string  `json:"email"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Age                 int     `json:"age"`
	Weight              float64 `json:"weight"`
	Sex                 string  `json:"sex"`
	Insomnia            bool    `json:"insomnia"`
	MaintenanceCalories int     `json:"maintenanceCalories"`
}

// SaveProfile creates or updates the user's onboarding profile.
func (c *Client) SaveProfile(ctx context.Context, email string, p model.Profile) error {
	payload := profilePayload{
		Email:               email,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		Age:                 p.Age,
		Weight:              p.Weight,
		Sex:                 p.Sex,
		Insomnia:            p.Insomnia,
		MaintenanceCalories: p.MaintenanceCalories,
	}
	return c.do(ctx, http.MethodPost, "/user", nil, payload, nil)
}

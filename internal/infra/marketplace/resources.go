package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func (c *Client) Profile(ctx context.Context, tokens Tokens) (User, error) {
	var out User
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/profile", tokens: &tokens}, &out)
	return out, err
}

func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	var out []Country
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/shared/countries"}, &out)
	return out, err
}

func (c *Client) Cities(ctx context.Context, country string) ([]City, error) {
	var out []City
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/shared/cities/" + url.PathEscape(country)}, &out)
	return out, err
}

// AvailableHours lists the "HH:MM" labels still free for service on the day starting at
// dayStart. The path keeps the upstream spelling.
func (c *Client) AvailableHours(ctx context.Context, tokens Tokens, serviceID int64, dayStart time.Time) ([]string, error) {
	q := url.Values{}
	q.Set("serviceId", strconv.FormatInt(serviceID, 10))
	q.Set("date", dayStart.UTC().Format(time.RFC3339))

	var out []string
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/services/aviable-hours", query: q, tokens: &tokens}, &out)
	return out, err
}

func (c *Client) SearchCompanies(ctx context.Context, tokens Tokens, s CompanySearch) (Page[User], error) {
	q := url.Values{}
	if s.Text != "" {
		q.Set("text", s.Text)
	}
	if s.City != "" {
		q.Set("city", s.City)
	}
	if s.Country != "" {
		q.Set("country", s.Country)
	}
	q.Set("limit", strconv.Itoa(s.Limit))
	q.Set("offset", strconv.Itoa(s.Offset))

	var out Page[User]
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/companies", query: q, tokens: &tokens}, &out)
	return out, err
}

func (c *Client) GetCompany(ctx context.Context, tokens Tokens, id int64) (User, error) {
	var out User
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/companies/" + strconv.FormatInt(id, 10), tokens: &tokens}, &out)
	return out, err
}

func (c *Client) GetCustomer(ctx context.Context, tokens Tokens, id int64) (User, error) {
	var out User
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/customers/" + strconv.FormatInt(id, 10), tokens: &tokens}, &out)
	return out, err
}

func (c *Client) ListReservations(ctx context.Context, tokens Tokens, limit, offset int) (Page[Reservation], error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var out Page[Reservation]
	_, err := do(ctx, c, call{method: http.MethodGet, path: "/reservations", query: q, tokens: &tokens}, &out)
	return out, err
}

func (c *Client) CreateReservation(ctx context.Context, tokens Tokens, req CreateReservationRequest) (string, error) {
	return do[json.RawMessage](ctx, c, call{method: http.MethodPost, path: "/reservations", body: req, tokens: &tokens}, nil)
}

func (c *Client) UpdateReservation(ctx context.Context, tokens Tokens, id int64, req UpdateReservationRequest) (string, error) {
	return do[json.RawMessage](ctx, c, call{
		method: http.MethodPatch,
		path:   "/reservations/" + strconv.FormatInt(id, 10),
		body:   req,
		tokens: &tokens,
	}, nil)
}

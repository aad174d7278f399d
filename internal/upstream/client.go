// Package upstream is the typed client for the LokaClean core API. Every
// call attaches the caller's bearer token; 401 surfaces as ErrUnauthorized
// so the middleware can tear the session down, and an envelope that does not
// match the documented shape is ErrBadEnvelope rather than a silent cast.
// Calls are never retried here.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lokaclean/backoffice/internal/domain"
)

var (
	ErrUnauthorized = errors.New("upstream rejected the token")
	ErrBadEnvelope  = errors.New("unexpected upstream response shape")
)

// APIError is a non-401 error status from the core API, with its message.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Code, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the core API wrapper: { status, message, data }.
type envelope struct {
	Status  *int            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do runs one request and decodes data into out (when out != nil).
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		return &APIError{Code: resp.StatusCode, Message: msg}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}

	if out == nil {
		return nil
	}
	if env.Status == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: missing data", ErrBadEnvelope)
	}
	dec := json.NewDecoder(bytes.NewReader(env.Data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	return nil
}

// ListQuery mirrors the core API list parameters. The dashboard refilters
// the result in memory, so these are hints for the backend, not the source
// of truth for the visible page.
type ListQuery struct {
	Status      string
	PackageID   string
	RatingValue int
	StartDate   string
	EndDate     string
	Sort        string
	Page        int
	Limit       int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("status", q.Status)
	set("package_id", q.PackageID)
	if q.RatingValue > 0 {
		v.Set("rating_value", fmt.Sprint(q.RatingValue))
	}
	set("start_date", q.StartDate)
	set("end_date", q.EndDate)
	set("sort", q.Sort)
	if q.Page > 0 {
		v.Set("page", fmt.Sprint(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", fmt.Sprint(q.Limit))
	}
	return v
}

func (c *Client) ListOrders(ctx context.Context, token string, q ListQuery) ([]domain.Order, error) {
	var data ordersData
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders", token, q.values(), nil, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

func (c *Client) ListPackages(ctx context.Context, token string) ([]domain.Package, error) {
	var data packagesData
	if err := c.do(ctx, http.MethodGet, "/api/v1/packages", token, nil, nil, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

func (c *Client) ListCleanerLocations(ctx context.Context, token string) ([]domain.Cleaner, error) {
	var data cleanersData
	if err := c.do(ctx, http.MethodGet, "/api/v1/cleaners/locations", token, nil, nil, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

func (c *Client) ListRatings(ctx context.Context, token string, q ListQuery) ([]domain.Rating, error) {
	var data ratingsData
	if err := c.do(ctx, http.MethodGet, "/api/v1/ratings", token, q.values(), nil, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

func (c *Client) RatingsSummary(ctx context.Context, token string) (*RatingsSummary, error) {
	var data summaryData
	if err := c.do(ctx, http.MethodGet, "/api/v1/ratings/summary", token, nil, nil, &data); err != nil {
		return nil, err
	}
	if data.Summary == nil {
		return nil, fmt.Errorf("%w: missing summary", ErrBadEnvelope)
	}
	return data.Summary, nil
}

func (c *Client) AssignCleaner(ctx context.Context, token, orderID, cleanerID string) error {
	body := map[string]string{"cleaner_id": cleanerID}
	return c.do(ctx, http.MethodPost, "/api/v1/orders/"+url.PathEscape(orderID)+"/assign", token, nil, body, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/orders/"+url.PathEscape(orderID), token, nil, nil, nil)
}

func (c *Client) Login(ctx context.Context, phone, password string) (*AuthResult, error) {
	body := map[string]string{"phone": phone, "password": password}
	var data authData
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", nil, body, &data); err != nil {
		return nil, err
	}
	if data.Token == "" || data.User == nil {
		return nil, fmt.Errorf("%w: missing token or user", ErrBadEnvelope)
	}
	return &AuthResult{Token: data.Token, User: *data.User}, nil
}

func (c *Client) Register(ctx context.Context, name, phone, password string) (*domain.User, error) {
	body := map[string]string{"name": name, "phone": phone, "password": password}
	var data userData
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", nil, body, &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, fmt.Errorf("%w: missing user", ErrBadEnvelope)
	}
	return data.User, nil
}

func (c *Client) ResetPassword(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/reset-password", "", nil, body, nil)
}

// Package api is the HTTP client for the scheduling backend. It owns the
// request/response contracts and nothing else: the form state machine lives
// in internal/schedule and navigation decisions stay with the TUI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kingrea/rosterdesk/internal/schedule"
	"github.com/kingrea/rosterdesk/internal/session"
)

// ErrUnauthorized is returned after a 401. The session marker has already
// been invalidated by the time callers see it; their job is navigation.
var ErrUnauthorized = errors.New("api: unauthorized")

// TokenPair is the login response body.
type TokenPair struct {
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client issues authenticated requests against the backend. The session
// store is the single capability used for token reads and 401 invalidation.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
	validate *validator.Validate
}

// Option customizes client construction for tests.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a client for the given base URL and session store.
func NewClient(baseURL string, sessions *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{},
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Login exchanges credentials for a token pair and stores it.
func (c *Client) Login(ctx context.Context, username, password string) (TokenPair, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return TokenPair{}, fmt.Errorf("api: encode login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return TokenPair{}, fmt.Errorf("api: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return TokenPair{}, fmt.Errorf("api: login: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		return TokenPair{}, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return TokenPair{}, fmt.Errorf("api: login failed with status %d", resp.StatusCode)
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return TokenPair{}, fmt.Errorf("api: decode login response: %w", err)
	}
	if err := c.validate.Struct(pair); err != nil {
		return TokenPair{}, fmt.Errorf("api: invalid login response: %w", err)
	}
	if err := c.sessions.SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// ListEmployees fetches the roster snapshot. A 401 invalidates the session
// marker and yields ErrUnauthorized.
func (c *Client) ListEmployees(ctx context.Context) ([]schedule.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/employees", nil)
	if err != nil {
		return nil, fmt.Errorf("api: build employees request: %w", err)
	}
	// The backend expects the raw token, no scheme prefix.
	req.Header.Set("Authorization", c.sessions.Token())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: fetch employees: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, c.expire()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("api: fetch employees failed with status %d", resp.StatusCode)
	}

	var employees []schedule.Employee
	if err := json.NewDecoder(resp.Body).Decode(&employees); err != nil {
		return nil, fmt.Errorf("api: decode employees: %w", err)
	}
	for i, employee := range employees {
		if err := c.validate.Struct(employee); err != nil {
			return nil, fmt.Errorf("api: invalid employee at index %d: %w", i, err)
		}
	}
	return employees, nil
}

// CreateSchedules posts the full batch atomically. Records are validated
// before any bytes hit the wire.
func (c *Client) CreateSchedules(ctx context.Context, records []schedule.Record) error {
	for i, record := range records {
		if err := c.validate.Struct(record); err != nil {
			return fmt.Errorf("api: invalid schedule record at index %d: %w", i, err)
		}
	}
	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("api: encode schedules: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/schedules", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("api: build schedules request: %w", err)
	}
	req.Header.Set("Authorization", c.sessions.Token())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: create schedules: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		return c.expire()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api: create schedules failed with status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) expire() error {
	if err := c.sessions.Invalidate(); err != nil {
		return err
	}
	return ErrUnauthorized
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
